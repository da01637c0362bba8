/*******************************************************************************
* Copyright (C) 2025 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package tdjson

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// ErrNotAnObject is returned when the document root is not a JSON object.
var ErrNotAnObject = errors.New("document root is not a JSON object")

var parserConfig = jsoniter.Config{
	EscapeHTML:             false,
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

// ParseObject parses a JSON document whose root must be an object.
func ParseObject(data []byte) (*Object, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}
	obj, ok := v.Object()
	if !ok {
		return nil, fmt.Errorf("%w: found %s", ErrNotAnObject, v.Kind())
	}
	return obj, nil
}

// Parse parses a complete JSON document.
func Parse(data []byte) (Value, error) {
	iter := jsoniter.ParseBytes(parserConfig, data)
	v := readValue(iter)
	if iter.Error != nil {
		return Value{}, fmt.Errorf("invalid JSON: %w", iter.Error)
	}
	if next := iter.WhatIsNext(); next != jsoniter.InvalidValue || !errors.Is(iter.Error, io.EOF) {
		return Value{}, errors.New("invalid JSON: unexpected content after document end")
	}
	return v, nil
}

func readValue(iter *jsoniter.Iterator) Value {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		obj := NewObject()
		iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			v := readValue(it)
			if it.Error != nil {
				return false
			}
			obj.Set(key, v)
			return true
		})
		return ObjectValue(obj)
	case jsoniter.ArrayValue:
		items := make([]Value, 0)
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			v := readValue(it)
			if it.Error != nil {
				return false
			}
			items = append(items, v)
			return true
		})
		return ArrayValue(items...)
	case jsoniter.StringValue:
		return StringValue(iter.ReadString())
	case jsoniter.NumberValue:
		return NumberValue(string(iter.ReadNumber()))
	case jsoniter.BoolValue:
		return BoolValue(iter.ReadBool())
	case jsoniter.NilValue:
		iter.ReadNil()
		return NullValue()
	default:
		iter.ReportError("readValue", "unexpected token")
		return Value{}
	}
}
