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
	jsoniter "github.com/json-iterator/go"
)

// JSON returns the compact JSON encoding of v with members in document order.
func (v Value) JSON() string {
	stream := parserConfig.BorrowStream(nil)
	defer parserConfig.ReturnStream(stream)
	writeValue(stream, v)
	return string(stream.Buffer())
}

// JSON returns the compact JSON encoding of o.
func (o *Object) JSON() string {
	return ObjectValue(o).JSON()
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(v.JSON()), nil
}

// MarshalJSON implements json.Marshaler.
func (o *Object) MarshalJSON() ([]byte, error) {
	return []byte(o.JSON()), nil
}

func writeValue(stream *jsoniter.Stream, v Value) {
	switch v.kind {
	case String:
		stream.WriteString(v.text)
	case Number:
		stream.WriteRaw(v.text)
	case Bool:
		stream.WriteBool(v.b)
	case ArrayKind:
		stream.WriteArrayStart()
		for i, el := range v.arr {
			if i > 0 {
				stream.WriteMore()
			}
			writeValue(stream, el)
		}
		stream.WriteArrayEnd()
	case ObjectKind:
		stream.WriteObjectStart()
		for i, m := range v.obj.Members() {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(m.Key)
			writeValue(stream, m.Value)
		}
		stream.WriteObjectEnd()
	default:
		stream.WriteNil()
	}
}
