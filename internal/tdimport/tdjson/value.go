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

// Package tdjson provides an order-preserving JSON tree for Thing Description documents.
//
// Object members keep their document order so that every structure derived from a
// document enumerates children in the same order as the source file.
package tdjson

import "strconv"

// Kind is the JSON type of a Value.
type Kind int

const (
	// Invalid is the kind of the zero Value.
	Invalid Kind = iota
	// Null is a JSON null.
	Null
	// Bool is a JSON boolean.
	Bool
	// Number is a JSON number, kept as its literal text.
	Number
	// String is a JSON string.
	String
	// ArrayKind is a JSON array.
	ArrayKind
	// ObjectKind is a JSON object.
	ObjectKind
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	default:
		return "invalid"
	}
}

// Value is one node of a parsed JSON document.
type Value struct {
	kind Kind
	text string
	b    bool
	arr  []Value
	obj  *Object
}

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object whose members keep document order.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set adds a member. A repeated key replaces the earlier value in place.
func (o *Object) Set(key string, v Value) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	i, ok := o.index[key]
	if !ok {
		return Value{}, false
	}
	return o.members[i].Value, true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Members returns the members in document order.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	return o.members
}

// Keys returns the member keys in document order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// NullValue returns a JSON null.
func NullValue() Value { return Value{kind: Null} }

// BoolValue returns a JSON boolean.
func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

// NumberValue returns a JSON number from its literal text.
func NumberValue(literal string) Value { return Value{kind: Number, text: literal} }

// StringValue returns a JSON string.
func StringValue(s string) Value { return Value{kind: String, text: s} }

// ArrayValue returns a JSON array.
func ArrayValue(items ...Value) Value { return Value{kind: ArrayKind, arr: items} }

// ObjectValue wraps an object.
func ObjectValue(o *Object) Value { return Value{kind: ObjectKind, obj: o} }

// Kind returns the JSON type of v.
func (v Value) Kind() Kind { return v.kind }

// IsObject reports whether v is an object.
func (v Value) IsObject() bool { return v.kind == ObjectKind }

// IsArray reports whether v is an array.
func (v Value) IsArray() bool { return v.kind == ArrayKind }

// IsString reports whether v is a string.
func (v Value) IsString() bool { return v.kind == String }

// Object returns the object held by v.
func (v Value) Object() (*Object, bool) {
	if v.kind != ObjectKind {
		return nil, false
	}
	return v.obj, true
}

// Array returns the elements held by v.
func (v Value) Array() ([]Value, bool) {
	if v.kind != ArrayKind {
		return nil, false
	}
	return v.arr, true
}

// Str returns the string held by v.
func (v Value) Str() (string, bool) {
	if v.kind != String {
		return "", false
	}
	return v.text, true
}

// Boolean returns the boolean held by v.
func (v Value) Boolean() (bool, bool) {
	if v.kind != Bool {
		return false, false
	}
	return v.b, true
}

// Text returns the string form of v used for qualifier values: strings verbatim,
// numbers as their literal, booleans and null as keywords, containers as compact JSON.
func (v Value) Text() string {
	switch v.kind {
	case String, Number:
		return v.text
	case Bool:
		return strconv.FormatBool(v.b)
	case Null:
		return "null"
	case ArrayKind, ObjectKind:
		return v.JSON()
	default:
		return ""
	}
}

// Interface converts v into plain Go values (map[string]any, []any, string, float64, bool, nil).
func (v Value) Interface() any {
	switch v.kind {
	case String:
		return v.text
	case Number:
		f, err := strconv.ParseFloat(v.text, 64)
		if err != nil {
			return v.text
		}
		return f
	case Bool:
		return v.b
	case ArrayKind:
		out := make([]any, len(v.arr))
		for i, el := range v.arr {
			out[i] = el.Interface()
		}
		return out
	case ObjectKind:
		return v.obj.Interface()
	default:
		return nil
	}
}

// Interface converts o into a map of plain Go values.
func (o *Object) Interface() map[string]any {
	out := make(map[string]any, o.Len())
	for _, m := range o.Members() {
		out[m.Key] = m.Value.Interface()
	}
	return out
}
