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

package builder

import (
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/tdjson"
)

// formExtractedKeys are the form keys that the generic pass does not repeat.
// subprotocol is extracted explicitly and still repeated by the generic pass.
var formExtractedKeys = map[string]struct{}{
	"href":                {},
	"contentType":         {},
	"contentCoding":       {},
	"security":            {},
	"scopes":              {},
	"op":                  {},
	"response":            {},
	"additionalResponses": {},
}

var formRules []fieldRule

func init() {
	formRules = concatRules(
		qualifierRules("href", "contentType", "contentCoding", "subprotocol"),
		[]fieldRule{
			dualityRule("security"),
			dualityRule("scopes"),
			dualityRule("op"),
			{key: "response", apply: applyResponse},
			{key: "additionalResponses", apply: applyAdditionalResponses},
		},
	)
}

// BuildForm converts one hypermedia form.
//
// security, scopes and op follow the string/array policy with zero-based ordinals.
// Every key outside the extracted form vocabulary is kept as a qualifier named after
// the key, in document order.
func (b *Builder) BuildForm(obj *tdjson.Object, name string) (*model.SubmodelElementCollection, error) {
	return b.form(name, obj, name)
}

func (b *Builder) form(path string, obj *tdjson.Object, name string) (*model.SubmodelElementCollection, error) {
	smc := b.NewCollection(name, "form")
	n := &node{path: path, obj: obj, smc: smc}
	if err := b.applyRules(formRules, n); err != nil {
		return nil, err
	}
	for _, m := range obj.Members() {
		if _, ok := formExtractedKeys[m.Key]; ok {
			continue
		}
		smc.AddQualifier(MakeQualifier(m.Key, m.Value.Text()))
	}
	return smc, nil
}

// applyResponse builds the response object as a DataSchema child named "contentType".
// The media type itself is kept as a contentType qualifier on that child.
func applyResponse(b *Builder, n *node, v tdjson.Value) error {
	path := childPath(n.path, "response")
	obj, err := asObject(v, path)
	if err != nil {
		return err
	}
	child, err := b.dataSchema(path, obj, "contentType")
	if err != nil {
		return err
	}
	child.SetSemanticID(SemanticReference("contentType"))
	if ct, ok := obj.Get("contentType"); ok {
		child.AddQualifier(MakeQualifier("contentType", ct.Text()))
	}
	n.smc.AddElement(child)
	return nil
}

// applyAdditionalResponses builds additionalResponse1..N. A string value yields a single
// entry holding the string; an object yields a single entry.
func applyAdditionalResponses(b *Builder, n *node, v tdjson.Value) error {
	path := childPath(n.path, "additionalResponses")
	wrapper := b.NewCollection("additionalResponses", "additionalResponses")

	switch v.Kind() {
	case tdjson.String:
		entry := b.NewCollection("additionalResponse1", "")
		entry.AddQualifier(MakeQualifier("additionalResponse", v.Text()))
		wrapper.AddElement(entry)
	case tdjson.ObjectKind:
		obj, _ := v.Object()
		wrapper.AddElement(b.additionalResponse(obj, 1))
	case tdjson.ArrayKind:
		items, _ := v.Array()
		for i, item := range items {
			obj, err := asObject(item, indexPath(path, i))
			if err != nil {
				return err
			}
			wrapper.AddElement(b.additionalResponse(obj, i+1))
		}
	default:
		return &StructureError{Path: path, Expected: "string, object or array", Found: v.Kind()}
	}

	n.smc.AddElement(wrapper)
	return nil
}

func (b *Builder) additionalResponse(obj *tdjson.Object, ord int) *model.SubmodelElementCollection {
	entry := b.NewCollection(ordinal("additionalResponse", ord), "")
	if v, ok := obj.Get("success"); ok {
		entry.AddQualifier(MakeQualifier("success", v.Text()))
	}
	if v, ok := obj.Get("contentType"); ok {
		entry.AddQualifier(MakeQualifier("contentTypeschema", v.Text()))
	}
	if v, ok := obj.Get("schema"); ok {
		entry.AddQualifier(MakeQualifier("schema", v.Text()))
	}
	return entry
}
