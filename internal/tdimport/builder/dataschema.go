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

// SchemaType is the closed set of DataSchema "type" values.
type SchemaType int

const (
	// SchemaUnknown is any type value outside the vocabulary. The raw value is still recorded.
	SchemaUnknown SchemaType = iota
	SchemaArray
	SchemaNumber
	SchemaInteger
	SchemaString
	SchemaObject
	SchemaBoolean
	SchemaNull
)

var schemaTypeNames = map[string]SchemaType{
	"array":   SchemaArray,
	"number":  SchemaNumber,
	"integer": SchemaInteger,
	"string":  SchemaString,
	"object":  SchemaObject,
	"boolean": SchemaBoolean,
	"null":    SchemaNull,
}

// ParseSchemaType maps a raw type value to its SchemaType. Matching is case-sensitive.
func ParseSchemaType(raw string) SchemaType {
	if t, ok := schemaTypeNames[raw]; ok {
		return t
	}
	return SchemaUnknown
}

func (t SchemaType) String() string {
	for name, v := range schemaTypeNames {
		if v == t {
			return name
		}
	}
	return "unknown"
}

var (
	dataSchemaRules []fieldRule
	arrayRules      []fieldRule
	numericRules    []fieldRule
	stringRules     []fieldRule
	objectRules     []fieldRule
)

// The tables are assigned in init because the recursive rules refer back to them.
func init() {
	dataSchemaRules = concatRules(
		qualifierRules("@type", "title"),
		[]fieldRule{{key: "titles", apply: applyTitles}},
		descriptionRules,
		qualifierRules("const", "default", "unit"),
		[]fieldRule{
			{key: "oneOf", apply: applyOneOf},
			{key: "enum", apply: applyEnum},
		},
		qualifierRules("readOnly", "writeOnly", "format"),
		[]fieldRule{{key: "type", apply: applyType}},
	)

	arrayRules = concatRules(
		qualifierRules("minItems", "maxItems"),
		[]fieldRule{{key: "items", apply: applyItems}},
	)
	numericRules = qualifierRules("minimum", "exclusiveMinimum", "maximum", "exclusiveMaximum", "multipleOf")
	stringRules = qualifierRules("minLength", "maxLength", "pattern", "contentEncoding", "contentMediaType")
	objectRules = []fieldRule{
		{key: "required", apply: applyRequired},
		{key: "properties", apply: applyObjectProperties},
	}
}

func concatRules(groups ...[]fieldRule) []fieldRule {
	var out []fieldRule
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// BuildDataSchema converts a DataSchema object into a collection named name.
//
// Fields are translated in a fixed order: @type, title, titles, description,
// descriptions, const, default, unit, oneOf, enum, readOnly, writeOnly, format
// and finally type, which also selects the type-specific fields to extract.
// The returned collection carries no semantic id; callers tag it according to
// the position it takes in the document.
//
// Parameters:
//   - obj: The DataSchema JSON object
//   - name: The idShort of the produced collection
//
// Returns:
//   - *model.SubmodelElementCollection: The converted schema, never nil on success
//   - error: A *StructureError if a nested field has the wrong JSON type
func (b *Builder) BuildDataSchema(obj *tdjson.Object, name string) (*model.SubmodelElementCollection, error) {
	return b.dataSchema(name, obj, name)
}

func (b *Builder) dataSchema(path string, obj *tdjson.Object, name string) (*model.SubmodelElementCollection, error) {
	smc := b.NewCollection(name, "")
	if err := b.applyRules(dataSchemaRules, &node{path: path, obj: obj, smc: smc}); err != nil {
		return nil, err
	}
	return smc, nil
}

// schemaChild builds the DataSchema found under key as a child named after the key.
func (b *Builder) schemaChild(n *node, key string, v tdjson.Value) error {
	path := childPath(n.path, key)
	obj, err := asObject(v, path)
	if err != nil {
		return err
	}
	child, err := b.dataSchema(path, obj, key)
	if err != nil {
		return err
	}
	child.SetSemanticID(SemanticReference(key))
	n.smc.AddElement(child)
	return nil
}

// schemaMap builds one tagged DataSchema child per map entry inside a wrapper named key.
func (b *Builder) schemaMap(path string, key string, v tdjson.Value, entryKeyword string) (*model.SubmodelElementCollection, error) {
	entries, err := asObject(v, path)
	if err != nil {
		return nil, err
	}
	wrapper := b.NewCollection(key, key)
	for _, m := range entries.Members() {
		entryPath := childPath(path, m.Key)
		obj, err := asObject(m.Value, entryPath)
		if err != nil {
			return nil, err
		}
		child, err := b.dataSchema(entryPath, obj, m.Key)
		if err != nil {
			return nil, err
		}
		child.SetSemanticID(SemanticReference(entryKeyword))
		wrapper.AddElement(child)
	}
	return wrapper, nil
}

func applyTitles(b *Builder, n *node, v tdjson.Value) error {
	mlp, err := b.BuildTitles(v, childPath(n.path, "titles"))
	if err != nil {
		return err
	}
	n.smc.AddElement(mlp)
	return nil
}

func applyOneOf(b *Builder, n *node, v tdjson.Value) error {
	path := childPath(n.path, "oneOf")
	items, err := asArray(v, path)
	if err != nil {
		return err
	}
	wrapper := b.NewCollection("oneOf", "oneOf")
	for i, item := range items {
		itemPath := indexPath(path, i)
		obj, err := asObject(item, itemPath)
		if err != nil {
			return err
		}
		child, err := b.dataSchema(itemPath, obj, ordinal("oneOf", i+1))
		if err != nil {
			return err
		}
		child.SetSemanticID(SemanticReference("oneOf"))
		wrapper.AddElement(child)
	}
	n.smc.AddElement(wrapper)
	return nil
}

func applyEnum(b *Builder, n *node, v tdjson.Value) error {
	items, err := asArray(v, childPath(n.path, "enum"))
	if err != nil {
		return err
	}
	wrapper := b.NewCollection("enum", "enum")
	for i, item := range items {
		wrapper.AddQualifier(MakeQualifier(ordinal("enum", i+1), item.Text()))
	}
	n.smc.AddElement(wrapper)
	return nil
}

func applyType(b *Builder, n *node, v tdjson.Value) error {
	raw := v.Text()
	n.smc.AddQualifier(MakeQualifier("type", raw))

	switch ParseSchemaType(raw) {
	case SchemaArray:
		return b.applyRules(arrayRules, n)
	case SchemaNumber, SchemaInteger:
		return b.applyRules(numericRules, n)
	case SchemaString:
		return b.applyRules(stringRules, n)
	case SchemaObject:
		return b.applyRules(objectRules, n)
	case SchemaBoolean, SchemaNull:
		return nil
	case SchemaUnknown:
		b.Warn("%s: unknown data schema type %q, no type-specific fields extracted", n.path, raw)
		return nil
	}
	return nil
}

// applyItems numbers the schemas of an items array from zero, while a single
// items schema becomes "item1".
func applyItems(b *Builder, n *node, v tdjson.Value) error {
	path := childPath(n.path, "items")
	wrapper := b.NewCollection("items", "items")

	switch v.Kind() {
	case tdjson.ArrayKind:
		items, _ := v.Array()
		for i, item := range items {
			itemPath := indexPath(path, i)
			obj, err := asObject(item, itemPath)
			if err != nil {
				return err
			}
			child, err := b.dataSchema(itemPath, obj, ordinal("item", i))
			if err != nil {
				return err
			}
			wrapper.AddElement(child)
		}
	case tdjson.ObjectKind:
		obj, _ := v.Object()
		child, err := b.dataSchema(path, obj, "item1")
		if err != nil {
			return err
		}
		wrapper.AddElement(child)
	default:
		return &StructureError{Path: path, Expected: "object or array", Found: v.Kind()}
	}

	n.smc.AddElement(wrapper)
	return nil
}

func applyRequired(b *Builder, n *node, v tdjson.Value) error {
	names, err := asArray(v, childPath(n.path, "required"))
	if err != nil {
		return err
	}
	wrapper := b.NewCollection("required", "required")
	for i, name := range names {
		wrapper.AddQualifier(MakeQualifier(ordinal("required", i+1), name.Text()))
	}
	n.smc.AddElement(wrapper)
	return nil
}

func applyObjectProperties(b *Builder, n *node, v tdjson.Value) error {
	wrapper, err := b.schemaMap(childPath(n.path, "properties"), "properties", v, "property")
	if err != nil {
		return err
	}
	n.smc.AddElement(wrapper)
	return nil
}
