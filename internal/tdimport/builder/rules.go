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
	"strconv"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/tdjson"
)

// node is the state a rule operates on: the JSON object being converted and
// the collection receiving its translation.
type node struct {
	path string
	obj  *tdjson.Object
	smc  *model.SubmodelElementCollection
}

// fieldRule translates one JSON key of a node. Rules run in table order and
// only when the key is present.
type fieldRule struct {
	key   string
	apply func(b *Builder, n *node, v tdjson.Value) error
}

func (b *Builder) applyRules(rules []fieldRule, n *node) error {
	for _, r := range rules {
		v, ok := n.obj.Get(r.key)
		if !ok {
			continue
		}
		if err := r.apply(b, n, v); err != nil {
			return err
		}
	}
	return nil
}

// qualifierRule copies the key's string form into a qualifier of the same name.
func qualifierRule(key string) fieldRule {
	return fieldRule{key: key, apply: func(_ *Builder, n *node, v tdjson.Value) error {
		n.smc.AddQualifier(MakeQualifier(key, v.Text()))
		return nil
	}}
}

func qualifierRules(keys ...string) []fieldRule {
	rules := make([]fieldRule, len(keys))
	for i, k := range keys {
		rules[i] = qualifierRule(k)
	}
	return rules
}

// dualityRule stores a string as one qualifier and an array as a child collection
// named after the key whose qualifiers are numbered from zero.
func dualityRule(key string) fieldRule {
	return fieldRule{key: key, apply: func(b *Builder, n *node, v tdjson.Value) error {
		q, child, err := b.duality(key, v, childPath(n.path, key))
		if err != nil {
			return err
		}
		if child != nil {
			n.smc.AddElement(child)
			return nil
		}
		n.smc.AddQualifier(q)
		return nil
	}}
}

// duality implements the string/array policy shared by security, scopes, op,
// profile and the combo scheme lists. Exactly one of the qualifier or the
// collection is meaningful: the collection is nil for the string form.
func (b *Builder) duality(key string, v tdjson.Value, path string) (model.Qualifier, *model.SubmodelElementCollection, error) {
	switch v.Kind() {
	case tdjson.String:
		return MakeQualifier(key, v.Text()), nil, nil
	case tdjson.ArrayKind:
		items, _ := v.Array()
		child := b.NewCollection(key, key)
		for i, item := range items {
			child.AddQualifier(MakeQualifier(ordinal(key, i), item.Text()))
		}
		return model.Qualifier{}, child, nil
	default:
		return model.Qualifier{}, nil, &StructureError{Path: path, Expected: "string or array", Found: v.Kind()}
	}
}

func ordinal(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// descriptionRules translate description and descriptions into the collection's own description.
var descriptionRules = []fieldRule{
	{key: "description", apply: func(_ *Builder, n *node, v tdjson.Value) error {
		n.smc.AddDescription("en", v.Text())
		return nil
	}},
	{key: "descriptions", apply: func(_ *Builder, n *node, v tdjson.Value) error {
		entries, err := Descriptions(v, childPath(n.path, "descriptions"))
		if err != nil {
			return err
		}
		n.smc.SetDescription(append(n.smc.GetDescription(), entries...))
		return nil
	}},
}
