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

var (
	interactionRules []fieldRule
	propertyRules    []fieldRule
	actionRules      []fieldRule
	eventRules       []fieldRule
)

func init() {
	interactionRules = []fieldRule{
		{key: "uriVariables", apply: applyURIVariables},
		{key: "forms", apply: applyForms},
	}
	propertyRules = qualifierRules("observable")
	actionRules = concatRules(
		[]fieldRule{
			schemaChildRule("input"),
			schemaChildRule("output"),
		},
		qualifierRules("safe", "idempotent"),
	)
	eventRules = []fieldRule{
		schemaChildRule("subscription"),
		schemaChildRule("data"),
		schemaChildRule("cancellation"),
	}
}

func schemaChildRule(key string) fieldRule {
	return fieldRule{key: key, apply: func(b *Builder, n *node, v tdjson.Value) error {
		return b.schemaChild(n, key, v)
	}}
}

// BuildInteractionAffordance converts the shape shared by properties, actions and
// events: the DataSchema fields followed by uriVariables and forms.
func (b *Builder) BuildInteractionAffordance(obj *tdjson.Object, name string) (*model.SubmodelElementCollection, error) {
	return b.interactionAffordance(name, obj, name)
}

func (b *Builder) interactionAffordance(path string, obj *tdjson.Object, name string) (*model.SubmodelElementCollection, error) {
	smc, err := b.dataSchema(path, obj, name)
	if err != nil {
		return nil, err
	}
	if err := b.applyRules(interactionRules, &node{path: path, obj: obj, smc: smc}); err != nil {
		return nil, err
	}
	return smc, nil
}

// affordance builds the common shape, applies the kind-specific rules and tags the result.
func (b *Builder) affordance(path string, obj *tdjson.Object, name string, rules []fieldRule, keyword string) (*model.SubmodelElementCollection, error) {
	smc, err := b.interactionAffordance(path, obj, name)
	if err != nil {
		return nil, err
	}
	if err := b.applyRules(rules, &node{path: path, obj: obj, smc: smc}); err != nil {
		return nil, err
	}
	smc.SetSemanticID(SemanticReference(keyword))
	return smc, nil
}

// BuildProperty converts a PropertyAffordance.
func (b *Builder) BuildProperty(obj *tdjson.Object, name string) (*model.SubmodelElementCollection, error) {
	return b.affordance(name, obj, name, propertyRules, "property")
}

// BuildAction converts an ActionAffordance. input and output become child schemas.
func (b *Builder) BuildAction(obj *tdjson.Object, name string) (*model.SubmodelElementCollection, error) {
	return b.affordance(name, obj, name, actionRules, "action")
}

// BuildEvent converts an EventAffordance. subscription, data and cancellation
// become child schemas, each tagged with its own semantic id.
func (b *Builder) BuildEvent(obj *tdjson.Object, name string) (*model.SubmodelElementCollection, error) {
	return b.affordance(name, obj, name, eventRules, "event")
}

func applyURIVariables(b *Builder, n *node, v tdjson.Value) error {
	wrapper, err := b.schemaMap(childPath(n.path, "uriVariables"), "uriVariables", v, "uriVariable")
	if err != nil {
		return err
	}
	n.smc.AddElement(wrapper)
	return nil
}

func applyForms(b *Builder, n *node, v tdjson.Value) error {
	wrapper, err := b.BuildForms(v, childPath(n.path, "forms"))
	if err != nil {
		return err
	}
	n.smc.AddElement(wrapper)
	return nil
}

// BuildForms converts an array of forms into the "forms" collection with children form1..formN.
func (b *Builder) BuildForms(v tdjson.Value, path string) (*model.SubmodelElementCollection, error) {
	items, err := asArray(v, path)
	if err != nil {
		return nil, err
	}
	wrapper := b.NewCollection("forms", "forms")
	for i, item := range items {
		itemPath := indexPath(path, i)
		obj, err := asObject(item, itemPath)
		if err != nil {
			return nil, err
		}
		form, err := b.form(itemPath, obj, ordinal("form", i+1))
		if err != nil {
			return nil, err
		}
		wrapper.AddElement(form)
	}
	return wrapper, nil
}

type entryFunc func(b *Builder, path string, obj *tdjson.Object, name string) (*model.SubmodelElementCollection, error)

func (b *Builder) namedMap(v tdjson.Value, path string, key string, build entryFunc) (*model.SubmodelElementCollection, error) {
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
		child, err := build(b, entryPath, obj, m.Key)
		if err != nil {
			return nil, err
		}
		wrapper.AddElement(child)
	}
	return wrapper, nil
}

// BuildProperties converts the Thing-level properties map.
func (b *Builder) BuildProperties(v tdjson.Value, path string) (*model.SubmodelElementCollection, error) {
	return b.namedMap(v, path, "properties", func(b *Builder, p string, obj *tdjson.Object, name string) (*model.SubmodelElementCollection, error) {
		return b.affordance(p, obj, name, propertyRules, "property")
	})
}

// BuildActions converts the Thing-level actions map.
func (b *Builder) BuildActions(v tdjson.Value, path string) (*model.SubmodelElementCollection, error) {
	return b.namedMap(v, path, "actions", func(b *Builder, p string, obj *tdjson.Object, name string) (*model.SubmodelElementCollection, error) {
		return b.affordance(p, obj, name, actionRules, "action")
	})
}

// BuildEvents converts the Thing-level events map.
func (b *Builder) BuildEvents(v tdjson.Value, path string) (*model.SubmodelElementCollection, error) {
	return b.namedMap(v, path, "events", func(b *Builder, p string, obj *tdjson.Object, name string) (*model.SubmodelElementCollection, error) {
		return b.affordance(p, obj, name, eventRules, "event")
	})
}

// BuildSchemaDefinitions converts the Thing-level schemaDefinitions map.
func (b *Builder) BuildSchemaDefinitions(v tdjson.Value, path string) (*model.SubmodelElementCollection, error) {
	return b.namedMap(v, path, "schemaDefinitions", func(b *Builder, p string, obj *tdjson.Object, name string) (*model.SubmodelElementCollection, error) {
		return b.dataSchema(p, obj, name)
	})
}
