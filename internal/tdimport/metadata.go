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

package tdimport

import (
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/builder"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/tdjson"
)

type metadataRule struct {
	key   string
	apply func(imp *importer, sm *model.Submodel, v tdjson.Value, path string) error
}

var metadataRules []metadataRule

func init() {
	metadataRules = []metadataRule{
		{key: "@context", apply: func(imp *importer, _ *model.Submodel, _ tdjson.Value, _ string) error {
			imp.b.Warn("@context is not resolved")
			return nil
		}},
		{key: "@type", apply: submodelQualifier("@type")},
		{key: "id", apply: applyID},
		{key: "title", apply: submodelQualifier("title")},
		{key: "titles", apply: func(imp *importer, sm *model.Submodel, v tdjson.Value, path string) error {
			mlp, err := imp.b.BuildTitles(v, path)
			if err != nil {
				return err
			}
			sm.AddElement(mlp)
			return nil
		}},
		{key: "description", apply: func(_ *importer, sm *model.Submodel, v tdjson.Value, _ string) error {
			sm.AddDescription("en", v.Text())
			return nil
		}},
		{key: "descriptions", apply: func(_ *importer, sm *model.Submodel, v tdjson.Value, path string) error {
			entries, err := builder.Descriptions(v, path)
			if err != nil {
				return err
			}
			sm.Description = append(sm.Description, entries...)
			return nil
		}},
		{key: "version", apply: applyVersion},
		{key: "created", apply: submodelQualifier("created")},
		{key: "modified", apply: submodelQualifier("modified")},
		{key: "support", apply: submodelQualifier("support")},
		{key: "base", apply: submodelQualifier("base")},
	}
}

func submodelQualifier(key string) func(*importer, *model.Submodel, tdjson.Value, string) error {
	return func(_ *importer, sm *model.Submodel, v tdjson.Value, _ string) error {
		sm.AddQualifier(builder.MakeQualifier(key, v.Text()))
		return nil
	}
}

func applyID(imp *importer, sm *model.Submodel, v tdjson.Value, path string) error {
	id, ok := v.Str()
	if !ok {
		return &builder.StructureError{Path: path, Expected: "string", Found: v.Kind()}
	}
	if existing, found := imp.env.FindSubmodel(id); found && existing != imp.target {
		imp.b.Warn("submodel id %s is already present in the environment", id)
	}
	sm.ID = id
	imp.incrementalReference(id)
	return nil
}

// applyVersion maps a version string, or the instance member of a version
// object, onto the administration. Other members become qualifiers.
func applyVersion(_ *importer, sm *model.Submodel, v tdjson.Value, path string) error {
	switch v.Kind() {
	case tdjson.String:
		sm.Administration = &model.AdministrativeInformation{Version: v.Text()}
	case tdjson.ObjectKind:
		obj, _ := v.Object()
		admin := &model.AdministrativeInformation{}
		for _, m := range obj.Members() {
			if m.Key == "instance" {
				admin.Version = m.Value.Text()
				continue
			}
			sm.AddQualifier(builder.MakeQualifier(m.Key, m.Value.Text()))
		}
		if !admin.IsEmpty() {
			sm.Administration = admin
		}
	default:
		return &builder.StructureError{Path: path, Expected: "string or object", Found: v.Kind()}
	}
	return nil
}

func (imp *importer) metadata(doc *tdjson.Object, sm *model.Submodel) error {
	for _, r := range metadataRules {
		v, ok := doc.Get(r.key)
		if !ok {
			continue
		}
		if err := r.apply(imp, sm, v, rootPath+"."+r.key); err != nil {
			return err
		}
	}
	return nil
}

// warnUnhandled records a warning for every top-level key the importer does not convert.
func (imp *importer) warnUnhandled(doc *tdjson.Object) {
	for _, key := range doc.Keys() {
		if !isHandledKey(key) {
			imp.b.Warn("ignoring unsupported top-level key %q", key)
		}
	}
}

func isHandledKey(key string) bool {
	for _, r := range metadataRules {
		if r.key == key {
			return true
		}
	}
	for _, s := range sections {
		if s.key == key {
			return true
		}
	}
	return false
}
