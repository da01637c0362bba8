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

// Package builder converts Thing Description JSON nodes into AAS SubmodelElementCollections.
//
// Every builder returns a freshly constructed collection and never touches the node it
// was given. Structural violations (a scalar where an object is expected, for example)
// are returned as *StructureError and are not recovered locally.
package builder

import (
	"fmt"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/tdjson"
)

// CategoryParameter is the category assigned to every produced collection.
const CategoryParameter = "PARAMETER"

// Builder holds the settings shared by one import run and collects the warnings
// raised while walking the document.
//
// A Builder is not safe for concurrent use. Use Fork to obtain an independent
// builder per goroutine and Merge to collect its warnings afterwards.
type Builder struct {
	kind     model.ModellingKind
	warnings []string
}

// Option configures a Builder.
type Option func(*Builder)

// WithKind sets the modelling kind of produced collections.
func WithKind(kind model.ModellingKind) Option {
	return func(b *Builder) {
		if kind != "" {
			b.kind = kind
		}
	}
}

// New creates a Builder producing Instance elements unless configured otherwise.
func New(opts ...Option) *Builder {
	b := &Builder{kind: model.MODELLINGKIND_INSTANCE}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Kind returns the modelling kind assigned to produced collections.
func (b *Builder) Kind() model.ModellingKind {
	return b.kind
}

// Fork returns a builder with the same settings and no warnings.
func (b *Builder) Fork() *Builder {
	return &Builder{kind: b.kind}
}

// Merge appends the warnings of other to b.
func (b *Builder) Merge(other *Builder) {
	b.warnings = append(b.warnings, other.warnings...)
}

// Warnings returns the warnings collected so far.
func (b *Builder) Warnings() []string {
	return b.warnings
}

// Warn records a warning.
func (b *Builder) Warn(format string, args ...any) {
	b.warnings = append(b.warnings, fmt.Sprintf(format, args...))
}

// StructureError reports a JSON node whose type does not match the shape a builder requires.
type StructureError struct {
	Path     string
	Expected string
	Found    tdjson.Kind
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("malformed thing description at %s: expected %s, found %s", e.Path, e.Expected, e.Found)
}

// NewCollection creates an empty collection carrying the builder's kind and, when
// keyword is part of the vocabulary, its semantic id.
func (b *Builder) NewCollection(idShort string, keyword string) *model.SubmodelElementCollection {
	smc := model.NewSubmodelElementCollection(idShort, CategoryParameter, b.kind)
	smc.SetSemanticID(SemanticReference(keyword))
	return smc
}

// BuildTitles converts a language map into the "titles" MultiLanguageProperty.
func (b *Builder) BuildTitles(v tdjson.Value, path string) (*model.MultiLanguageProperty, error) {
	langs, err := asObject(v, path)
	if err != nil {
		return nil, err
	}
	mlp := model.NewMultiLanguageProperty("titles", CategoryParameter, b.kind)
	mlp.SetSemanticID(SemanticReference("titles"))
	for _, m := range langs.Members() {
		mlp.AddText(m.Key, m.Value.Text())
	}
	return mlp, nil
}

// Descriptions converts a language map into description entries.
func Descriptions(v tdjson.Value, path string) ([]model.LangStringTextType, error) {
	langs, err := asObject(v, path)
	if err != nil {
		return nil, err
	}
	out := make([]model.LangStringTextType, 0, langs.Len())
	for _, m := range langs.Members() {
		out = append(out, model.LangStringTextType{Language: m.Key, Text: m.Value.Text()})
	}
	return out, nil
}

func asObject(v tdjson.Value, path string) (*tdjson.Object, error) {
	obj, ok := v.Object()
	if !ok {
		return nil, &StructureError{Path: path, Expected: "object", Found: v.Kind()}
	}
	return obj, nil
}

func asArray(v tdjson.Value, path string) ([]tdjson.Value, error) {
	items, ok := v.Array()
	if !ok {
		return nil, &StructureError{Path: path, Expected: "array", Found: v.Kind()}
	}
	return items, nil
}

func childPath(path string, key string) string {
	return path + "." + key
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
