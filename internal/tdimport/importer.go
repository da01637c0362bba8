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

// Package tdimport converts W3C Web of Things Thing Descriptions into AAS submodels.
//
// The importer parses the document, populates the submodel metadata and builds one
// child collection per top-level section. Conversion errors and panics are caught at
// this boundary and reported through Result; nothing below it recovers locally.
package tdimport

import (
	"errors"
	"fmt"
	"os"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/builder"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/tdjson"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// SubmodelIdShort is assigned to every imported submodel.
const SubmodelIdShort = "AssetTD"

const (
	thingKeyword = "Thing"
	rootPath     = "$"
)

var (
	// ErrNoSubmodel is returned when the caller passes no target submodel.
	ErrNoSubmodel = errors.New("no target submodel given")
	// ErrDocumentTooLarge is returned for documents above the configured size limit.
	ErrDocumentTooLarge = errors.New("thing description exceeds maximum document size")
)

// sectionOutput is either a qualifier (duality fields given as a string) or an element.
type sectionOutput struct {
	qualifier *model.Qualifier
	element   model.SubmodelElement
}

func (o sectionOutput) attach(sm *model.Submodel) {
	if o.qualifier != nil {
		sm.AddQualifier(*o.qualifier)
	}
	if o.element != nil {
		sm.AddElement(o.element)
	}
}

type section struct {
	key   string
	build func(b *builder.Builder, v tdjson.Value, path string) (sectionOutput, error)
}

func collectionSection(key string, build func(*builder.Builder, tdjson.Value, string) (*model.SubmodelElementCollection, error)) section {
	return section{key: key, build: func(b *builder.Builder, v tdjson.Value, path string) (sectionOutput, error) {
		smc, err := build(b, v, path)
		if err != nil {
			return sectionOutput{}, err
		}
		return sectionOutput{element: smc}, nil
	}}
}

func dualitySection(key string) section {
	return section{key: key, build: func(b *builder.Builder, v tdjson.Value, path string) (sectionOutput, error) {
		q, smc, err := b.Duality(key, v, path)
		if err != nil {
			return sectionOutput{}, err
		}
		if smc != nil {
			return sectionOutput{element: smc}, nil
		}
		return sectionOutput{qualifier: &q}, nil
	}}
}

// sections lists the top-level children in attachment order.
var sections = []section{
	collectionSection("properties", (*builder.Builder).BuildProperties),
	collectionSection("actions", (*builder.Builder).BuildActions),
	collectionSection("events", (*builder.Builder).BuildEvents),
	collectionSection("links", (*builder.Builder).BuildLinks),
	collectionSection("forms", (*builder.Builder).BuildForms),
	dualitySection("security"),
	collectionSection("securityDefinitions", (*builder.Builder).BuildSecurityDefinitions),
	dualitySection("profile"),
	collectionSection("schemaDefinitions", (*builder.Builder).BuildSchemaDefinitions),
}

// importer holds the state of one import call.
type importer struct {
	opts   *options
	b      *builder.Builder
	env    *model.Environment
	target *model.Submodel
	ref    *model.Reference
}

// ImportThingDescription reads the Thing Description at path and converts it into sm.
//
// On success smRef is pointed at the submodel id and the result carries the parsed
// document. In the default staged mode sm is left untouched when the import fails.
//
// Parameters:
//   - path: File path of the JSON document
//   - env: Environment used to detect submodel id collisions (may be nil)
//   - sm: Submodel receiving metadata and children
//   - smRef: Reference rewritten to [Submodel, id] (may be nil)
//   - opts: Import options
//
// Returns:
//   - Result: Status "Success" or "error" with the cause and collected warnings
func ImportThingDescription(path string, env *model.Environment, sm *model.Submodel, smRef *model.Reference, opts ...Option) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return failed(fmt.Errorf("read thing description: %w", err), nil)
	}
	return ImportThingDescriptionBytes(data, env, sm, smRef, opts...)
}

// ImportThingDescriptionBytes converts an in-memory Thing Description into sm.
// It behaves like ImportThingDescription without the file read.
func ImportThingDescriptionBytes(data []byte, env *model.Environment, sm *model.Submodel, smRef *model.Reference, opts ...Option) (res Result) {
	o := newOptions(opts)
	if sm == nil {
		return failed(ErrNoSubmodel, nil)
	}
	if o.maxDocumentBytes > 0 && int64(len(data)) > o.maxDocumentBytes {
		return failed(fmt.Errorf("%w: %d > %d bytes", ErrDocumentTooLarge, len(data), o.maxDocumentBytes), nil)
	}
	doc, err := tdjson.ParseObject(data)
	if err != nil {
		return failed(fmt.Errorf("parse thing description: %w", err), nil)
	}
	if err := o.validator.Validate(doc); err != nil {
		return failed(err, nil)
	}

	imp := &importer{
		opts:   o,
		b:      builder.New(builder.WithKind(o.kind)),
		env:    env,
		target: sm,
		ref:    smRef,
	}
	defer func() {
		if r := recover(); r != nil {
			res = failed(fmt.Errorf("thing description import aborted: %v", r), imp.b.Warnings())
		}
	}()

	dst := sm
	if o.mode == AttachStaged {
		dst = model.NewSubmodel(sm.ID)
	}
	if err := imp.run(doc, dst); err != nil {
		return failed(err, imp.b.Warnings())
	}
	if o.mode == AttachStaged {
		commit(dst, sm)
		imp.pointReference(sm.ID)
	}
	return Result{Status: StatusSuccess, Document: doc, Warnings: imp.b.Warnings()}
}

func (imp *importer) run(doc *tdjson.Object, sm *model.Submodel) error {
	sm.Kind = imp.opts.kind
	if err := imp.metadata(doc, sm); err != nil {
		return err
	}
	if sm.ID == "" {
		sm.ID = "urn:uuid:" + uuid.NewString()
		imp.b.Warn("thing description has no id, generated %s", sm.ID)
		imp.incrementalReference(sm.ID)
	}
	imp.warnUnhandled(doc)

	var err error
	if imp.opts.parallel {
		err = imp.sectionsParallel(doc, sm)
	} else {
		err = imp.sectionsSequential(doc, sm)
	}
	if err != nil {
		return err
	}

	sm.IdShort = SubmodelIdShort
	sm.SemanticID = builder.SemanticReference(thingKeyword)
	return nil
}

func (imp *importer) sectionsSequential(doc *tdjson.Object, sm *model.Submodel) error {
	for _, s := range sections {
		v, ok := doc.Get(s.key)
		if !ok {
			continue
		}
		out, err := s.build(imp.b, v, rootPath+"."+s.key)
		if err != nil {
			return err
		}
		out.attach(sm)
	}
	return nil
}

// sectionsParallel builds every present section on its own goroutine and attaches the
// results in section order. Attachment stops at the first failed section so the
// incremental mode leaves the same prefix on the submodel as the sequential walk.
func (imp *importer) sectionsParallel(doc *tdjson.Object, sm *model.Submodel) error {
	type slot struct {
		s   section
		v   tdjson.Value
		b   *builder.Builder
		out sectionOutput
		err error
	}
	var slots []*slot
	for _, s := range sections {
		if v, ok := doc.Get(s.key); ok {
			slots = append(slots, &slot{s: s, v: v, b: imp.b.Fork()})
		}
	}

	var g errgroup.Group
	for _, sl := range slots {
		g.Go(func() error {
			sl.out, sl.err = buildSection(sl.b, sl.s, sl.v)
			return sl.err
		})
	}
	_ = g.Wait()

	for _, sl := range slots {
		imp.b.Merge(sl.b)
		if sl.err != nil {
			return sl.err
		}
		sl.out.attach(sm)
	}
	return nil
}

func buildSection(b *builder.Builder, s section, v tdjson.Value) (out sectionOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("building %s aborted: %v", s.key, r)
		}
	}()
	return s.build(b, v, rootPath+"."+s.key)
}

// incrementalReference points the caller's reference at id as soon as the id is
// known. Staged imports defer this until commit.
func (imp *importer) incrementalReference(id string) {
	if imp.opts.mode == AttachIncremental {
		imp.pointReference(id)
	}
}

func (imp *importer) pointReference(id string) {
	if imp.ref == nil {
		return
	}
	imp.ref.Type = model.REFERENCETYPES_MODEL_REFERENCE
	imp.ref.Keys = []model.Key{{Type: model.KEYTYPES_SUBMODEL, Value: id}}
}

// commit copies a fully built staging submodel onto the caller's submodel.
func commit(stage *model.Submodel, sm *model.Submodel) {
	if sm.ModelType == "" {
		sm.ModelType = model.ModelTypeSubmodel
	}
	sm.ID = stage.ID
	sm.IdShort = stage.IdShort
	sm.SemanticID = stage.SemanticID
	sm.Kind = stage.Kind
	if stage.Administration != nil {
		sm.Administration = stage.Administration
	}
	sm.Description = append(sm.Description, stage.Description...)
	sm.Qualifiers = append(sm.Qualifiers, stage.Qualifiers...)
	sm.SubmodelElements = append(sm.SubmodelElements, stage.SubmodelElements...)
}
