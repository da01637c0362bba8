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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/builder"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/semantics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lampTD = `{"id":"urn:x","title":"Lamp","properties":{"brightness":{"type":"integer","minimum":0,"maximum":100}}}`

// brokenTD has two valid sections followed by a malformed one.
const brokenTD = `{
  "id": "urn:partial",
  "properties": {"a": {"type": "string"}},
  "actions": {"toggle": {"safe": false}},
  "events": "not-an-object"
}`

func elementNames(sm *model.Submodel) []string {
	names := make([]string, len(sm.SubmodelElements))
	for i, el := range sm.SubmodelElements {
		names[i] = el.GetIdShort()
	}
	return names
}

func qualifierValue(t *testing.T, qualifiers []model.Qualifier, qType string) string {
	t.Helper()
	q, ok := model.FindQualifier(qualifiers, qType)
	require.True(t, ok, "missing qualifier %q", qType)
	return q.Value
}

func TestImportLampEndToEnd(t *testing.T) {
	sm := model.NewSubmodel("")
	ref := &model.Reference{}

	res := ImportThingDescriptionBytes([]byte(lampTD), &model.Environment{}, sm, ref)
	require.NoError(t, res.Err)
	assert.Equal(t, StatusSuccess, res.Status)
	assert.True(t, res.OK())
	require.NotNil(t, res.Document)
	assert.True(t, res.Document.Has("properties"))

	assert.Equal(t, "AssetTD", sm.IdShort)
	assert.Equal(t, "urn:x", sm.ID)
	assert.Equal(t, model.MODELLINGKIND_INSTANCE, sm.Kind)
	assert.Equal(t, semantics.Resolve("Thing"), sm.SemanticID.FirstKeyValue())
	assert.Equal(t, "Lamp", qualifierValue(t, sm.Qualifiers, "title"))

	assert.Equal(t, model.REFERENCETYPES_MODEL_REFERENCE, ref.Type)
	require.Len(t, ref.Keys, 1)
	assert.Equal(t, model.Key{Type: model.KEYTYPES_SUBMODEL, Value: "urn:x"}, ref.Keys[0])

	props, ok := sm.FindCollection("properties")
	require.True(t, ok)
	require.Len(t, props.Value, 1)
	brightness, ok := props.FindCollection("brightness")
	require.True(t, ok)
	assert.Equal(t, semantics.Resolve("property"), brightness.GetSemanticID().FirstKeyValue())
	assert.Equal(t, "integer", qualifierValue(t, brightness.Qualifiers, "type"))
	assert.Equal(t, "0", qualifierValue(t, brightness.Qualifiers, "minimum"))
	assert.Equal(t, "100", qualifierValue(t, brightness.Qualifiers, "maximum"))
}

func TestIncrementalImportLeavesBuiltSiblings(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		sm := model.NewSubmodel("")
		ref := &model.Reference{}

		res := ImportThingDescriptionBytes([]byte(brokenTD), nil, sm, ref,
			WithAttachMode(AttachIncremental), WithParallel(parallel))

		assert.Equal(t, StatusError, res.Status, "parallel=%v", parallel)
		assert.Nil(t, res.Document)
		var structErr *builder.StructureError
		require.True(t, errors.As(res.Err, &structErr))
		assert.Equal(t, "$.events", structErr.Path)

		assert.Equal(t, []string{"properties", "actions"}, elementNames(sm), "parallel=%v", parallel)
		assert.Equal(t, "urn:partial", sm.ID)
		assert.Empty(t, sm.IdShort)
		require.Len(t, ref.Keys, 1)
		assert.Equal(t, "urn:partial", ref.Keys[0].Value)
	}
}

func TestStagedImportDoesNotTouchSubmodelOnError(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		sm := model.NewSubmodel("urn:keep")
		sm.AddQualifier(builder.MakeQualifier("origin", "caller"))
		ref := &model.Reference{}

		res := ImportThingDescriptionBytes([]byte(brokenTD), nil, sm, ref, WithParallel(parallel))

		assert.Equal(t, StatusError, res.Status)
		assert.Error(t, res.Err)
		assert.Empty(t, sm.SubmodelElements)
		assert.Equal(t, "urn:keep", sm.ID)
		assert.Empty(t, sm.IdShort)
		require.Len(t, sm.Qualifiers, 1)
		assert.Empty(t, ref.Keys)
	}
}

func TestStagedImportAppendsToExistingContent(t *testing.T) {
	sm := model.NewSubmodel("")
	sm.AddQualifier(builder.MakeQualifier("origin", "caller"))

	res := ImportThingDescriptionBytes([]byte(lampTD), nil, sm, nil)
	require.True(t, res.OK())
	require.Len(t, sm.Qualifiers, 2)
	assert.Equal(t, "origin", sm.Qualifiers[0].Type)
	assert.Equal(t, "title", sm.Qualifiers[1].Type)
	assert.Equal(t, model.ModelTypeSubmodel, sm.ModelType)
}

func TestParseErrorLeavesSubmodelUntouched(t *testing.T) {
	for _, doc := range []string{`{"id":`, `[1,2]`, `{"id":"a"} trailing`, ``} {
		sm := model.NewSubmodel("")
		res := ImportThingDescriptionBytes([]byte(doc), nil, sm, nil, WithAttachMode(AttachIncremental))
		assert.Equal(t, StatusError, res.Status, doc)
		assert.Error(t, res.Err)
		assert.Empty(t, sm.SubmodelElements)
		assert.Empty(t, sm.ID)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	doc := []byte(`{
	  "id": "urn:dev:1",
	  "title": "Device",
	  "security": ["basic_sc", "psk_sc"],
	  "securityDefinitions": {"basic_sc": {"scheme": "basic", "in": "header"}, "psk_sc": {"scheme": "psk"}},
	  "properties": {"temp": {"type": "number", "unit": "celsius", "forms": [{"href": "/temp"}]}},
	  "actions": {"reset": {"input": {"type": "boolean"}}},
	  "events": {"alarm": {"data": {"type": "string"}}},
	  "links": [{"href": "http://example.com", "rel": "manual"}],
	  "forms": [{"href": "/all", "op": ["readallproperties", "writeallproperties"]}],
	  "profile": "https://www.w3.org/2022/wot/profile/basic/v1",
	  "schemaDefinitions": {"level": {"type": "integer", "minimum": 1}}
	}`)

	seq := model.NewSubmodel("")
	par := model.NewSubmodel("")
	seqRes := ImportThingDescriptionBytes(doc, nil, seq, nil)
	parRes := ImportThingDescriptionBytes(doc, nil, par, nil, WithParallel(true))
	require.True(t, seqRes.OK(), "%v", seqRes.Err)
	require.True(t, parRes.OK(), "%v", parRes.Err)

	assert.Equal(t, seq, par)
	assert.Equal(t, seqRes.Warnings, parRes.Warnings)
	assert.Equal(t,
		[]string{"properties", "actions", "events", "links", "forms", "security", "securityDefinitions", "schemaDefinitions"},
		elementNames(seq))
	assert.Equal(t, "https://www.w3.org/2022/wot/profile/basic/v1", qualifierValue(t, seq.Qualifiers, "profile"))
}

func TestTopLevelSecurityDuality(t *testing.T) {
	sm := model.NewSubmodel("")
	res := ImportThingDescriptionBytes([]byte(`{"id":"urn:s","security":"nosec_sc"}`), nil, sm, nil)
	require.True(t, res.OK())
	assert.Equal(t, "nosec_sc", qualifierValue(t, sm.Qualifiers, "security"))
	assert.Empty(t, sm.SubmodelElements)

	sm = model.NewSubmodel("")
	res = ImportThingDescriptionBytes([]byte(`{"id":"urn:s","security":["a","b"]}`), nil, sm, nil)
	require.True(t, res.OK())
	sec, ok := sm.FindCollection("security")
	require.True(t, ok)
	assert.Equal(t, "a", qualifierValue(t, sec.Qualifiers, "security0"))
	assert.Equal(t, "b", qualifierValue(t, sec.Qualifiers, "security1"))

	sm = model.NewSubmodel("")
	res = ImportThingDescriptionBytes([]byte(`{"id":"urn:s","security":42}`), nil, sm, nil)
	assert.Equal(t, StatusError, res.Status)
}

func TestSubmodelMetadata(t *testing.T) {
	doc := []byte(`{
	  "@context": "https://www.w3.org/2022/wot/td/v1.1",
	  "@type": "saref:LightSwitch",
	  "id": "urn:meta",
	  "title": "Switch",
	  "titles": {"en": "Switch", "de": "Schalter"},
	  "description": "A switch",
	  "descriptions": {"de": "Ein Schalter"},
	  "version": {"instance": "1.2.0", "model": "0.9"},
	  "created": "2024-01-01T00:00:00Z",
	  "modified": "2024-02-01T00:00:00Z",
	  "support": "mailto:support@example.com",
	  "base": "http://example.com/switch/",
	  "customExtension": true
	}`)
	sm := model.NewSubmodel("")
	res := ImportThingDescriptionBytes(doc, nil, sm, nil, WithKind(model.MODELLINGKIND_TEMPLATE))
	require.True(t, res.OK(), "%v", res.Err)

	assert.Equal(t, model.MODELLINGKIND_TEMPLATE, sm.Kind)
	assert.Equal(t, "saref:LightSwitch", qualifierValue(t, sm.Qualifiers, "@type"))
	assert.Equal(t, "2024-01-01T00:00:00Z", qualifierValue(t, sm.Qualifiers, "created"))
	assert.Equal(t, "2024-02-01T00:00:00Z", qualifierValue(t, sm.Qualifiers, "modified"))
	assert.Equal(t, "mailto:support@example.com", qualifierValue(t, sm.Qualifiers, "support"))
	assert.Equal(t, "http://example.com/switch/", qualifierValue(t, sm.Qualifiers, "base"))
	assert.Equal(t, "0.9", qualifierValue(t, sm.Qualifiers, "model"))
	require.NotNil(t, sm.Administration)
	assert.Equal(t, "1.2.0", sm.Administration.Version)

	assert.Equal(t, []model.LangStringTextType{
		{Language: "en", Text: "A switch"},
		{Language: "de", Text: "Ein Schalter"},
	}, sm.Description)

	require.Len(t, sm.SubmodelElements, 1)
	titles, ok := sm.SubmodelElements[0].(*model.MultiLanguageProperty)
	require.True(t, ok)
	assert.Equal(t, model.MODELLINGKIND_TEMPLATE, titles.Kind)
	assert.Len(t, titles.Value, 2)

	assert.Contains(t, res.Warnings, "@context is not resolved")
	assert.Contains(t, res.Warnings, `ignoring unsupported top-level key "customExtension"`)
}

func TestVersionString(t *testing.T) {
	sm := model.NewSubmodel("")
	res := ImportThingDescriptionBytes([]byte(`{"id":"urn:v","version":"3"}`), nil, sm, nil)
	require.True(t, res.OK())
	require.NotNil(t, sm.Administration)
	assert.Equal(t, "3", sm.Administration.Version)

	res = ImportThingDescriptionBytes([]byte(`{"id":"urn:v","version":3}`), nil, model.NewSubmodel(""), nil)
	assert.Equal(t, StatusError, res.Status)
}

func TestMissingIDIsGenerated(t *testing.T) {
	sm := model.NewSubmodel("")
	ref := &model.Reference{}
	res := ImportThingDescriptionBytes([]byte(`{"title":"anonymous"}`), nil, sm, ref)
	require.True(t, res.OK())
	assert.Regexp(t, `^urn:uuid:[0-9a-f-]{36}$`, sm.ID)
	require.Len(t, ref.Keys, 1)
	assert.Equal(t, sm.ID, ref.Keys[0].Value)
	assert.NotEmpty(t, res.Warnings)

	preset := model.NewSubmodel("urn:preset")
	res = ImportThingDescriptionBytes([]byte(`{"title":"anonymous"}`), nil, preset, nil)
	require.True(t, res.OK())
	assert.Equal(t, "urn:preset", preset.ID)
}

func TestIDCollisionWarns(t *testing.T) {
	env := &model.Environment{}
	env.AddSubmodel(model.NewSubmodel("urn:x"))

	res := ImportThingDescriptionBytes([]byte(lampTD), env, model.NewSubmodel(""), nil)
	require.True(t, res.OK())
	assert.Contains(t, res.Warnings, "submodel id urn:x is already present in the environment")
}

func TestValidatorRejectsBeforeConversion(t *testing.T) {
	v, err := NewSchemaValidator([]byte(`{"type":"object","required":["title"]}`))
	require.NoError(t, err)

	sm := model.NewSubmodel("")
	res := ImportThingDescriptionBytes([]byte(`{"id":"urn:novalid"}`), nil, sm, nil,
		WithValidator(v), WithAttachMode(AttachIncremental))
	assert.Equal(t, StatusError, res.Status)
	var verr *ValidationError
	require.True(t, errors.As(res.Err, &verr))
	assert.NotEmpty(t, verr.Violations)
	assert.Empty(t, sm.ID)

	res = ImportThingDescriptionBytes([]byte(lampTD), nil, model.NewSubmodel(""), nil, WithValidator(v))
	assert.True(t, res.OK())
}

func TestSchemaValidatorRejectsBadSchema(t *testing.T) {
	_, err := NewSchemaValidator([]byte(`{"type":`))
	assert.Error(t, err)
	_, err = NewSchemaValidatorFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestMaxDocumentBytes(t *testing.T) {
	res := ImportThingDescriptionBytes([]byte(lampTD), nil, model.NewSubmodel(""), nil, WithMaxDocumentBytes(10))
	assert.Equal(t, StatusError, res.Status)
	assert.ErrorIs(t, res.Err, ErrDocumentTooLarge)

	res = ImportThingDescriptionBytes([]byte(lampTD), nil, model.NewSubmodel(""), nil, WithMaxDocumentBytes(int64(len(lampTD))))
	assert.True(t, res.OK())
}

func TestNilSubmodel(t *testing.T) {
	res := ImportThingDescriptionBytes([]byte(lampTD), nil, nil, nil)
	assert.ErrorIs(t, res.Err, ErrNoSubmodel)
}

func TestImportThingDescriptionFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lamp.td.json")
	require.NoError(t, os.WriteFile(path, []byte(lampTD), 0o600))

	sm := model.NewSubmodel("")
	res := ImportThingDescription(path, nil, sm, nil)
	require.True(t, res.OK())
	assert.Equal(t, "urn:x", sm.ID)

	res = ImportThingDescription(filepath.Join(t.TempDir(), "missing.json"), nil, model.NewSubmodel(""), nil)
	assert.Equal(t, StatusError, res.Status)
}

func TestParseAttachMode(t *testing.T) {
	assert.Equal(t, AttachIncremental, ParseAttachMode("incremental"))
	assert.Equal(t, AttachStaged, ParseAttachMode("staged"))
	assert.Equal(t, AttachStaged, ParseAttachMode(""))
	assert.Equal(t, "incremental", AttachIncremental.String())
	assert.Equal(t, "staged", AttachStaged.String())
}
