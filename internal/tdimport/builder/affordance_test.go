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
	"testing"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/semantics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProperty(t *testing.T) {
	doc := `{
		"type": "integer",
		"minimum": 0,
		"observable": true,
		"uriVariables": {"unit": {"type": "string", "enum": ["C", "F"]}},
		"forms": [
			{"href": "http://lamp/brightness", "op": "readproperty"},
			{"href": "mqtt://lamp/brightness", "op": ["observeproperty", "unobserveproperty"]}
		]
	}`
	smc, err := New().BuildProperty(parse(t, doc), "brightness")
	require.NoError(t, err)

	assert.Equal(t, "brightness", smc.IdShort)
	assert.Equal(t, semantics.Resolve("property"), semanticID(smc))
	assert.Equal(t, []string{"type", "minimum", "observable"}, qualifierTypes(smc.Qualifiers))
	assert.Equal(t, []string{"uriVariables", "forms"}, childNames(smc))

	uriVars := child(t, smc, "uriVariables")
	unit := child(t, uriVars, "unit")
	assert.Equal(t, semantics.Resolve("uriVariable"), semanticID(unit))
	assert.Equal(t, []string{"enum"}, childNames(unit))

	forms := child(t, smc, "forms")
	assert.Equal(t, semantics.Resolve("forms"), semanticID(forms))
	assert.Equal(t, []string{"form1", "form2"}, childNames(forms))
	assert.Equal(t, semantics.Resolve("form"), semanticID(child(t, forms, "form1")))
}

func TestBuildAction(t *testing.T) {
	doc := `{
		"input": {"type": "object", "properties": {"level": {"type": "number"}}},
		"output": {"type": "boolean"},
		"safe": false,
		"idempotent": true,
		"forms": [{"href": "http://lamp/fade"}]
	}`
	smc, err := New().BuildAction(parse(t, doc), "fade")
	require.NoError(t, err)

	assert.Equal(t, semantics.Resolve("action"), semanticID(smc))
	assert.Equal(t, []string{"forms", "input", "output"}, childNames(smc))
	assert.Equal(t, []string{"false"}, qualifierValues(smc.Qualifiers, "safe"))
	assert.Equal(t, []string{"true"}, qualifierValues(smc.Qualifiers, "idempotent"))

	input := child(t, smc, "input")
	assert.Equal(t, semantics.Resolve("input"), semanticID(input))
	assert.Equal(t, []string{"level"}, childNames(child(t, input, "properties")))

	output := child(t, smc, "output")
	assert.Equal(t, semantics.Resolve("output"), semanticID(output))
	assert.Equal(t, []string{"boolean"}, qualifierValues(output.Qualifiers, "type"))
}

func TestBuildEventTagsEachSchemaWithItsOwnSemanticID(t *testing.T) {
	doc := `{
		"subscription": {"type": "string"},
		"data": {"type": "integer"},
		"cancellation": {"type": "string"}
	}`
	smc, err := New().BuildEvent(parse(t, doc), "overheating")
	require.NoError(t, err)

	assert.Equal(t, semantics.Resolve("event"), semanticID(smc))
	assert.Equal(t, []string{"subscription", "data", "cancellation"}, childNames(smc))
	for _, key := range []string{"subscription", "data", "cancellation"} {
		assert.Equal(t, semantics.Resolve(key), semanticID(child(t, smc, key)), key)
	}
}

func TestAffordanceStructureErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		build func(b *Builder, doc string) error
		path  string
	}{
		{"forms not array", `{"forms":{"href":"x"}}`, func(b *Builder, doc string) error {
			_, err := b.BuildProperty(parse(t, doc), "p")
			return err
		}, "p.forms"},
		{"form scalar", `{"forms":["x"]}`, func(b *Builder, doc string) error {
			_, err := b.BuildProperty(parse(t, doc), "p")
			return err
		}, "p.forms[0]"},
		{"uriVariable scalar", `{"uriVariables":{"u":1}}`, func(b *Builder, doc string) error {
			_, err := b.BuildProperty(parse(t, doc), "p")
			return err
		}, "p.uriVariables.u"},
		{"input scalar", `{"input":"number"}`, func(b *Builder, doc string) error {
			_, err := b.BuildAction(parse(t, doc), "a")
			return err
		}, "a.input"},
		{"data array", `{"data":[]}`, func(b *Builder, doc string) error {
			_, err := b.BuildEvent(parse(t, doc), "e")
			return err
		}, "e.data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build(New(), tt.doc)
			var structErr *StructureError
			require.ErrorAs(t, err, &structErr)
			assert.Equal(t, tt.path, structErr.Path)
		})
	}
}

func TestBuildPropertiesKeepsDocumentOrder(t *testing.T) {
	doc := parse(t, `{"properties":{"z":{"type":"string"},"a":{"type":"number"},"m":{}}}`)
	v, _ := doc.Get("properties")
	props, err := New().BuildProperties(v, "$.properties")
	require.NoError(t, err)
	assert.Equal(t, semantics.Resolve("properties"), semanticID(props))
	assert.Equal(t, []string{"z", "a", "m"}, childNames(props))
}
