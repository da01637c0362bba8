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

func TestFormScalarFields(t *testing.T) {
	doc := `{"href":"coap://lamp/on","contentType":"application/cbor","contentCoding":"gzip"}`
	smc, err := New().BuildForm(parse(t, doc), "form1")
	require.NoError(t, err)

	assert.Equal(t, semantics.Resolve("form"), semanticID(smc))
	assert.Equal(t, []string{"href", "contentType", "contentCoding"}, qualifierTypes(smc.Qualifiers))
	for _, q := range smc.Qualifiers {
		require.NotNil(t, q.SemanticID, q.Type)
		assert.Equal(t, semantics.Resolve(q.Type), q.SemanticID.FirstKeyValue())
	}
}

func TestFormArrayScalarDuality(t *testing.T) {
	for _, key := range []string{"security", "scopes", "op"} {
		t.Run(key+" string", func(t *testing.T) {
			smc, err := New().BuildForm(parse(t, `{"`+key+`":"value"}`), "f")
			require.NoError(t, err)
			assert.Equal(t, []string{"value"}, qualifierValues(smc.Qualifiers, key))
			_, found := smc.FindElement(key)
			assert.False(t, found)
		})
		t.Run(key+" array", func(t *testing.T) {
			smc, err := New().BuildForm(parse(t, `{"`+key+`":["a","b","c"]}`), "f")
			require.NoError(t, err)
			assert.Empty(t, qualifierValues(smc.Qualifiers, key))

			c := child(t, smc, key)
			assert.Equal(t, []string{key + "0", key + "1", key + "2"}, qualifierTypes(c.Qualifiers))
			assert.Equal(t, []string{"b"}, qualifierValues(c.Qualifiers, key+"1"))
			for _, q := range c.Qualifiers {
				assert.Nil(t, q.SemanticID)
			}
		})
		t.Run(key+" number", func(t *testing.T) {
			_, err := New().BuildForm(parse(t, `{"`+key+`":1}`), "f")
			var structErr *StructureError
			require.ErrorAs(t, err, &structErr)
			assert.Equal(t, "f."+key, structErr.Path)
		})
	}
}

func TestFormCatchAllAndDuplicatedSubprotocol(t *testing.T) {
	doc := `{"href":"http://lamp","htv:methodName":"PUT","subprotocol":"longpoll","op":"writeproperty","cov:minimum":1}`
	smc, err := New().BuildForm(parse(t, doc), "f")
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"href", "subprotocol", "op", "htv:methodName", "subprotocol", "cov:minimum"},
		qualifierTypes(smc.Qualifiers))
	assert.Equal(t, []string{"longpoll", "longpoll"}, qualifierValues(smc.Qualifiers, "subprotocol"))

	q, ok := smc.FindQualifier("htv:methodName")
	require.True(t, ok)
	assert.Equal(t, "PUT", q.Value)
	assert.Nil(t, q.SemanticID)
}

func TestFormResponse(t *testing.T) {
	smc, err := New().BuildForm(parse(t, `{"href":"x","response":{"contentType":"application/json"}}`), "form1")
	require.NoError(t, err)
	assert.Equal(t, []string{"contentType"}, childNames(smc))

	response := child(t, smc, "contentType")
	assert.Equal(t, semantics.Resolve("contentType"), semanticID(response))
	assert.Equal(t, []string{"application/json"}, qualifierValues(response.Qualifiers, "contentType"))

	smc, err = New().BuildForm(parse(t, `{"response":{"contentType":"text/plain","title":"Reply"}}`), "form1")
	require.NoError(t, err)
	response = child(t, smc, "contentType")
	assert.Equal(t, []string{"title", "contentType"}, qualifierTypes(response.Qualifiers))

	_, err = New().BuildForm(parse(t, `{"response":"application/json"}`), "f")
	var structErr *StructureError
	require.ErrorAs(t, err, &structErr)
	assert.Equal(t, "f.response", structErr.Path)
}

func TestFormAdditionalResponses(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		doc := `{"additionalResponses":[
			{"success":false,"contentType":"application/problem+json","schema":"error"},
			{"success":true}
		]}`
		smc, err := New().BuildForm(parse(t, doc), "f")
		require.NoError(t, err)

		wrapper := child(t, smc, "additionalResponses")
		assert.Equal(t, semantics.Resolve("additionalResponses"), semanticID(wrapper))
		assert.Equal(t, []string{"additionalResponse1", "additionalResponse2"}, childNames(wrapper))

		first := child(t, wrapper, "additionalResponse1")
		assert.Equal(t, []string{"success", "contentTypeschema", "schema"}, qualifierTypes(first.Qualifiers))
		assert.Equal(t, []string{"application/problem+json"}, qualifierValues(first.Qualifiers, "contentTypeschema"))
		assert.Nil(t, first.Qualifiers[1].SemanticID)
		assert.NotNil(t, first.Qualifiers[0].SemanticID)
	})
	t.Run("object", func(t *testing.T) {
		smc, err := New().BuildForm(parse(t, `{"additionalResponses":{"schema":"s"}}`), "f")
		require.NoError(t, err)
		wrapper := child(t, smc, "additionalResponses")
		assert.Equal(t, []string{"additionalResponse1"}, childNames(wrapper))
	})
	t.Run("string", func(t *testing.T) {
		smc, err := New().BuildForm(parse(t, `{"additionalResponses":"text/plain"}`), "f")
		require.NoError(t, err)
		wrapper := child(t, smc, "additionalResponses")
		entry := child(t, wrapper, "additionalResponse1")
		assert.Equal(t, []string{"text/plain"}, qualifierValues(entry.Qualifiers, "additionalResponse"))
	})
	t.Run("malformed", func(t *testing.T) {
		_, err := New().BuildForm(parse(t, `{"additionalResponses":[1]}`), "f")
		var structErr *StructureError
		require.ErrorAs(t, err, &structErr)
		assert.Equal(t, "f.additionalResponses[0]", structErr.Path)
	})
}
