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

func TestSecuritySchemes(t *testing.T) {
	tests := []struct {
		scheme   string
		doc      string
		expected []string
	}{
		{"nosec", `{"scheme":"nosec","name":"ignored"}`, []string{"scheme"}},
		{"basic", `{"scheme":"basic","in":"header","name":"Authorization"}`, []string{"scheme", "name", "in"}},
		{"digest", `{"scheme":"digest","qop":"auth-int","in":"header"}`, []string{"scheme", "in", "qop"}},
		{"apikey", `{"scheme":"apikey","in":"query","name":"key"}`, []string{"scheme", "name", "in"}},
		{"bearer", `{"scheme":"bearer","format":"jwt","alg":"ES256","authorization":"https://auth"}`, []string{"scheme", "authorization", "alg", "format"}},
		{"psk", `{"scheme":"psk","identity":"lamp-1"}`, []string{"scheme", "identity"}},
		{"oauth2", `{"scheme":"oauth2","flow":"code","token":"https://t","authorization":"https://a","refresh":"https://r","scopes":"limited"}`, []string{"scheme", "authorization", "token", "refresh", "flow", "scopes"}},
	}
	for _, tt := range tests {
		t.Run(tt.scheme, func(t *testing.T) {
			b := New()
			smc, err := b.BuildSecurityDefinition(parse(t, tt.doc), tt.scheme+"_sc")
			require.NoError(t, err)
			assert.Equal(t, tt.scheme+"_sc", smc.IdShort)
			assert.Equal(t, semantics.Resolve(tt.scheme), semanticID(smc))
			assert.Equal(t, tt.expected, qualifierTypes(smc.Qualifiers))
			assert.Empty(t, b.Warnings())
		})
	}
}

func TestSecurityCommonFields(t *testing.T) {
	doc := `{"@type":"ex:Sec","description":"basic auth","descriptions":{"de":"Basis"},"proxy":"https://proxy","scheme":"basic"}`
	smc, err := New().BuildSecurityDefinition(parse(t, doc), "basic_sc")
	require.NoError(t, err)
	assert.Equal(t, []string{"@type", "proxy", "scheme"}, qualifierTypes(smc.Qualifiers))
	require.Len(t, smc.Description, 2)
	assert.Equal(t, "basic auth", smc.Description[0].Text)
	assert.Equal(t, "de", smc.Description[1].Language)
}

func TestComboSchemeDuality(t *testing.T) {
	smc, err := New().BuildSecurityDefinition(parse(t, `{"scheme":"combo","oneOf":["basic_sc","apikey_sc"],"allOf":"psk_sc"}`), "combo_sc")
	require.NoError(t, err)

	assert.Equal(t, semantics.Resolve("combo"), semanticID(smc))
	oneOf := child(t, smc, "oneOf")
	assert.Equal(t, []string{"oneOf0", "oneOf1"}, qualifierTypes(oneOf.Qualifiers))
	assert.Equal(t, []string{"apikey_sc"}, qualifierValues(oneOf.Qualifiers, "oneOf1"))
	assert.Equal(t, []string{"psk_sc"}, qualifierValues(smc.Qualifiers, "allOf"))
}

func TestOAuth2ScopesArray(t *testing.T) {
	smc, err := New().BuildSecurityDefinition(parse(t, `{"scheme":"oauth2","scopes":["read","write"]}`), "oauth2_sc")
	require.NoError(t, err)
	scopes := child(t, smc, "scopes")
	assert.Equal(t, []string{"scopes0", "scopes1"}, qualifierTypes(scopes.Qualifiers))
}

func TestUnknownSchemeKeepsCommonFields(t *testing.T) {
	b := New()
	smc, err := b.BuildSecurityDefinition(parse(t, `{"scheme":"Basic","name":"x","description":"d"}`), "odd")
	require.NoError(t, err)
	assert.Nil(t, smc.SemanticID)
	assert.Equal(t, []string{"scheme"}, qualifierTypes(smc.Qualifiers))
	require.Len(t, smc.Description, 1)
	require.Len(t, b.Warnings(), 1)
	assert.Contains(t, b.Warnings()[0], `"Basic"`)
}

func TestMissingSchemeIsUnknown(t *testing.T) {
	b := New()
	smc, err := b.BuildSecurityDefinition(parse(t, `{"proxy":"p"}`), "p")
	require.NoError(t, err)
	assert.Nil(t, smc.SemanticID)
	assert.Len(t, b.Warnings(), 1)
}

func TestParseSchemeKind(t *testing.T) {
	assert.Equal(t, SchemeOAuth2, ParseSchemeKind("oauth2"))
	assert.Equal(t, SchemeUnknown, ParseSchemeKind("OAuth2"))
	assert.Equal(t, "apikey", SchemeAPIKey.String())
	assert.Equal(t, "unknown", SchemeUnknown.String())
}

func TestBuildSecurityDefinitionsMap(t *testing.T) {
	doc := parse(t, `{"securityDefinitions":{"nosec_sc":{"scheme":"nosec"},"basic_sc":{"scheme":"basic"}}}`)
	v, _ := doc.Get("securityDefinitions")
	defs, err := New().BuildSecurityDefinitions(v, "$.securityDefinitions")
	require.NoError(t, err)
	assert.Equal(t, semantics.Resolve("securityDefinitions"), semanticID(defs))
	assert.Equal(t, []string{"nosec_sc", "basic_sc"}, childNames(defs))
}
