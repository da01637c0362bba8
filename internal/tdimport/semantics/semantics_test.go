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

package semantics

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKnownKeywords(t *testing.T) {
	tests := []struct {
		keyword  string
		expected string
	}{
		{"Thing", "https://www.w3.org/2019/wot/td#Thing"},
		{"property", "https://www.w3.org/2019/wot/td#PropertyAffordance"},
		{"form", "https://www.w3.org/2019/wot/hypermedia#Form"},
		{"oauth2", "https://www.w3.org/2019/wot/security#OAuth2SecurityScheme"},
		{"minimum", "https://www.w3.org/2019/wot/json-schema#minimum"},
		{"data", "https://www.w3.org/2019/wot/td#hasNotificationSchema"},
	}
	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.keyword))
			assert.True(t, Has(tt.keyword))
		})
	}
}

func TestResolveUnknownKeywordReturnsEmpty(t *testing.T) {
	for _, keyword := range []string{"", "security0", "enum1", "htv:methodName", "PROPERTY", "contentTypeschema"} {
		assert.Equal(t, Empty, Resolve(keyword), keyword)
		assert.False(t, Has(keyword), keyword)
	}
}

func TestEventSchemasHaveDistinctIdentifiers(t *testing.T) {
	ids := map[string]bool{
		Resolve("subscription"): true,
		Resolve("data"):         true,
		Resolve("cancellation"): true,
	}
	assert.Len(t, ids, 3)
}

func TestKeywordsSortedAndResolvable(t *testing.T) {
	keywords := Keywords()
	assert.True(t, sort.StringsAreSorted(keywords))
	assert.Len(t, keywords, len(table))
	for _, k := range keywords {
		id := Resolve(k)
		assert.NotEqual(t, Empty, id)
		assert.True(t, strings.HasPrefix(id, "http"), k)
	}
}
