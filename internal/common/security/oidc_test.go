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

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/stretchr/testify/assert"
)

func newTestOIDC(scopes ...string) *OIDC {
	verifier := oidc.NewVerifier("https://issuer.example.com", &oidc.StaticKeySet{}, &oidc.Config{ClientID: "tdimport-service"})
	return &OIDC{verifier: verifier, requiredScopes: scopes}
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	called := false
	h := newTestOIDC().Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/thing-descriptions", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing or invalid Authorization header")
	assert.False(t, called)
}

func TestMiddlewareRejectsInvalidToken(t *testing.T) {
	called := false
	h := newTestOIDC().Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

	req := httptest.NewRequest(http.MethodPost, "/thing-descriptions", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
	assert.False(t, called)
}

func TestCheckClaims(t *testing.T) {
	o := newTestOIDC("profile", "tdimport:write")

	status, _ := o.check(Claims{"scope": "openid profile tdimport:write"})
	assert.Equal(t, http.StatusOK, status)

	status, reason := o.check(Claims{"scope": "openid profile"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "insufficient scope", reason)

	status, reason = o.check(Claims{"typ": "ID", "scope": "profile tdimport:write"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "invalid token type", reason)

	status, _ = newTestOIDC().check(Claims{})
	assert.Equal(t, http.StatusOK, status)
}

func TestClaimsIssuedAt(t *testing.T) {
	at, ok := Claims{"iat": json.Number("1714564800")}.IssuedAt()
	assert.True(t, ok)
	assert.Equal(t, time.Unix(1714564800, 0), at)

	_, ok = Claims{}.IssuedAt()
	assert.False(t, ok)
}

func TestFromContextWithoutClaims(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, FromContext(req))
	_, ok := IssuedAtFromContext(req)
	assert.False(t, ok)
}
