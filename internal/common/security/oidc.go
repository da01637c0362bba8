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

// Package auth verifies OpenID Connect bearer tokens on protected routes.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
)

// OIDC holds the token verifier and the scopes every request must carry.
type OIDC struct {
	verifier       *oidc.IDTokenVerifier
	requiredScopes []string
}

// OIDCSettings configures NewOIDC.
type OIDCSettings struct {
	Issuer         string
	Audience       string
	RequiredScopes []string
}

// NewOIDC discovers the issuer and creates a verifier for its tokens.
func NewOIDC(ctx context.Context, s OIDCSettings) (*OIDC, error) {
	log.Printf("🔐 Initializing OIDC verifier...")
	provider, err := oidc.NewProvider(ctx, s.Issuer)
	if err != nil {
		return nil, err
	}
	v := provider.Verifier(&oidc.Config{
		ClientID: s.Audience,
	})
	log.Printf("✅ OIDC verifier created. Issuer=%s Audience=%s", s.Issuer, s.Audience)
	return &OIDC{verifier: v, requiredScopes: s.RequiredScopes}, nil
}

// Claims are the decoded token claims.
type Claims map[string]any

type ctxKey string

const (
	claimsKey   ctxKey = "jwtClaims"
	issuedAtKey ctxKey = "tokenIssuedAt"
)

// FromContext returns the claims stored by Middleware.
func FromContext(r *http.Request) Claims {
	if v := r.Context().Value(claimsKey); v != nil {
		if c, ok := v.(Claims); ok {
			return c
		}
	}
	return nil
}

// IssuedAtFromContext returns the iat claim stored by Middleware.
func IssuedAtFromContext(r *http.Request) (time.Time, bool) {
	if v := r.Context().Value(issuedAtKey); v != nil {
		if t, ok := v.(time.Time); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// Middleware rejects requests without a valid bearer token.
// A missing header is answered with 401, a token that fails verification with 403.
func (o *OIDC) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			deny(w, http.StatusUnauthorized, "missing or invalid Authorization header")
			return
		}
		raw := strings.TrimPrefix(authz, "Bearer ")

		idToken, err := o.verifier.Verify(r.Context(), raw)
		if err != nil {
			log.Printf("❌ Token verification failed: %v", err)
			deny(w, http.StatusForbidden, "invalid token")
			return
		}
		c, err := decodeClaims(idToken)
		if err != nil {
			log.Printf("❌ Failed to parse claims: %v", err)
			deny(w, http.StatusForbidden, "invalid claims")
			return
		}
		if status, reason := o.check(c); status != http.StatusOK {
			deny(w, status, reason)
			return
		}

		log.Printf("✅ Token verified successfully for subject: %v", c["sub"])
		ctx := context.WithValue(r.Context(), claimsKey, c)
		if issuedAt, ok := c.IssuedAt(); ok {
			ctx = context.WithValue(ctx, issuedAtKey, issuedAt)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// check applies the token type and scope rules to verified claims.
func (o *OIDC) check(c Claims) (int, string) {
	if typ, _ := c.GetString("typ"); typ != "" && !strings.EqualFold(typ, "Bearer") {
		log.Printf("❌ unexpected token typ: %q", typ)
		return http.StatusForbidden, "invalid token type"
	}
	if !hasAllScopes(c, o.requiredScopes) {
		log.Printf("❌ missing required scopes: %v", o.requiredScopes)
		return http.StatusForbidden, "insufficient scope"
	}
	return http.StatusOK, ""
}

func decodeClaims(idToken *oidc.IDToken) (Claims, error) {
	var rm json.RawMessage
	if err := idToken.Claims(&rm); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(rm))
	dec.UseNumber()

	var c Claims
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return c, nil
}

func deny(w http.ResponseWriter, status int, reason string) {
	resp := common.NewErrorResponse(errors.New(reason), status, "Middleware", "OIDC", "Denied")
	_ = model.EncodeJSONResponse(resp.Body, &resp.Code, w)
}

// GetString returns a string claim.
func (c Claims) GetString(key string) (string, bool) {
	v, ok := c[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// IssuedAt returns the iat claim.
func (c Claims) IssuedAt() (time.Time, bool) {
	switch n := c["iat"].(type) {
	case json.Number:
		sec, err := n.Int64()
		if err != nil {
			return time.Time{}, false
		}
		return time.Unix(sec, 0), true
	case float64:
		return time.Unix(int64(n), 0), true
	default:
		return time.Time{}, false
	}
}

func hasAllScopes(c Claims, need []string) bool {
	s, _ := c.GetString("scope")
	have := map[string]struct{}{}
	for _, sc := range strings.Fields(s) {
		have[sc] = struct{}{}
	}
	for _, n := range need {
		if _, ok := have[n]; !ok {
			return false
		}
	}
	return true
}
