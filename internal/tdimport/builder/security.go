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
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/tdjson"
)

// SchemeKind is the closed set of security scheme discriminators.
type SchemeKind int

const (
	// SchemeUnknown is any scheme value outside the vocabulary.
	SchemeUnknown SchemeKind = iota
	SchemeNoSec
	SchemeBasic
	SchemeDigest
	SchemeBearer
	SchemePSK
	SchemeAPIKey
	SchemeOAuth2
	SchemeCombo
)

var schemeNames = map[string]SchemeKind{
	"nosec":  SchemeNoSec,
	"basic":  SchemeBasic,
	"digest": SchemeDigest,
	"bearer": SchemeBearer,
	"psk":    SchemePSK,
	"apikey": SchemeAPIKey,
	"oauth2": SchemeOAuth2,
	"combo":  SchemeCombo,
}

// ParseSchemeKind maps a raw scheme value to its SchemeKind. Matching is case-sensitive.
func ParseSchemeKind(raw string) SchemeKind {
	if k, ok := schemeNames[raw]; ok {
		return k
	}
	return SchemeUnknown
}

func (k SchemeKind) String() string {
	for name, v := range schemeNames {
		if v == k {
			return name
		}
	}
	return "unknown"
}

var (
	securityCommonRules []fieldRule
	schemeRules         map[SchemeKind][]fieldRule
)

func init() {
	securityCommonRules = concatRules(
		qualifierRules("@type"),
		descriptionRules,
		qualifierRules("proxy", "scheme"),
	)
	schemeRules = map[SchemeKind][]fieldRule{
		SchemeNoSec:  nil,
		SchemeBasic:  qualifierRules("name", "in"),
		SchemeDigest: qualifierRules("name", "in", "qop"),
		SchemeAPIKey: qualifierRules("name", "in"),
		SchemeBearer: qualifierRules("name", "in", "authorization", "alg", "format"),
		SchemePSK:    qualifierRules("identity"),
		SchemeOAuth2: concatRules(
			qualifierRules("authorization", "token", "refresh", "flow"),
			[]fieldRule{dualityRule("scopes")},
		),
		SchemeCombo: {
			dualityRule("oneOf"),
			dualityRule("allOf"),
		},
	}
}

// BuildSecurityDefinition converts one named security scheme. The scheme
// discriminator selects the scheme-specific fields and the semantic id; an unknown
// scheme keeps the common fields only and is reported as a warning.
func (b *Builder) BuildSecurityDefinition(obj *tdjson.Object, name string) (*model.SubmodelElementCollection, error) {
	return b.securityDefinition(name, obj, name)
}

func (b *Builder) securityDefinition(path string, obj *tdjson.Object, name string) (*model.SubmodelElementCollection, error) {
	smc := b.NewCollection(name, "")
	n := &node{path: path, obj: obj, smc: smc}
	if err := b.applyRules(securityCommonRules, n); err != nil {
		return nil, err
	}

	raw := ""
	if v, ok := obj.Get("scheme"); ok {
		raw = v.Text()
	}
	kind := ParseSchemeKind(raw)
	if kind == SchemeUnknown {
		b.Warn("%s: unknown security scheme %q, only common fields extracted", path, raw)
		return smc, nil
	}

	if err := b.applyRules(schemeRules[kind], n); err != nil {
		return nil, err
	}
	smc.SetSemanticID(SemanticReference(raw))
	return smc, nil
}

// BuildSecurityDefinitions converts the Thing-level securityDefinitions map.
func (b *Builder) BuildSecurityDefinitions(v tdjson.Value, path string) (*model.SubmodelElementCollection, error) {
	return b.namedMap(v, path, "securityDefinitions", func(b *Builder, p string, obj *tdjson.Object, name string) (*model.SubmodelElementCollection, error) {
		return b.securityDefinition(p, obj, name)
	})
}

// Duality applies the string/array policy to a Thing-level field such as security or profile.
// It returns either a qualifier (collection nil) or a collection with zero-based ordinal qualifiers.
func (b *Builder) Duality(key string, v tdjson.Value, path string) (model.Qualifier, *model.SubmodelElementCollection, error) {
	return b.duality(key, v, path)
}
