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

// Package semantics maps Thing Description keywords to the W3C Web of Things
// ontology identifiers used as AAS semantic ids.
package semantics

import "sort"

// Empty is returned by Resolve for keywords outside the vocabulary.
const Empty = "empty"

const (
	tdNS     = "https://www.w3.org/2019/wot/td#"
	hctlNS   = "https://www.w3.org/2019/wot/hypermedia#"
	schemaNS = "https://www.w3.org/2019/wot/json-schema#"
	secNS    = "https://www.w3.org/2019/wot/security#"
	rdfType  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	unitCode = "http://schema.org/unitCode"
)

var table = map[string]string{
	// Thing and interaction affordances
	"Thing":               tdNS + "Thing",
	"id":                  tdNS + "id",
	"@type":               rdfType,
	"title":               tdNS + "title",
	"titles":              tdNS + "titles",
	"description":         tdNS + "description",
	"descriptions":        tdNS + "descriptions",
	"version":             tdNS + "versionInfo",
	"created":             tdNS + "created",
	"modified":            tdNS + "modified",
	"support":             tdNS + "supportContact",
	"base":                tdNS + "baseURI",
	"profile":             tdNS + "followsProfile",
	"property":            tdNS + "PropertyAffordance",
	"action":              tdNS + "ActionAffordance",
	"event":               tdNS + "EventAffordance",
	"properties":          tdNS + "hasPropertyAffordance",
	"actions":             tdNS + "hasActionAffordance",
	"events":              tdNS + "hasEventAffordance",
	"uriVariable":         tdNS + "hasUriTemplateSchema",
	"forms":               tdNS + "hasForm",
	"links":               tdNS + "hasLink",
	"security":            tdNS + "hasSecurityConfiguration",
	"securityDefinitions": tdNS + "definesSecurityScheme",
	"schemaDefinitions":   tdNS + "schemaDefinitions",
	"observable":          tdNS + "isObservable",
	"input":               tdNS + "hasInputSchema",
	"output":              tdNS + "hasOutputSchema",
	"safe":                tdNS + "isSafe",
	"idempotent":          tdNS + "isIdempotent",
	"subscription":        tdNS + "hasSubscriptionSchema",
	"data":                tdNS + "hasNotificationSchema",
	"cancellation":        tdNS + "hasCancellationSchema",

	// DataSchema
	"const":            schemaNS + "const",
	"default":          schemaNS + "default",
	"unit":             unitCode,
	"oneOf":            schemaNS + "oneOf",
	"enum":             schemaNS + "enum",
	"readOnly":         schemaNS + "readOnly",
	"writeOnly":        schemaNS + "writeOnly",
	"format":           schemaNS + "format",
	"type":             schemaNS + "type",
	"items":            schemaNS + "items",
	"minItems":         schemaNS + "minItems",
	"maxItems":         schemaNS + "maxItems",
	"minimum":          schemaNS + "minimum",
	"maximum":          schemaNS + "maximum",
	"exclusiveMinimum": schemaNS + "exclusiveMinimum",
	"exclusiveMaximum": schemaNS + "exclusiveMaximum",
	"multipleOf":       schemaNS + "multipleOf",
	"minLength":        schemaNS + "minLength",
	"maxLength":        schemaNS + "maxLength",
	"pattern":          schemaNS + "pattern",
	"contentEncoding":  schemaNS + "contentEncoding",
	"contentMediaType": schemaNS + "contentMediaType",
	"required":         schemaNS + "required",

	// Hypermedia controls
	"form":                hctlNS + "Form",
	"link":                hctlNS + "Link",
	"href":                hctlNS + "hasTarget",
	"contentType":         hctlNS + "forContentType",
	"contentCoding":       hctlNS + "forContentCoding",
	"subprotocol":         hctlNS + "forSubProtocol",
	"op":                  hctlNS + "hasOperationType",
	"response":            hctlNS + "returns",
	"additionalResponses": hctlNS + "hasAdditionalReturns",
	"success":             hctlNS + "isSuccess",
	"schema":              hctlNS + "hasAdditionalOutputSchema",
	"rel":                 hctlNS + "hasRelationType",
	"anchor":              hctlNS + "hasAnchor",
	"sizes":               hctlNS + "hasSizes",
	"hreflang":            hctlNS + "hintsAtLanguage",

	// Security schemes
	"scheme":        secNS + "SecurityScheme",
	"proxy":         secNS + "proxy",
	"nosec":         secNS + "NoSecurityScheme",
	"basic":         secNS + "BasicSecurityScheme",
	"digest":        secNS + "DigestSecurityScheme",
	"bearer":        secNS + "BearerSecurityScheme",
	"psk":           secNS + "PSKSecurityScheme",
	"apikey":        secNS + "APIKeySecurityScheme",
	"oauth2":        secNS + "OAuth2SecurityScheme",
	"combo":         secNS + "ComboSecurityScheme",
	"in":            secNS + "in",
	"name":          secNS + "name",
	"qop":           secNS + "qop",
	"authorization": secNS + "authorization",
	"alg":           secNS + "alg",
	"identity":      secNS + "identity",
	"token":         secNS + "token",
	"refresh":       secNS + "refresh",
	"flow":          secNS + "flow",
	"scopes":        secNS + "scopes",
	"allOf":         secNS + "allOf",
}

// Resolve returns the semantic identifier of keyword, or Empty if the keyword is not part of the vocabulary.
func Resolve(keyword string) string {
	if id, ok := table[keyword]; ok {
		return id
	}
	return Empty
}

// Has reports whether keyword is part of the vocabulary.
func Has(keyword string) bool {
	_, ok := table[keyword]
	return ok
}

// Keywords returns all vocabulary keywords in sorted order.
func Keywords() []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
