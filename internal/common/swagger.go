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

package common

import (
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SwaggerUIConfig holds configuration for Swagger UI endpoint setup
type SwaggerUIConfig struct {
	UIPath      string // Path prefix where Swagger UI will be served (e.g., "/swagger")
	SpecPath    string // Path where spec will be served (e.g., "/api-docs/openapi.yaml")
	SpecContent []byte // The OpenAPI spec content
	ServerURL   string // Server URL to use in OpenAPI spec (e.g., "http://localhost:5080/api")
}

var (
	serversRegex = regexp.MustCompile(`(?ms)^servers:\s*\n((?:[ \t]*-[^\n]*\n?|[ \t]+[^\n]*\n?)*)`)
	pathsRegex   = regexp.MustCompile(`(?m)^(paths:)`)
)

// injectServerURL modifies the OpenAPI spec to use the configured server URL
func injectServerURL(specContent []byte, serverURL string) []byte {
	if serverURL == "" {
		return specContent
	}

	newServers := fmt.Sprintf("servers:\n- url: '%s'\n  description: Auto-configured server\n", serverURL)

	// Replace the servers block up to the next top-level key
	if serversRegex.Match(specContent) {
		return serversRegex.ReplaceAll(specContent, []byte(newServers))
	}
	if pathsRegex.Match(specContent) {
		return pathsRegex.ReplaceAll(specContent, []byte(newServers+"$1"))
	}
	return append([]byte(newServers), specContent...)
}

// AddSwaggerUI serves the OpenAPI document and a Swagger UI pointing at it.
//
// Parameters:
//   - r: Chi router to add endpoints to
//   - cfg: Swagger UI configuration
//
// This adds two endpoints:
//   - cfg.UIPath/*: Serves the Swagger UI (swaggo/http-swagger)
//   - cfg.SpecPath: Serves the OpenAPI specification file
func AddSwaggerUI(r chi.Router, cfg SwaggerUIConfig) {
	specContent := injectServerURL(cfg.SpecContent, cfg.ServerURL)

	r.Get(cfg.SpecPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(specContent)
	})

	uiPath := strings.TrimSuffix(cfg.UIPath, "/")
	r.Get(uiPath, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, uiPath+"/index.html", http.StatusFound)
	})
	r.Get(uiPath+"/*", httpSwagger.Handler(
		httpSwagger.URL(cfg.SpecPath),
		httpSwagger.DeepLinking(true),
	))

	log.Printf("📖 Swagger UI available at %s/index.html", uiPath)
	log.Printf("📄 OpenAPI spec available at %s", cfg.SpecPath)
}
