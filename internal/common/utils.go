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

// Package common provides configuration, HTTP plumbing and error helpers
// shared by the Thing Description import service and CLI.
//
//nolint:revive
package common

import (
	"strings"
	"time"
)

// GetCurrentTimestamp returns the current UTC time in RFC3339 format.
//
// Example:
//
//	timestamp := GetCurrentTimestamp()
//	// Returns: "2025-11-03T13:45:30Z"
func GetCurrentTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// NormalizeBasePath normalizes a URL path for mounting routers.
//
// The function applies the following transformations:
//   - Empty strings and single "/" are normalized to "/"
//   - Adds a leading "/" if missing
//   - Removes trailing "/" (except for root path)
//
// Examples:
//
//	NormalizeBasePath("")        // Returns: "/"
//	NormalizeBasePath("api")     // Returns: "/api"
//	NormalizeBasePath("/api/")   // Returns: "/api"
func NormalizeBasePath(p string) string {
	if p == "" || p == "/" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(p, "/")
}

// JoinBasePath prefixes route with the normalized base path.
func JoinBasePath(base string, route string) string {
	base = NormalizeBasePath(base)
	if base == "/" {
		return route
	}
	return base + route
}
