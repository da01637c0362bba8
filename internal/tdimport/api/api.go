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

// Package api exposes the Thing Description importer over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
)

// ThingDescriptionImportAPIRouter defines the required methods for binding the api requests to responses.
// The implementation parses the http request, passes the data to a ThingDescriptionImportAPIServicer
// and writes the service results to the http response.
type ThingDescriptionImportAPIRouter interface {
	PostThingDescription(http.ResponseWriter, *http.Request)
	GetAllImportedSubmodels(http.ResponseWriter, *http.Request)
	GetImportedSubmodelById(http.ResponseWriter, *http.Request)
	DeleteImportedSubmodelById(http.ResponseWriter, *http.Request)
}

// ThingDescriptionImportAPIServicer defines the api actions of the import service.
type ThingDescriptionImportAPIServicer interface {
	PostThingDescription(ctx context.Context, source []byte) (model.ImplResponse, error)
	GetAllImportedSubmodels(ctx context.Context) (model.ImplResponse, error)
	GetImportedSubmodelById(ctx context.Context, submodelID string, format string) (model.ImplResponse, error)
	DeleteImportedSubmodelById(ctx context.Context, submodelID string) (model.ImplResponse, error)
}
