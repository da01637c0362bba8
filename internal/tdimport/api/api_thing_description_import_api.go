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

package api

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	tdimporterrors "github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/errors"
	"github.com/go-chi/chi/v5"
)

const (
	componentName = "TDIMPORT"

	// FormatAAS selects the AAS SDK serialization of a submodel.
	FormatAAS = "aas"
)

// ThingDescriptionImportAPIController binds http requests to an api service and writes the service results to the http response
type ThingDescriptionImportAPIController struct {
	service          ThingDescriptionImportAPIServicer
	errorHandler     model.ErrorHandler
	maxDocumentBytes int64
	writeMiddleware  func(http.Handler) http.Handler
}

// ThingDescriptionImportAPIOption for how the controller is set up.
type ThingDescriptionImportAPIOption func(*ThingDescriptionImportAPIController)

// WithThingDescriptionImportAPIErrorHandler inject ErrorHandler into controller
func WithThingDescriptionImportAPIErrorHandler(h model.ErrorHandler) ThingDescriptionImportAPIOption {
	return func(c *ThingDescriptionImportAPIController) {
		c.errorHandler = h
	}
}

// WithMaxDocumentBytes caps the request body of PostThingDescription. Zero disables the cap.
func WithMaxDocumentBytes(n int64) ThingDescriptionImportAPIOption {
	return func(c *ThingDescriptionImportAPIController) {
		c.maxDocumentBytes = n
	}
}

// WithWriteMiddleware wraps the routes that modify state, e.g. with token verification.
func WithWriteMiddleware(mw func(http.Handler) http.Handler) ThingDescriptionImportAPIOption {
	return func(c *ThingDescriptionImportAPIController) {
		c.writeMiddleware = mw
	}
}

// NewThingDescriptionImportAPIController creates a default api controller
func NewThingDescriptionImportAPIController(s ThingDescriptionImportAPIServicer, opts ...ThingDescriptionImportAPIOption) *ThingDescriptionImportAPIController {
	controller := &ThingDescriptionImportAPIController{
		service:      s,
		errorHandler: model.DefaultErrorHandler,
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Routes returns all the api routes for the ThingDescriptionImportAPIController
func (c *ThingDescriptionImportAPIController) Routes() Routes {
	return Routes{
		"PostThingDescription": Route{
			strings.ToUpper("Post"),
			"/thing-descriptions",
			c.protect(c.PostThingDescription),
		},
		"GetAllImportedSubmodels": Route{
			strings.ToUpper("Get"),
			"/submodels",
			c.GetAllImportedSubmodels,
		},
		"GetImportedSubmodelById": Route{
			strings.ToUpper("Get"),
			"/submodels/{submodelIdentifier}",
			c.GetImportedSubmodelById,
		},
		"DeleteImportedSubmodelById": Route{
			strings.ToUpper("Delete"),
			"/submodels/{submodelIdentifier}",
			c.protect(c.DeleteImportedSubmodelById),
		},
	}
}

func (c *ThingDescriptionImportAPIController) protect(h http.HandlerFunc) http.HandlerFunc {
	if c.writeMiddleware == nil {
		return h
	}
	return c.writeMiddleware(h).ServeHTTP
}

// PostThingDescription - Imports a Thing Description and stores the produced submodel
func (c *ThingDescriptionImportAPIController) PostThingDescription(w http.ResponseWriter, r *http.Request) {
	reader := io.Reader(r.Body)
	if c.maxDocumentBytes > 0 {
		reader = io.LimitReader(r.Body, c.maxDocumentBytes+1)
	}
	source, err := io.ReadAll(reader)
	if err != nil {
		log.Printf("🧩 [%s] Error in PostThingDescription: read body: %v", componentName, err)
		result := common.NewErrorResponse(err, http.StatusBadRequest, componentName, "PostThingDescription", "RequestBody")
		_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
		return
	}
	if c.maxDocumentBytes > 0 && int64(len(source)) > c.maxDocumentBytes {
		log.Printf("🧩 [%s] Error in PostThingDescription: body exceeds %d bytes", componentName, c.maxDocumentBytes)
		result := common.NewErrorResponse(tdimporterrors.ErrDocumentTooLarge, http.StatusRequestEntityTooLarge, componentName, "PostThingDescription", "RequestBody")
		_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
		return
	}

	result, err := c.service.PostThingDescription(r.Context(), source)
	if err != nil {
		log.Printf("🧩 [%s] Error in PostThingDescription: service failure (bytes=%d): %v", componentName, len(source), err)
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
}

// GetAllImportedSubmodels - Returns all import records
func (c *ThingDescriptionImportAPIController) GetAllImportedSubmodels(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetAllImportedSubmodels(r.Context())
	if err != nil {
		log.Printf("🧩 [%s] Error in GetAllImportedSubmodels: service failure: %v", componentName, err)
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
}

// GetImportedSubmodelById - Returns the submodel produced from one Thing Description
func (c *ThingDescriptionImportAPIController) GetImportedSubmodelById(w http.ResponseWriter, r *http.Request) {
	submodelID, ok := c.submodelIdentifier(w, r, "GetImportedSubmodelById")
	if !ok {
		return
	}
	format := r.URL.Query().Get("format")
	if format != "" && format != FormatAAS {
		log.Printf("🧩 [%s] Error in GetImportedSubmodelById: unsupported format=%q", componentName, format)
		result := common.NewErrorResponse(
			common.NewErrBadRequest("Unsupported format '"+format+"'"),
			http.StatusBadRequest,
			componentName,
			"GetImportedSubmodelById",
			"format",
		)
		_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
		return
	}

	result, err := c.service.GetImportedSubmodelById(r.Context(), submodelID, format)
	if err != nil {
		log.Printf("🧩 [%s] Error in GetImportedSubmodelById: service failure (submodelIdentifier=%q): %v", componentName, submodelID, err)
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
}

// DeleteImportedSubmodelById - Deletes an import record and its archived source
func (c *ThingDescriptionImportAPIController) DeleteImportedSubmodelById(w http.ResponseWriter, r *http.Request) {
	submodelID, ok := c.submodelIdentifier(w, r, "DeleteImportedSubmodelById")
	if !ok {
		return
	}
	result, err := c.service.DeleteImportedSubmodelById(r.Context(), submodelID)
	if err != nil {
		log.Printf("🧩 [%s] Error in DeleteImportedSubmodelById: service failure (submodelIdentifier=%q): %v", componentName, submodelID, err)
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
}

// submodelIdentifier decodes the base64url path parameter and writes a 400 response on failure.
func (c *ThingDescriptionImportAPIController) submodelIdentifier(w http.ResponseWriter, r *http.Request, operation string) (string, bool) {
	raw := chi.URLParam(r, "submodelIdentifier")
	if raw == "" {
		log.Printf("🧩 [%s] Error in %s: missing path parameter submodelIdentifier", componentName, operation)
		result := common.NewErrorResponse(
			common.NewErrBadRequest("Missing path parameter 'submodelIdentifier'"),
			http.StatusBadRequest,
			componentName,
			operation,
			"submodelIdentifier",
		)
		_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
		return "", false
	}
	decoded, err := common.DecodeString(raw)
	if err != nil || decoded == "" {
		log.Printf("🧩 [%s] Error in %s: decode submodelIdentifier=%q: %v", componentName, operation, raw, err)
		result := common.NewErrorResponse(
			tdimporterrors.ErrInvalidSubmodelIdentifier,
			http.StatusBadRequest,
			componentName,
			operation,
			"submodelIdentifier",
		)
		_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
		return "", false
	}
	return decoded, true
}
