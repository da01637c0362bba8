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

// Package errors provides centralized error definitions for the Thing Description import service.
package errors

import "github.com/eclipse-basyx/basyx-go-tdimporter/internal/common"

// Import record errors
var (
	// ErrImportRecordNotFound is returned when no import exists for the requested submodel id.
	ErrImportRecordNotFound = common.NewErrNotFound("Import record not found")

	// ErrImportRecordAlreadyExists is returned when a submodel with the same id was imported before.
	ErrImportRecordAlreadyExists = common.NewErrConflict("Import record already exists")
)

// Request errors
var (
	// ErrEmptyDocument is returned when the request body is empty.
	ErrEmptyDocument = common.NewErrBadRequest("Thing Description body is empty")

	// ErrDocumentTooLarge is returned when the request body exceeds the configured limit.
	ErrDocumentTooLarge = common.NewErrBadRequest("Thing Description exceeds the maximum document size")

	// ErrInvalidSubmodelIdentifier is returned when a path identifier is not valid base64url.
	ErrInvalidSubmodelIdentifier = common.NewErrBadRequest("Submodel identifier is not valid base64url")
)

// Storage errors
var (
	// ErrStorageUnavailable is returned when the configured record store cannot be reached.
	ErrStorageUnavailable = common.NewInternalServerError("Import record storage unavailable - see console for details")

	// ErrRecordEncoding is returned when a stored record cannot be encoded or decoded.
	ErrRecordEncoding = common.NewInternalServerError("Import record could not be encoded - see console for details")
)
