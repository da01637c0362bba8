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
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	"github.com/google/uuid"
)

const (
	prefixNotFound   = "404 Not Found: "
	prefixBadRequest = "400 Bad Request: "
	prefixConflict   = "409 Conflict: "
	prefixInternal   = "500 Internal Server Error: "
)

type ErrorHandler struct {
	MessageType   string `json:"messageType"`
	Text          string `json:"text"`
	Code          string `json:"code,omitempty"`
	CorrelationId string `json:"correlationId,omitempty"`
	Timestamp     string `json:"timestamp,omitempty"`
}

func NewErrorHandler(messageType string, text error, code string, correlationId string, timestamp string) *ErrorHandler {
	return &ErrorHandler{
		MessageType:   messageType,
		Text:          text.Error(),
		Code:          code,
		CorrelationId: correlationId,
		Timestamp:     timestamp,
	}
}

// NewErrorResponse builds the JSON error body returned by every service endpoint.
//
// Parameters:
//   - err: The cause, its text becomes the message text
//   - status: HTTP status code of the response
//   - componentName: Name of the component reporting the error
//   - operation: Operation that failed
//   - detail: Short machine readable reason such as "BadRequest" or "NotFound"
func NewErrorResponse(err error, status int, componentName string, operation string, detail string) model.ImplResponse {
	if err == nil {
		err = errors.New(http.StatusText(status))
	}
	text := componentName + " " + operation + " " + detail + ": " + err.Error()
	msg := NewErrorHandler("Error", errors.New(text), strconv.Itoa(status), uuid.NewString(), GetCurrentTimestamp())
	return model.Response(status, []ErrorHandler{*msg})
}

// StatusFromError maps the prefixed errors of this package to HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsErrNotFound(err):
		return http.StatusNotFound
	case IsErrBadRequest(err):
		return http.StatusBadRequest
	case IsErrConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func NewErrNotFound(elementId string) error {
	return errors.New(prefixNotFound + elementId)
}

func NewErrBadRequest(message string) error {
	return errors.New(prefixBadRequest + message)
}

func NewErrConflict(message string) error {
	return errors.New(prefixConflict + message)
}

func NewInternalServerError(message string) error {
	return errors.New(prefixInternal + message)
}

func IsErrNotFound(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), prefixNotFound)
}

func IsErrBadRequest(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), prefixBadRequest)
}

func IsErrConflict(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), prefixConflict)
}

func IsInternalServerError(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), prefixInternal)
}
