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

package tdimport

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/tdjson"
	"github.com/xeipuuv/gojsonschema"
)

// Validator checks a parsed document before it is converted.
type Validator interface {
	Validate(doc *tdjson.Object) error
}

// AcceptAll is the default validator. It accepts every document.
type AcceptAll struct{}

// Validate always returns nil.
func (AcceptAll) Validate(*tdjson.Object) error {
	return nil
}

// ValidationError lists the schema violations of a rejected document.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "thing description invalid: " + strings.Join(e.Violations, "; ")
}

// SchemaValidator validates documents against a compiled JSON Schema.
type SchemaValidator struct {
	schema *gojsonschema.Schema
}

// NewSchemaValidator compiles the given JSON Schema document.
func NewSchemaValidator(schemaBytes []byte) (*SchemaValidator, error) {
	sl := gojsonschema.NewSchemaLoader()
	compiled, err := sl.Compile(gojsonschema.NewBytesLoader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &SchemaValidator{schema: compiled}, nil
}

// NewSchemaValidatorFromFile reads and compiles the JSON Schema at path.
func NewSchemaValidatorFromFile(path string) (*SchemaValidator, error) {
	schemaBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return NewSchemaValidator(schemaBytes)
}

// Validate returns a *ValidationError when doc violates the schema.
func (v *SchemaValidator) Validate(doc *tdjson.Object) error {
	if doc == nil {
		return errors.New("schema validation error: no document")
	}
	result, err := v.schema.Validate(gojsonschema.NewGoLoader(doc.Interface()))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	verr := &ValidationError{}
	for _, e := range result.Errors() {
		verr.Violations = append(verr.Violations, e.String())
	}
	return verr
}
