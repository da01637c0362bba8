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

/*
 * DotAAS Part 2 | HTTP/REST | Submodel Repository Service Specification
 *
 * The entire Submodel Repository Service Specification as part of the [Specification of the Asset Administration Shell: Part 2](http://industrialdigitaltwin.org/en/content-hub).   Publisher: Industrial Digital Twin Association (IDTA) 2023
 *
 * API version: V3.0.3_SSP-001
 * Contact: info@idtwin.org
 */

package model

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

const (
	// ModelTypeSubmodelElementCollection is the modelType discriminator of SubmodelElementCollection
	ModelTypeSubmodelElementCollection = "SubmodelElementCollection"
	// ModelTypeMultiLanguageProperty is the modelType discriminator of MultiLanguageProperty
	ModelTypeMultiLanguageProperty = "MultiLanguageProperty"
	// ModelTypeSubmodel is the modelType discriminator of Submodel
	ModelTypeSubmodel = "Submodel"
)

// SubmodelElement interface representing a SubmodelElement.
type SubmodelElement interface {
	GetModelType() string
	GetIdShort() string
	GetCategory() string
	GetKind() ModellingKind
	GetDescription() []LangStringTextType
	GetSemanticID() *Reference
	GetQualifiers() []Qualifier

	SetIdShort(string)
	SetCategory(string)
	SetKind(ModellingKind)
	SetDescription([]LangStringTextType)
	SetSemanticID(*Reference)
	SetQualifiers([]Qualifier)
}

// UnmarshalSubmodelElement creates the appropriate concrete SubmodelElement type from JSON
func UnmarshalSubmodelElement(data []byte) (SubmodelElement, error) {
	var raw struct {
		ModelType string `json:"modelType"`
	}
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to determine modelType: %w", err)
	}

	switch raw.ModelType {
	case ModelTypeSubmodelElementCollection:
		var smc SubmodelElementCollection
		if err := json.Unmarshal(data, &smc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal SubmodelElementCollection: %w", err)
		}
		return &smc, nil
	case ModelTypeMultiLanguageProperty:
		var mlp MultiLanguageProperty
		if err := json.Unmarshal(data, &mlp); err != nil {
			return nil, fmt.Errorf("failed to unmarshal MultiLanguageProperty: %w", err)
		}
		return &mlp, nil
	default:
		return nil, fmt.Errorf("unsupported modelType: %s", raw.ModelType)
	}
}

// unmarshalElements decodes a list of polymorphic submodel elements.
func unmarshalElements(raw []jsoniter.RawMessage) ([]SubmodelElement, error) {
	if raw == nil {
		return nil, nil
	}
	elements := make([]SubmodelElement, len(raw))
	for i, rawElement := range raw {
		element, err := UnmarshalSubmodelElement(rawElement)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal element at index %d: %w", i, err)
		}
		elements[i] = element
	}
	return elements, nil
}

// AssertSubmodelElementRequired dispatches to the required-field check of the concrete element type.
func AssertSubmodelElementRequired(obj SubmodelElement) error {
	switch el := obj.(type) {
	case *SubmodelElementCollection:
		return AssertSubmodelElementCollectionRequired(*el)
	case *MultiLanguageProperty:
		return AssertMultiLanguagePropertyRequired(*el)
	case nil:
		return &RequiredError{Field: "submodelElement"}
	default:
		return ErrTypeAssertionError
	}
}

// AssertSubmodelElementConstraints dispatches to the constraint check of the concrete element type.
func AssertSubmodelElementConstraints(obj SubmodelElement) error {
	switch el := obj.(type) {
	case *SubmodelElementCollection:
		return AssertSubmodelElementCollectionConstraints(*el)
	case *MultiLanguageProperty:
		return AssertMultiLanguagePropertyConstraints(*el)
	default:
		return ErrTypeAssertionError
	}
}

// assertUniqueIdShorts checks that sibling idShorts do not repeat.
func assertUniqueIdShorts(elements []SubmodelElement) error {
	seen := make(map[string]struct{}, len(elements))
	for _, el := range elements {
		if el == nil {
			continue
		}
		if _, ok := seen[el.GetIdShort()]; ok {
			return &ConstraintError{Field: "idShort", Reason: "duplicate sibling idShort " + el.GetIdShort()}
		}
		seen[el.GetIdShort()] = struct{}{}
	}
	return nil
}
