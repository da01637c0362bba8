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
	jsoniter "github.com/json-iterator/go"
)

// Submodel type of Submodel
type Submodel struct {
	Category string `json:"category,omitempty"`

	//nolint:all
	IdShort string `json:"idShort,omitempty"`

	Description []LangStringTextType `json:"description,omitempty"`

	ModelType string `json:"modelType"`

	Administration *AdministrativeInformation `json:"administration,omitempty"`

	ID string `json:"id"`

	Kind ModellingKind `json:"kind,omitempty"`

	SemanticID *Reference `json:"semanticId,omitempty"`

	Qualifiers []Qualifier `json:"qualifiers,omitempty"`

	SubmodelElements []SubmodelElement `json:"submodelElements,omitempty"`
}

// NewSubmodel creates an empty submodel with the given id.
func NewSubmodel(id string) *Submodel {
	return &Submodel{
		ID:        id,
		ModelType: ModelTypeSubmodel,
	}
}

// UnmarshalJSON implements custom unmarshaling for Submodel to handle polymorphic SubmodelElements
func (s *Submodel) UnmarshalJSON(data []byte) error {
	type Alias Submodel
	aux := &struct {
		SubmodelElements []jsoniter.RawMessage `json:"submodelElements,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(s),
	}

	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	elements, err := unmarshalElements(aux.SubmodelElements)
	if err != nil {
		return err
	}
	s.SubmodelElements = elements
	return nil
}

// AddQualifier appends a qualifier.
func (s *Submodel) AddQualifier(q Qualifier) {
	s.Qualifiers = append(s.Qualifiers, q)
}

// AddElement appends a submodel element.
func (s *Submodel) AddElement(el SubmodelElement) {
	s.SubmodelElements = append(s.SubmodelElements, el)
}

// AddDescription appends a description entry.
func (s *Submodel) AddDescription(language string, text string) {
	s.Description = append(s.Description, LangStringTextType{Language: language, Text: text})
}

// FindElement returns the top-level element with the given idShort.
func (s *Submodel) FindElement(idShort string) (SubmodelElement, bool) {
	for _, el := range s.SubmodelElements {
		if el != nil && el.GetIdShort() == idShort {
			return el, true
		}
	}
	return nil, false
}

// FindCollection returns the top-level collection with the given idShort.
func (s *Submodel) FindCollection(idShort string) (*SubmodelElementCollection, bool) {
	el, ok := s.FindElement(idShort)
	if !ok {
		return nil, false
	}
	smc, ok := el.(*SubmodelElementCollection)
	return smc, ok
}

// FindQualifier returns the first qualifier of the given type.
func (s *Submodel) FindQualifier(qType string) (Qualifier, bool) {
	return FindQualifier(s.Qualifiers, qType)
}

// AssertSubmodelRequired checks if the required fields are not zero-ed
func AssertSubmodelRequired(obj Submodel) error {
	elements := map[string]interface{}{
		"modelType": obj.ModelType,
		"id":        obj.ID,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}

	for _, el := range obj.Description {
		if err := AssertLangStringTextTypeRequired(el); err != nil {
			return err
		}
	}
	if obj.Administration != nil {
		if err := AssertAdministrativeInformationRequired(*obj.Administration); err != nil {
			return err
		}
	}
	if obj.SemanticID != nil {
		if err := AssertReferenceRequired(*obj.SemanticID); err != nil {
			return err
		}
	}
	for _, el := range obj.Qualifiers {
		if err := AssertQualifierRequired(el); err != nil {
			return err
		}
	}
	for _, el := range obj.SubmodelElements {
		if err := AssertSubmodelElementRequired(el); err != nil {
			return err
		}
	}
	return nil
}

// AssertSubmodelConstraints checks if the values respects the defined constraints
func AssertSubmodelConstraints(obj Submodel) error {
	if obj.IdShort != "" {
		if err := AssertStringConstraints(obj.IdShort); err != nil {
			return err
		}
	}
	if obj.Kind != "" && !obj.Kind.IsValid() {
		return &ConstraintError{Field: "kind", Reason: "unknown modelling kind " + string(obj.Kind)}
	}
	if obj.Administration != nil {
		if err := AssertAdministrativeInformationConstraints(*obj.Administration); err != nil {
			return err
		}
	}
	for _, el := range obj.Qualifiers {
		if err := AssertQualifierConstraints(el); err != nil {
			return err
		}
	}
	if err := assertUniqueIdShorts(obj.SubmodelElements); err != nil {
		return err
	}
	for _, el := range obj.SubmodelElements {
		if err := AssertSubmodelElementConstraints(el); err != nil {
			return err
		}
	}
	return nil
}
