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

// SubmodelElementCollection struct representing a collection of submodel elements.
type SubmodelElementCollection struct {
	Category string `json:"category,omitempty"`

	//nolint:all
	IdShort string `json:"idShort,omitempty"`

	Description []LangStringTextType `json:"description,omitempty"`

	ModelType string `json:"modelType"`

	Kind ModellingKind `json:"kind,omitempty"`

	SemanticID *Reference `json:"semanticId,omitempty"`

	Qualifiers []Qualifier `json:"qualifiers,omitempty"`

	Value []SubmodelElement `json:"value,omitempty"`
}

// NewSubmodelElementCollection creates an empty collection with the given idShort, category and kind.
func NewSubmodelElementCollection(idShort string, category string, kind ModellingKind) *SubmodelElementCollection {
	return &SubmodelElementCollection{
		IdShort:   idShort,
		Category:  category,
		Kind:      kind,
		ModelType: ModelTypeSubmodelElementCollection,
	}
}

// UnmarshalJSON implements custom JSON unmarshaling for SubmodelElementCollection
func (sec *SubmodelElementCollection) UnmarshalJSON(data []byte) error {
	type Alias SubmodelElementCollection
	aux := &struct {
		Value []jsoniter.RawMessage `json:"value,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(sec),
	}

	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	elements, err := unmarshalElements(aux.Value)
	if err != nil {
		return err
	}
	sec.Value = elements
	return nil
}

// Getters
//
//nolint:all
func (a SubmodelElementCollection) GetIdShort() string {
	return a.IdShort
}

//nolint:all
func (a SubmodelElementCollection) GetCategory() string {
	return a.Category
}

//nolint:all
func (a SubmodelElementCollection) GetKind() ModellingKind {
	return a.Kind
}

//nolint:all
func (a SubmodelElementCollection) GetDescription() []LangStringTextType {
	return a.Description
}

//nolint:all
func (a SubmodelElementCollection) GetModelType() string {
	return a.ModelType
}

//nolint:all
func (a SubmodelElementCollection) GetSemanticID() *Reference {
	return a.SemanticID
}

//nolint:all
func (a SubmodelElementCollection) GetQualifiers() []Qualifier {
	return a.Qualifiers
}

// Setters
//
//nolint:all
func (a *SubmodelElementCollection) SetIdShort(v string) {
	a.IdShort = v
}

//nolint:all
func (a *SubmodelElementCollection) SetCategory(v string) {
	a.Category = v
}

//nolint:all
func (a *SubmodelElementCollection) SetKind(v ModellingKind) {
	a.Kind = v
}

//nolint:all
func (a *SubmodelElementCollection) SetDescription(v []LangStringTextType) {
	a.Description = v
}

//nolint:all
func (a *SubmodelElementCollection) SetSemanticID(v *Reference) {
	a.SemanticID = v
}

//nolint:all
func (a *SubmodelElementCollection) SetQualifiers(v []Qualifier) {
	a.Qualifiers = v
}

// AddQualifier appends a qualifier.
func (a *SubmodelElementCollection) AddQualifier(q Qualifier) {
	a.Qualifiers = append(a.Qualifiers, q)
}

// AddElement appends a child element.
func (a *SubmodelElementCollection) AddElement(el SubmodelElement) {
	a.Value = append(a.Value, el)
}

// AddDescription appends a description entry.
func (a *SubmodelElementCollection) AddDescription(language string, text string) {
	a.Description = append(a.Description, LangStringTextType{Language: language, Text: text})
}

// FindElement returns the direct child with the given idShort.
func (a *SubmodelElementCollection) FindElement(idShort string) (SubmodelElement, bool) {
	for _, el := range a.Value {
		if el != nil && el.GetIdShort() == idShort {
			return el, true
		}
	}
	return nil, false
}

// FindCollection returns the direct child collection with the given idShort.
func (a *SubmodelElementCollection) FindCollection(idShort string) (*SubmodelElementCollection, bool) {
	el, ok := a.FindElement(idShort)
	if !ok {
		return nil, false
	}
	smc, ok := el.(*SubmodelElementCollection)
	return smc, ok
}

// FindQualifier returns the first qualifier of the given type.
func (a *SubmodelElementCollection) FindQualifier(qType string) (Qualifier, bool) {
	return FindQualifier(a.Qualifiers, qType)
}

// AssertSubmodelElementCollectionRequired checks if the required fields are not zero-ed
func AssertSubmodelElementCollectionRequired(obj SubmodelElementCollection) error {
	elements := map[string]interface{}{
		"modelType": obj.ModelType,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}

	if err := AssertIdShortRequired(obj.IdShort); err != nil {
		return err
	}
	for _, el := range obj.Description {
		if err := AssertLangStringTextTypeRequired(el); err != nil {
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
	for _, el := range obj.Value {
		if err := AssertSubmodelElementRequired(el); err != nil {
			return err
		}
	}
	return nil
}

// AssertSubmodelElementCollectionConstraints checks if the values respects the defined constraints
func AssertSubmodelElementCollectionConstraints(obj SubmodelElementCollection) error {
	if err := AssertStringConstraints(obj.IdShort); err != nil {
		return err
	}
	if obj.Kind != "" && !obj.Kind.IsValid() {
		return &ConstraintError{Field: "kind", Reason: "unknown modelling kind " + string(obj.Kind)}
	}
	if obj.SemanticID != nil {
		if err := AssertReferenceConstraints(*obj.SemanticID); err != nil {
			return err
		}
	}
	for _, el := range obj.Qualifiers {
		if err := AssertQualifierConstraints(el); err != nil {
			return err
		}
	}
	if err := assertUniqueIdShorts(obj.Value); err != nil {
		return err
	}
	for _, el := range obj.Value {
		if err := AssertSubmodelElementConstraints(el); err != nil {
			return err
		}
	}
	return nil
}
