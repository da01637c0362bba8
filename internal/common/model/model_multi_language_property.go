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

// MultiLanguageProperty type of SubmodelElement
type MultiLanguageProperty struct {
	Category string `json:"category,omitempty"`

	//nolint:all
	IdShort string `json:"idShort,omitempty"`

	Description []LangStringTextType `json:"description,omitempty"`

	ModelType string `json:"modelType"`

	Kind ModellingKind `json:"kind,omitempty"`

	SemanticID *Reference `json:"semanticId,omitempty"`

	Qualifiers []Qualifier `json:"qualifiers,omitempty"`

	Value []LangStringTextType `json:"value,omitempty"`

	ValueID *Reference `json:"valueId,omitempty"`
}

// NewMultiLanguageProperty creates an empty multi-language property.
func NewMultiLanguageProperty(idShort string, category string, kind ModellingKind) *MultiLanguageProperty {
	return &MultiLanguageProperty{
		IdShort:   idShort,
		Category:  category,
		Kind:      kind,
		ModelType: ModelTypeMultiLanguageProperty,
	}
}

// Getters
//
//nolint:all
func (a MultiLanguageProperty) GetIdShort() string {
	return a.IdShort
}

//nolint:all
func (a MultiLanguageProperty) GetCategory() string {
	return a.Category
}

//nolint:all
func (a MultiLanguageProperty) GetKind() ModellingKind {
	return a.Kind
}

//nolint:all
func (a MultiLanguageProperty) GetDescription() []LangStringTextType {
	return a.Description
}

//nolint:all
func (a MultiLanguageProperty) GetModelType() string {
	return a.ModelType
}

//nolint:all
func (a MultiLanguageProperty) GetSemanticID() *Reference {
	return a.SemanticID
}

//nolint:all
func (a MultiLanguageProperty) GetQualifiers() []Qualifier {
	return a.Qualifiers
}

// Setters
//
//nolint:all
func (a *MultiLanguageProperty) SetIdShort(v string) {
	a.IdShort = v
}

//nolint:all
func (a *MultiLanguageProperty) SetCategory(v string) {
	a.Category = v
}

//nolint:all
func (a *MultiLanguageProperty) SetKind(v ModellingKind) {
	a.Kind = v
}

//nolint:all
func (a *MultiLanguageProperty) SetDescription(v []LangStringTextType) {
	a.Description = v
}

//nolint:all
func (a *MultiLanguageProperty) SetSemanticID(v *Reference) {
	a.SemanticID = v
}

//nolint:all
func (a *MultiLanguageProperty) SetQualifiers(v []Qualifier) {
	a.Qualifiers = v
}

// AddText appends a text in the given language.
func (a *MultiLanguageProperty) AddText(language string, text string) {
	a.Value = append(a.Value, LangStringTextType{Language: language, Text: text})
}

// AssertMultiLanguagePropertyRequired checks if the required fields are not zero-ed
func AssertMultiLanguagePropertyRequired(obj MultiLanguageProperty) error {
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
		if err := AssertLangStringTextTypeRequired(el); err != nil {
			return err
		}
	}
	if obj.ValueID != nil {
		if err := AssertReferenceRequired(*obj.ValueID); err != nil {
			return err
		}
	}
	return nil
}

// AssertMultiLanguagePropertyConstraints checks if the values respects the defined constraints
func AssertMultiLanguagePropertyConstraints(obj MultiLanguageProperty) error {
	if err := AssertStringConstraints(obj.IdShort); err != nil {
		return err
	}
	for _, el := range obj.Value {
		if err := AssertLangStringTextTypeConstraints(el); err != nil {
			return err
		}
	}
	return nil
}
