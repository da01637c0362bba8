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

// Qualifier  type of Qualifier
type Qualifier struct {
	SemanticID *Reference `json:"semanticId,omitempty"`

	Kind QualifierKind `json:"kind,omitempty"`

	Type string `json:"type"`

	ValueType DataTypeDefXsd `json:"valueType"`

	Value string `json:"value,omitempty"`

	ValueID *Reference `json:"valueId,omitempty"`
}

// AssertQualifierRequired checks if the required fields are not zero-ed
func AssertQualifierRequired(obj Qualifier) error {
	elements := map[string]interface{}{
		"type":      obj.Type,
		"valueType": obj.ValueType,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}

	if obj.SemanticID != nil {
		if err := AssertReferenceRequired(*obj.SemanticID); err != nil {
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

// AssertQualifierConstraints checks if the values respects the defined constraints
func AssertQualifierConstraints(obj Qualifier) error {
	if obj.Kind != "" && !obj.Kind.IsValid() {
		return &ConstraintError{Field: "kind", Reason: "unknown qualifier kind " + string(obj.Kind)}
	}
	if !obj.ValueType.IsValid() {
		return &ConstraintError{Field: "valueType", Reason: "unknown value type " + string(obj.ValueType)}
	}
	if obj.SemanticID != nil {
		if err := AssertReferenceConstraints(*obj.SemanticID); err != nil {
			return err
		}
	}
	if obj.ValueID != nil {
		if err := AssertReferenceConstraints(*obj.ValueID); err != nil {
			return err
		}
	}
	return nil
}

// FindQualifier returns the first qualifier of the given type.
func FindQualifier(qualifiers []Qualifier, qType string) (Qualifier, bool) {
	for _, q := range qualifiers {
		if q.Type == qType {
			return q, true
		}
	}
	return Qualifier{}, false
}

// CountQualifiers returns how many qualifiers of the given type are present.
func CountQualifiers(qualifiers []Qualifier, qType string) int {
	n := 0
	for _, q := range qualifiers {
		if q.Type == qType {
			n++
		}
	}
	return n
}
