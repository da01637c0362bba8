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

// Key is one element of a Reference key chain.
type Key struct {
	Type KeyTypes `json:"type"`

	Value string `json:"value"`
}

// Reference points to a model element (ModelReference) or an external concept (ExternalReference).
type Reference struct {
	Type ReferenceTypes `json:"type"`

	Keys []Key `json:"keys"`

	ReferredSemanticId *Reference `json:"referredSemanticId,omitempty"`
}

// NewGlobalReference returns an ExternalReference with a single GlobalReference key.
func NewGlobalReference(value string) *Reference {
	return &Reference{
		Type: REFERENCETYPES_EXTERNAL_REFERENCE,
		Keys: []Key{{Type: KEYTYPES_GLOBAL_REFERENCE, Value: value}},
	}
}

// NewSubmodelReference returns a ModelReference to the Submodel with the given id.
func NewSubmodelReference(submodelID string) *Reference {
	return &Reference{
		Type: REFERENCETYPES_MODEL_REFERENCE,
		Keys: []Key{{Type: KEYTYPES_SUBMODEL, Value: submodelID}},
	}
}

// FirstKeyValue returns the value of the first key, or "" for an empty reference.
func (r *Reference) FirstKeyValue() string {
	if r == nil || len(r.Keys) == 0 {
		return ""
	}
	return r.Keys[0].Value
}

// AssertKeyRequired checks if the required fields are not zero-ed
func AssertKeyRequired(obj Key) error {
	elements := map[string]interface{}{
		"type":  obj.Type,
		"value": obj.Value,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}

// AssertKeyConstraints checks if the values respects the defined constraints
func AssertKeyConstraints(obj Key) error {
	if !obj.Type.IsValid() {
		return &ConstraintError{Field: "type", Reason: "unknown key type " + string(obj.Type)}
	}
	return nil
}

// AssertReferenceRequired checks if the required fields are not zero-ed
func AssertReferenceRequired(obj Reference) error {
	elements := map[string]interface{}{
		"type": obj.Type,
		"keys": obj.Keys,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}

	for _, el := range obj.Keys {
		if err := AssertKeyRequired(el); err != nil {
			return err
		}
	}

	stack := make([]*Reference, 0)
	if obj.ReferredSemanticId != nil {
		stack = append(stack, obj.ReferredSemanticId)
	}
	for len(stack) > 0 {
		n := len(stack) - 1
		current := stack[n]
		stack = stack[:n]

		if err := AssertReferenceRequired(*current); err != nil {
			return err
		}

		if current.ReferredSemanticId != nil {
			stack = append(stack, current.ReferredSemanticId)
		}
	}

	return nil
}

// AssertReferenceConstraints checks if the values respects the defined constraints
func AssertReferenceConstraints(obj Reference) error {
	if !obj.Type.IsValid() {
		return &ConstraintError{Field: "type", Reason: "unknown reference type " + string(obj.Type)}
	}
	for _, el := range obj.Keys {
		if err := AssertKeyConstraints(el); err != nil {
			return err
		}
	}
	if obj.ReferredSemanticId != nil {
		return AssertReferenceConstraints(*obj.ReferredSemanticId)
	}
	return nil
}
