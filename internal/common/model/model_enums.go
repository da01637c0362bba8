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
 * DotAAS Part 1 | Metamodel | Schemas
 *
 * The schemas implementing the [Specification of the Asset Administration Shell: Part 1](https://industrialdigitaltwin.org/en/content-hub/aasspecifications).   Copyright: Industrial Digital Twin Association (IDTA) 2025
 *
 * API version: V3.1.1
 * Contact: info@idtwin.org
 */

package model

import (
	"fmt"
)

// KeyTypes type of KeyTypes
type KeyTypes string

// List of KeyTypes used by imported Thing Descriptions
//
//nolint:all
const (
	KEYTYPES_CONCEPT_DESCRIPTION         KeyTypes = "ConceptDescription"
	KEYTYPES_GLOBAL_REFERENCE            KeyTypes = "GlobalReference"
	KEYTYPES_MULTI_LANGUAGE_PROPERTY     KeyTypes = "MultiLanguageProperty"
	KEYTYPES_SUBMODEL                    KeyTypes = "Submodel"
	KEYTYPES_SUBMODEL_ELEMENT_COLLECTION KeyTypes = "SubmodelElementCollection"
)

var validKeyTypesEnumValues = map[KeyTypes]struct{}{
	KEYTYPES_CONCEPT_DESCRIPTION:         {},
	KEYTYPES_GLOBAL_REFERENCE:            {},
	KEYTYPES_MULTI_LANGUAGE_PROPERTY:     {},
	KEYTYPES_SUBMODEL:                    {},
	KEYTYPES_SUBMODEL_ELEMENT_COLLECTION: {},
}

// IsValid return true if the value is valid for the enum, false otherwise
func (v KeyTypes) IsValid() bool {
	_, ok := validKeyTypesEnumValues[v]
	return ok
}

// ReferenceTypes Reference type of Reference
type ReferenceTypes string

// List of ReferenceTypes
//
//nolint:all
const (
	REFERENCETYPES_EXTERNAL_REFERENCE ReferenceTypes = "ExternalReference"
	REFERENCETYPES_MODEL_REFERENCE    ReferenceTypes = "ModelReference"
)

// IsValid return true if the value is valid for the enum, false otherwise
func (v ReferenceTypes) IsValid() bool {
	return v == REFERENCETYPES_EXTERNAL_REFERENCE || v == REFERENCETYPES_MODEL_REFERENCE
}

// ModellingKind type of ModellingKind
type ModellingKind string

// List of ModellingKind
//
//nolint:all
const (
	MODELLINGKIND_INSTANCE ModellingKind = "Instance"
	MODELLINGKIND_TEMPLATE ModellingKind = "Template"
)

// IsValid return true if the value is valid for the enum, false otherwise
func (v ModellingKind) IsValid() bool {
	return v == MODELLINGKIND_INSTANCE || v == MODELLINGKIND_TEMPLATE
}

// NewModellingKindFromValue returns a valid ModellingKind for the value passed as argument,
// or an error if the value passed is not allowed by the enum
func NewModellingKindFromValue(v string) (ModellingKind, error) {
	ev := ModellingKind(v)
	if ev.IsValid() {
		return ev, nil
	}
	return "", fmt.Errorf("invalid value '%v' for ModellingKind: valid values are [%s %s]", v, MODELLINGKIND_INSTANCE, MODELLINGKIND_TEMPLATE)
}

// QualifierKind type of QualifierKind
type QualifierKind string

// List of QualifierKind
//
//nolint:all
const (
	QUALIFIERKIND_CONCEPT_QUALIFIER  QualifierKind = "ConceptQualifier"
	QUALIFIERKIND_TEMPLATE_QUALIFIER QualifierKind = "TemplateQualifier"
	QUALIFIERKIND_VALUE_QUALIFIER    QualifierKind = "ValueQualifier"
)

// IsValid return true if the value is valid for the enum, false otherwise
func (v QualifierKind) IsValid() bool {
	switch v {
	case QUALIFIERKIND_CONCEPT_QUALIFIER, QUALIFIERKIND_TEMPLATE_QUALIFIER, QUALIFIERKIND_VALUE_QUALIFIER:
		return true
	}
	return false
}

// DataTypeDefXsd type of DataTypeDefXsd
type DataTypeDefXsd string

// List of DataTypeDefXsd
//
//nolint:all
const (
	DATATYPEDEFXSD_ANY_URI   DataTypeDefXsd = "xs:anyURI"
	DATATYPEDEFXSD_BOOLEAN   DataTypeDefXsd = "xs:boolean"
	DATATYPEDEFXSD_DATE_TIME DataTypeDefXsd = "xs:dateTime"
	DATATYPEDEFXSD_DECIMAL   DataTypeDefXsd = "xs:decimal"
	DATATYPEDEFXSD_DOUBLE    DataTypeDefXsd = "xs:double"
	DATATYPEDEFXSD_INTEGER   DataTypeDefXsd = "xs:integer"
	DATATYPEDEFXSD_STRING    DataTypeDefXsd = "xs:string"
)

// IsValid return true if the value is valid for the enum, false otherwise
func (v DataTypeDefXsd) IsValid() bool {
	switch v {
	case DATATYPEDEFXSD_ANY_URI, DATATYPEDEFXSD_BOOLEAN, DATATYPEDEFXSD_DATE_TIME, DATATYPEDEFXSD_DECIMAL,
		DATATYPEDEFXSD_DOUBLE, DATATYPEDEFXSD_INTEGER, DATATYPEDEFXSD_STRING:
		return true
	}
	return false
}
