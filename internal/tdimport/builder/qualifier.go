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

package builder

import (
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/semantics"
)

// MakeQualifier wraps a keyword/value pair into a string-typed ConceptQualifier.
//
// The qualifier carries a semantic id exactly when the keyword is part of the
// vocabulary, so ad-hoc keys such as ordinal entries ("security0") or protocol
// extensions ("htv:methodName") stay untagged.
//
// Parameters:
//   - qType: The keyword used as qualifier type
//   - value: The string form of the JSON value
//
// Example:
//
//	q := MakeQualifier("minimum", "0")
func MakeQualifier(qType string, value string) model.Qualifier {
	return model.Qualifier{
		Kind:       model.QUALIFIERKIND_CONCEPT_QUALIFIER,
		Type:       qType,
		ValueType:  model.DATATYPEDEFXSD_STRING,
		Value:      value,
		SemanticID: SemanticReference(qType),
	}
}

// SemanticReference returns the ExternalReference for keyword, or nil for keywords outside the vocabulary.
func SemanticReference(keyword string) *model.Reference {
	id := semantics.Resolve(keyword)
	if id == semantics.Empty {
		return nil
	}
	return model.NewGlobalReference(id)
}
