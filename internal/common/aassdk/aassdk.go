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

// Package aassdk bridges the importer's submodel tree to the aas-go-sdk types.
//
// The conversion goes through the AAS JSON form: the tree is encoded, the
// attributes the V3 metamodel does not know are dropped and the result is
// deserialized with the SDK's jsonization package. The SDK object is then
// checked with the metamodel constraints of the verification package.
package aassdk

import (
	"fmt"
	"strings"

	"github.com/FriedJannik/aas-go-sdk/jsonization"
	"github.com/FriedJannik/aas-go-sdk/types"
	"github.com/FriedJannik/aas-go-sdk/verification"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ToSubmodel converts sm into an aas-go-sdk submodel.
//
// Parameters:
//   - sm: Submodel produced by the importer
//
// Returns:
//   - types.ISubmodel: The SDK representation
//   - error: Internal server error when the tree cannot be expressed in AAS JSON
func ToSubmodel(sm *model.Submodel) (types.ISubmodel, error) {
	if sm == nil {
		return nil, common.NewInternalServerError("TDIMPORT-AASSDK-CONVERT no submodel")
	}
	jsonable, err := modelJsonable(sm)
	if err != nil {
		return nil, common.NewInternalServerError("TDIMPORT-AASSDK-CONVERT " + err.Error())
	}
	submodel, err := jsonization.SubmodelFromJsonable(jsonable)
	if err != nil {
		return nil, common.NewInternalServerError("TDIMPORT-AASSDK-CONVERT " + err.Error())
	}
	return submodel, nil
}

// Verify checks submodel against the metamodel constraints and returns one
// message per violation.
func Verify(submodel types.ISubmodel) []string {
	violations := make([]string, 0)
	verification.VerifySubmodel(submodel, func(ve *verification.VerificationError) bool {
		violations = append(violations, ve.Error())
		return false
	})
	return violations
}

// Check converts and verifies sm. Violations are returned as warnings unless
// strict is set, in which case they become a bad request error.
//
// Parameters:
//   - sm: Submodel produced by the importer
//   - strict: Reject submodels violating metamodel constraints
//
// Returns:
//   - types.ISubmodel: The SDK representation
//   - []string: Constraint violations (non-strict mode)
//   - error: Conversion failure or, in strict mode, the joined violations
func Check(sm *model.Submodel, strict bool) (types.ISubmodel, []string, error) {
	submodel, err := ToSubmodel(sm)
	if err != nil {
		return nil, nil, err
	}
	violations := Verify(submodel)
	if strict && len(violations) > 0 {
		return nil, nil, common.NewErrBadRequest("TDIMPORT-AASSDK-VERIFY " + strings.Join(violations, " "))
	}
	return submodel, violations, nil
}

// Jsonable returns the AAS JSON form of sm as produced by the SDK serializer.
func Jsonable(sm *model.Submodel) (map[string]interface{}, error) {
	submodel, err := ToSubmodel(sm)
	if err != nil {
		return nil, err
	}
	jsonable, err := jsonization.ToJsonable(submodel)
	if err != nil {
		return nil, common.NewInternalServerError("TDIMPORT-AASSDK-JSONABLE " + err.Error())
	}
	return jsonable, nil
}

// modelJsonable encodes sm and removes the element kinds, which the V3
// metamodel only defines on the submodel itself.
func modelJsonable(sm *model.Submodel) (map[string]interface{}, error) {
	data, err := json.Marshal(sm)
	if err != nil {
		return nil, fmt.Errorf("encode submodel: %w", err)
	}
	var jsonable map[string]interface{}
	if err := json.Unmarshal(data, &jsonable); err != nil {
		return nil, fmt.Errorf("decode submodel: %w", err)
	}
	stripElementKinds(jsonable["submodelElements"])
	return jsonable, nil
}

func stripElementKinds(elements interface{}) {
	list, ok := elements.([]interface{})
	if !ok {
		return
	}
	for _, el := range list {
		m, ok := el.(map[string]interface{})
		if !ok {
			continue
		}
		delete(m, "kind")
		if m["modelType"] == model.ModelTypeSubmodelElementCollection {
			stripElementKinds(m["value"])
		}
	}
}
