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

package aassdk

import (
	"testing"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qualifier(qType string, value string) model.Qualifier {
	return model.Qualifier{
		Kind:      model.QUALIFIERKIND_CONCEPT_QUALIFIER,
		Type:      qType,
		ValueType: model.DATATYPEDEFXSD_STRING,
		Value:     value,
	}
}

func lampSubmodel() *model.Submodel {
	sm := model.NewSubmodel("urn:x")
	sm.IdShort = "AssetTD"
	sm.Kind = model.MODELLINGKIND_INSTANCE
	sm.SemanticID = model.NewGlobalReference("https://www.w3.org/2019/wot/td#Thing")
	sm.AddQualifier(qualifier("title", "Lamp"))

	props := model.NewSubmodelElementCollection("properties", "PARAMETER", model.MODELLINGKIND_INSTANCE)
	brightness := model.NewSubmodelElementCollection("brightness", "PARAMETER", model.MODELLINGKIND_INSTANCE)
	brightness.AddQualifier(qualifier("type", "integer"))
	brightness.AddQualifier(qualifier("minimum", "0"))
	props.AddElement(brightness)
	sm.AddElement(props)

	titles := model.NewMultiLanguageProperty("titles", "PARAMETER", model.MODELLINGKIND_INSTANCE)
	titles.AddText("en", "Lamp")
	sm.AddElement(titles)
	return sm
}

func TestToSubmodel(t *testing.T) {
	submodel, err := ToSubmodel(lampSubmodel())
	require.NoError(t, err)
	assert.Equal(t, "urn:x", submodel.ID())
	require.NotNil(t, submodel.IDShort())
	assert.Equal(t, "AssetTD", *submodel.IDShort())
	assert.Len(t, submodel.SubmodelElements(), 2)
	assert.Len(t, submodel.Qualifiers(), 1)
}

func TestToSubmodelNil(t *testing.T) {
	_, err := ToSubmodel(nil)
	assert.True(t, common.IsInternalServerError(err))
}

func TestModelJsonableDropsElementKinds(t *testing.T) {
	jsonable, err := modelJsonable(lampSubmodel())
	require.NoError(t, err)
	assert.Equal(t, "Instance", jsonable["kind"])

	elements := jsonable["submodelElements"].([]interface{})
	props := elements[0].(map[string]interface{})
	assert.NotContains(t, props, "kind")
	brightness := props["value"].([]interface{})[0].(map[string]interface{})
	assert.NotContains(t, brightness, "kind")
	assert.NotContains(t, elements[1].(map[string]interface{}), "kind")
}

func TestCheckReportsDuplicateQualifierTypes(t *testing.T) {
	sm := lampSubmodel()
	sm.AddQualifier(qualifier("title", "Lamp again"))

	_, violations, err := Check(sm, false)
	require.NoError(t, err)
	assert.NotEmpty(t, violations)

	_, _, err = Check(sm, true)
	require.Error(t, err)
	assert.True(t, common.IsErrBadRequest(err))
	assert.Contains(t, err.Error(), "TDIMPORT-AASSDK-VERIFY")
}

func TestJsonable(t *testing.T) {
	jsonable, err := Jsonable(lampSubmodel())
	require.NoError(t, err)
	assert.Equal(t, "Submodel", jsonable["modelType"])
	assert.Equal(t, "urn:x", jsonable["id"])
	assert.Equal(t, "AssetTD", jsonable["idShort"])
}
