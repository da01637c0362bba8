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

package persistence

import (
	"testing"
	"time"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSubmodel() *model.Submodel {
	sm := model.NewSubmodel("urn:x")
	sm.IdShort = "AssetTD"
	props := model.NewSubmodelElementCollection("properties", "PARAMETER", model.MODELLINGKIND_INSTANCE)
	props.AddElement(model.NewSubmodelElementCollection("brightness", "PARAMETER", model.MODELLINGKIND_INSTANCE))
	sm.AddElement(props)
	titles := model.NewMultiLanguageProperty("titles", "PARAMETER", model.MODELLINGKIND_INSTANCE)
	titles.AddText("de", "Lampe")
	sm.AddElement(titles)
	return sm
}

func TestSubmodelCodecKeepsElementTypes(t *testing.T) {
	data, err := EncodeSubmodel(sampleSubmodel())
	require.NoError(t, err)

	sm, err := DecodeSubmodel(data)
	require.NoError(t, err)
	assert.Equal(t, sampleSubmodel(), sm)

	_, err = DecodeSubmodel([]byte(`{"submodelElements":[{"modelType":"Nope"}]}`))
	assert.Error(t, err)
}

func TestWarningsCodec(t *testing.T) {
	data, err := EncodeWarnings(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	warnings, err := DecodeWarnings(data)
	require.NoError(t, err)
	assert.Nil(t, warnings)

	data, err = EncodeWarnings([]string{"a", "b"})
	require.NoError(t, err)
	warnings, err = DecodeWarnings(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, warnings)

	warnings, err = DecodeWarnings(nil)
	require.NoError(t, err)
	assert.Nil(t, warnings)
}

func TestCloneIsDeep(t *testing.T) {
	rec := ImportRecord{ID: "r1", SubmodelID: "urn:x", Warnings: []string{"w"}, ImportedAt: time.Unix(10, 0), Submodel: sampleSubmodel()}
	clone, err := rec.Clone()
	require.NoError(t, err)
	assert.Equal(t, rec, clone)

	clone.Submodel.IdShort = "changed"
	clone.Warnings[0] = "changed"
	assert.Equal(t, "AssetTD", rec.Submodel.IdShort)
	assert.Equal(t, "w", rec.Warnings[0])
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Checksum(nil))
}
