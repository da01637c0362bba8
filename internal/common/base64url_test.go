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

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lampID = "urn:dev:ops:32473-WoTLamp-1234"

func TestEncodeString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ThingID", lampID, "dXJuOmRldjpvcHM6MzI0NzMtV29UTGFtcC0xMjM0"},
		{"UUIDURN", "urn:uuid:0804d572-cce8-422a-bb7c-4412fcd56f06", "dXJuOnV1aWQ6MDgwNGQ1NzItY2NlOC00MjJhLWJiN2MtNDQxMmZjZDU2ZjA2"},
		{"URLSafeAlphabet", "urn:tdimport:>?~", "dXJuOnRkaW1wb3J0Oj4_fg"},
		{"Empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeString(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.NotContains(t, got, "=")
			assert.NotContains(t, got, "+")
			assert.NotContains(t, got, "/")
		})
	}
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "AAECA__-", Encode([]byte{0, 1, 2, 3, 255, 254}))
	assert.Equal(t, EncodeString(lampID), Encode([]byte(lampID)))
}

func TestDecodeString(t *testing.T) {
	got, err := DecodeString("dXJuOmRldjpvcHM6MzI0NzMtV29UTGFtcC0xMjM0")
	require.NoError(t, err)
	assert.Equal(t, lampID, got)

	got, err = DecodeString("dXJuOnRkaW1wb3J0Oj4_fg")
	require.NoError(t, err)
	assert.Equal(t, "urn:tdimport:>?~", got)

	_, err = DecodeString("not*base64")
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	got, err := Decode("AAECA__-")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2, 3, 255, 254}, got)

	got, err = Decode("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Decode("A")
	assert.Error(t, err)
}

func TestRoundtrip(t *testing.T) {
	for _, id := range []string{lampID, "urn:uuid:0804d572-cce8-422a-bb7c-4412fcd56f06", "urn:x", "urn:xy", "urn:xyz"} {
		decoded, err := DecodeString(EncodeString(id))
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}
