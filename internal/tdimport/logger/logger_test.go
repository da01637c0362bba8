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

package logger

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
	})
	return &buf
}

func TestLevels(t *testing.T) {
	buf := captureOutput(t)

	LogInfo("service started")
	LogWarning("archive disabled")
	LogDebug("converted urn:x")
	LogError("TDIMPORT-TEST", errors.New("boom"))
	LogError("TDIMPORT-TEST-NIL", nil)

	out := buf.String()
	assert.Contains(t, out, "[TDImport] ")
	assert.Contains(t, out, "INFO: service started")
	assert.Contains(t, out, "WARN: archive disabled")
	assert.Contains(t, out, "DEBUG: converted urn:x")
	assert.Contains(t, out, "ERROR: TDIMPORT-TEST: boom")
	assert.NotContains(t, out, "TDIMPORT-TEST-NIL")
}

func TestLogImportWarnings(t *testing.T) {
	buf := captureOutput(t)

	LogImportWarnings("urn:dev:ops:32473-WoTLamp-1234", []string{"@context is not resolved", `ignoring unsupported top-level key "x"`})

	out := buf.String()
	assert.Contains(t, out, "WARN: import urn:dev:ops:32473-WoTLamp-1234: @context is not resolved")
	assert.Contains(t, out, `WARN: import urn:dev:ops:32473-WoTLamp-1234: ignoring unsupported top-level key "x"`)
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}
