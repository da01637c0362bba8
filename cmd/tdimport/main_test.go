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

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/semantics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const lampTD = `{
  "id": "urn:dev:ops:32473-WoTLamp-1234",
  "title": "MyLampThing",
  "properties": {"status": {"type": "string"}}
}`

func writeTD(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "td.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConvertJSON(t *testing.T) {
	out, _, err := execute(t, "convert", writeTD(t, lampTD))
	require.NoError(t, err)

	var sm map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &sm))
	assert.Equal(t, "urn:dev:ops:32473-WoTLamp-1234", sm["id"])
	assert.Equal(t, "AssetTD", sm["idShort"])
	assert.Equal(t, "Instance", sm["kind"])
}

func TestConvertYAMLTemplate(t *testing.T) {
	out, _, err := execute(t, "convert", "--format", "yaml", "--kind", "Template", writeTD(t, lampTD))
	require.NoError(t, err)

	var sm map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &sm))
	assert.Equal(t, "urn:dev:ops:32473-WoTLamp-1234", sm["id"])
	assert.Equal(t, "Template", sm["kind"])
}

func TestConvertAAS(t *testing.T) {
	out, _, err := execute(t, "convert", "-f", "aas", writeTD(t, lampTD))
	require.NoError(t, err)

	var sm map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &sm))
	assert.Equal(t, "Submodel", sm["modelType"])
}

func TestConvertWritesOutputFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "sm.json")
	out, _, err := execute(t, "convert", "-o", target, writeTD(t, lampTD))
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "urn:dev:ops:32473-WoTLamp-1234")
}

func TestConvertReportsWarnings(t *testing.T) {
	td := `{"id":"urn:x","@context":"https://www.w3.org/2022/wot/td/v1.1","unknownKey":1}`
	_, stderr, err := execute(t, "convert", writeTD(t, td))
	require.NoError(t, err)
	assert.Contains(t, stderr, "warning: @context is not resolved")
	assert.Contains(t, stderr, `ignoring unsupported top-level key "unknownKey"`)

	_, stderr, err = execute(t, "convert", "-q", writeTD(t, td))
	require.NoError(t, err)
	assert.NotContains(t, stderr, "warning:")
}

func TestConvertFailures(t *testing.T) {
	_, _, err := execute(t, "convert", writeTD(t, `{"id":"urn:x","events":"nope"}`))
	require.Error(t, err)

	_, _, err = execute(t, "convert", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, _, err = execute(t, "convert", "--format", "xml", writeTD(t, lampTD))
	require.Error(t, err)

	_, _, err = execute(t, "convert", "--kind", "Type", writeTD(t, lampTD))
	require.Error(t, err)

	_, _, err = execute(t, "convert")
	require.Error(t, err)
}

func TestConvertIncrementalPrintsPartialResult(t *testing.T) {
	td := `{"id":"urn:partial","properties":{"a":{"type":"string"}},"events":"nope"}`
	out, _, err := execute(t, "convert", "--incremental", writeTD(t, td))
	require.Error(t, err)
	assert.Contains(t, out, `"properties"`)
}

func TestVocab(t *testing.T) {
	out, _, err := execute(t, "vocab")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(semantics.Keywords()))
	assert.Contains(t, out, semantics.Resolve("Thing"))
}

type failingCloser struct {
	bytes.Buffer
	closeErr error
}

func (f *failingCloser) Close() error { return f.closeErr }

func TestConvertReportsOutputCloseError(t *testing.T) {
	target := &failingCloser{closeErr: errors.New("disk full")}
	original := createOutput
	createOutput = func(string) (io.WriteCloser, error) { return target, nil }
	t.Cleanup(func() { createOutput = original })

	_, _, err := execute(t, "convert", "-o", "sm.json", writeTD(t, lampTD))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, target.String(), "urn:dev:ops:32473-WoTLamp-1234")
}
