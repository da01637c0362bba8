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

// Package persistence defines the import record and the store contract shared by
// the in-memory, PostgreSQL and MongoDB backends.
package persistence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ImportRecord describes one imported Thing Description and the submodel it produced.
type ImportRecord struct {
	ID           string          `json:"id"`
	SubmodelID   string          `json:"submodelId"`
	Title        string          `json:"title,omitempty"`
	SourceSHA256 string          `json:"sourceSha256"`
	ArchiveKey   string          `json:"archiveKey,omitempty"`
	Warnings     []string        `json:"warnings,omitempty"`
	ImportedAt   time.Time       `json:"importedAt"`
	Submodel     *model.Submodel `json:"submodel"`
}

// Store persists import records keyed by submodel id.
//
// CreateRecord returns a conflict error when the submodel id is already stored.
// GetRecord and DeleteRecord return a not found error for unknown ids.
// ListRecords returns records in import order.
type Store interface {
	CreateRecord(ctx context.Context, record ImportRecord) error
	GetRecord(ctx context.Context, submodelID string) (ImportRecord, error)
	ListRecords(ctx context.Context) ([]ImportRecord, error)
	DeleteRecord(ctx context.Context, submodelID string) error
	Close(ctx context.Context) error
}

// Checksum returns the hex encoded SHA-256 of a source document.
func Checksum(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}

// EncodeSubmodel serializes a submodel into the model JSON form stored by the backends.
func EncodeSubmodel(sm *model.Submodel) ([]byte, error) {
	return json.Marshal(sm)
}

// DecodeSubmodel restores a submodel written by EncodeSubmodel.
func DecodeSubmodel(data []byte) (*model.Submodel, error) {
	sm := &model.Submodel{}
	if err := json.Unmarshal(data, sm); err != nil {
		return nil, err
	}
	return sm, nil
}

// EncodeWarnings serializes the warning list, an empty list becomes "[]".
func EncodeWarnings(warnings []string) ([]byte, error) {
	if warnings == nil {
		warnings = []string{}
	}
	return json.Marshal(warnings)
}

// DecodeWarnings restores a warning list written by EncodeWarnings.
func DecodeWarnings(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var warnings []string
	if err := json.Unmarshal(data, &warnings); err != nil {
		return nil, err
	}
	if len(warnings) == 0 {
		return nil, nil
	}
	return warnings, nil
}

// Clone returns a deep copy of r.
func (r ImportRecord) Clone() (ImportRecord, error) {
	out := r
	out.Warnings = append([]string(nil), r.Warnings...)
	if len(out.Warnings) == 0 {
		out.Warnings = nil
	}
	if r.Submodel == nil {
		return out, nil
	}
	data, err := EncodeSubmodel(r.Submodel)
	if err != nil {
		return ImportRecord{}, err
	}
	if out.Submodel, err = DecodeSubmodel(data); err != nil {
		return ImportRecord{}, err
	}
	return out, nil
}
