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

// Package persistence_inmemory keeps import records in process memory.
package persistence_inmemory

import (
	"context"
	"sync"

	tdimporterrors "github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/errors"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/persistence"
)

// InMemoryRecordStore is a persistence.Store backed by a map. Records are
// copied on the way in and out so callers never share submodel trees with the store.
type InMemoryRecordStore struct {
	mu      sync.RWMutex
	records map[string]persistence.ImportRecord
	order   []string
}

// NewInMemoryRecordStore creates an empty in-memory store.
func NewInMemoryRecordStore() *InMemoryRecordStore {
	return &InMemoryRecordStore{
		records: make(map[string]persistence.ImportRecord),
	}
}

// CreateRecord stores a new record.
func (s *InMemoryRecordStore) CreateRecord(_ context.Context, record persistence.ImportRecord) error {
	clone, err := record.Clone()
	if err != nil {
		return tdimporterrors.ErrRecordEncoding
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[record.SubmodelID]; exists {
		return tdimporterrors.ErrImportRecordAlreadyExists
	}
	s.records[record.SubmodelID] = clone
	s.order = append(s.order, record.SubmodelID)
	return nil
}

// GetRecord returns the record of the given submodel.
func (s *InMemoryRecordStore) GetRecord(_ context.Context, submodelID string) (persistence.ImportRecord, error) {
	s.mu.RLock()
	record, exists := s.records[submodelID]
	s.mu.RUnlock()
	if !exists {
		return persistence.ImportRecord{}, tdimporterrors.ErrImportRecordNotFound
	}
	return record.Clone()
}

// ListRecords returns all records in import order.
func (s *InMemoryRecordStore) ListRecords(_ context.Context) ([]persistence.ImportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]persistence.ImportRecord, 0, len(s.order))
	for _, id := range s.order {
		clone, err := s.records[id].Clone()
		if err != nil {
			return nil, tdimporterrors.ErrRecordEncoding
		}
		records = append(records, clone)
	}
	return records, nil
}

// DeleteRecord removes the record of the given submodel.
func (s *InMemoryRecordStore) DeleteRecord(_ context.Context, submodelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[submodelID]; !exists {
		return tdimporterrors.ErrImportRecordNotFound
	}
	delete(s.records, submodelID)
	for i, id := range s.order {
		if id == submodelID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Close is a no-op.
func (s *InMemoryRecordStore) Close(context.Context) error {
	return nil
}

var _ persistence.Store = (*InMemoryRecordStore)(nil)
