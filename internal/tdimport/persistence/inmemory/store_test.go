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

package persistence_inmemory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id string) persistence.ImportRecord {
	sm := model.NewSubmodel(id)
	sm.IdShort = "AssetTD"
	return persistence.ImportRecord{
		ID:         "rec-" + id,
		SubmodelID: id,
		ImportedAt: time.Unix(1700000000, 0).UTC(),
		Submodel:   sm,
	}
}

func TestCreateGetListDelete(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryRecordStore()

	require.NoError(t, store.CreateRecord(ctx, record("urn:a")))
	require.NoError(t, store.CreateRecord(ctx, record("urn:b")))

	err := store.CreateRecord(ctx, record("urn:a"))
	assert.True(t, common.IsErrConflict(err))

	got, err := store.GetRecord(ctx, "urn:b")
	require.NoError(t, err)
	assert.Equal(t, record("urn:b"), got)

	list, err := store.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "urn:a", list[0].SubmodelID)
	assert.Equal(t, "urn:b", list[1].SubmodelID)

	require.NoError(t, store.DeleteRecord(ctx, "urn:a"))
	_, err = store.GetRecord(ctx, "urn:a")
	assert.True(t, common.IsErrNotFound(err))
	assert.True(t, common.IsErrNotFound(store.DeleteRecord(ctx, "urn:a")))

	list, err = store.ListRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.NoError(t, store.Close(ctx))
}

func TestStoredRecordIsIsolatedFromCaller(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryRecordStore()
	rec := record("urn:a")
	require.NoError(t, store.CreateRecord(ctx, rec))

	rec.Submodel.IdShort = "mutated"
	got, err := store.GetRecord(ctx, "urn:a")
	require.NoError(t, err)
	assert.Equal(t, "AssetTD", got.Submodel.IdShort)

	got.Submodel.IdShort = "mutated again"
	again, err := store.GetRecord(ctx, "urn:a")
	require.NoError(t, err)
	assert.Equal(t, "AssetTD", again.Submodel.IdShort)
}

func TestConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryRecordStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.CreateRecord(ctx, record(fmt.Sprintf("urn:%d", i)))
		}(i)
	}
	wg.Wait()
	list, err := store.ListRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 20)
}
