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

// Package persistence_postgresql stores import records in PostgreSQL.
package persistence_postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // Postgres dialect for goqu
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common"
	tdimporterrors "github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/errors"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/logger"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/persistence"
	"github.com/lib/pq"
)

const (
	tblImportRecord = "td_import_record"

	colID           = "id"
	colSubmodelID   = "submodel_id"
	colTitle        = "title"
	colSourceSHA256 = "source_sha256"
	colArchiveKey   = "archive_key"
	colWarnings     = "warnings"
	colImportedAt   = "imported_at"
	colSubmodel     = "submodel"
)

// Schema creates the record table. It is applied on startup and is idempotent.
const Schema = `CREATE TABLE IF NOT EXISTS td_import_record (
	id            TEXT PRIMARY KEY,
	submodel_id   TEXT NOT NULL UNIQUE,
	title         TEXT NOT NULL DEFAULT '',
	source_sha256 TEXT NOT NULL,
	archive_key   TEXT NOT NULL DEFAULT '',
	warnings      JSONB NOT NULL DEFAULT '[]',
	imported_at   TIMESTAMPTZ NOT NULL,
	submodel      JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_td_import_record_imported_at ON td_import_record (imported_at);`

var recordColumns = []interface{}{colID, colSubmodelID, colTitle, colSourceSHA256, colArchiveKey, colWarnings, colImportedAt, colSubmodel}

// PostgresRecordStore is a persistence.Store backed by PostgreSQL.
type PostgresRecordStore struct {
	db *sql.DB
}

// NewPostgresRecordStore connects to PostgreSQL, applies Schema and configures the pool.
func NewPostgresRecordStore(dsn string, maxOpenConnections int, maxIdleConnections int, connMaxLifetimeMinutes int) (*PostgresRecordStore, error) {
	db, err := common.InitializeDatabase(dsn, Schema)
	if err != nil {
		return nil, err
	}
	common.ConfigurePool(db, maxOpenConnections, maxIdleConnections, connMaxLifetimeMinutes)
	return &PostgresRecordStore{db: db}, nil
}

// CreateRecord inserts a record. A duplicate submodel id is reported as conflict.
func (s *PostgresRecordStore) CreateRecord(ctx context.Context, record persistence.ImportRecord) error {
	submodelJSON, err := persistence.EncodeSubmodel(record.Submodel)
	if err != nil {
		logger.LogError("TDIMPORT-PGCREATE-ENCODE", err)
		return tdimporterrors.ErrRecordEncoding
	}
	warningsJSON, err := persistence.EncodeWarnings(record.Warnings)
	if err != nil {
		logger.LogError("TDIMPORT-PGCREATE-ENCODE", err)
		return tdimporterrors.ErrRecordEncoding
	}

	dialect := goqu.Dialect("postgres")
	sqlStr, args, err := dialect.
		Insert(tblImportRecord).
		Rows(goqu.Record{
			colID:           record.ID,
			colSubmodelID:   record.SubmodelID,
			colTitle:        record.Title,
			colSourceSHA256: record.SourceSHA256,
			colArchiveKey:   record.ArchiveKey,
			colWarnings:     string(warningsJSON),
			colImportedAt:   record.ImportedAt.UTC(),
			colSubmodel:     string(submodelJSON),
		}).
		ToSQL()
	if err != nil {
		return common.NewInternalServerError("TDIMPORT-PGCREATE-BUILDSQL " + err.Error())
	}
	if _, err := s.db.ExecContext(ctx, sqlStr, args...); err != nil {
		if isUniqueViolation(err) {
			return tdimporterrors.ErrImportRecordAlreadyExists
		}
		logger.LogError("TDIMPORT-PGCREATE-EXECSQL", err)
		return common.NewInternalServerError("TDIMPORT-PGCREATE-EXECSQL " + err.Error())
	}
	return nil
}

// GetRecord loads the record of the given submodel.
func (s *PostgresRecordStore) GetRecord(ctx context.Context, submodelID string) (persistence.ImportRecord, error) {
	dialect := goqu.Dialect("postgres")
	sqlStr, args, err := dialect.
		From(tblImportRecord).
		Select(recordColumns...).
		Where(goqu.C(colSubmodelID).Eq(submodelID)).
		ToSQL()
	if err != nil {
		return persistence.ImportRecord{}, common.NewInternalServerError("TDIMPORT-PGGET-BUILDSQL " + err.Error())
	}
	record, err := scanRecord(s.db.QueryRowContext(ctx, sqlStr, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return persistence.ImportRecord{}, tdimporterrors.ErrImportRecordNotFound
	}
	return record, err
}

// ListRecords loads all records ordered by import time.
func (s *PostgresRecordStore) ListRecords(ctx context.Context) ([]persistence.ImportRecord, error) {
	dialect := goqu.Dialect("postgres")
	sqlStr, args, err := dialect.
		From(tblImportRecord).
		Select(recordColumns...).
		Order(goqu.C(colImportedAt).Asc(), goqu.C(colID).Asc()).
		ToSQL()
	if err != nil {
		return nil, common.NewInternalServerError("TDIMPORT-PGLIST-BUILDSQL " + err.Error())
	}
	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		logger.LogError("TDIMPORT-PGLIST-EXECSQL", err)
		return nil, common.NewInternalServerError("TDIMPORT-PGLIST-EXECSQL " + err.Error())
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]persistence.ImportRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewInternalServerError("TDIMPORT-PGLIST-ROWS " + err.Error())
	}
	return records, nil
}

// DeleteRecord removes the record of the given submodel.
func (s *PostgresRecordStore) DeleteRecord(ctx context.Context, submodelID string) error {
	dialect := goqu.Dialect("postgres")
	sqlStr, args, err := dialect.
		Delete(tblImportRecord).
		Where(goqu.C(colSubmodelID).Eq(submodelID)).
		ToSQL()
	if err != nil {
		return common.NewInternalServerError("TDIMPORT-PGDELETE-BUILDSQL " + err.Error())
	}
	res, err := s.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		logger.LogError("TDIMPORT-PGDELETE-EXECSQL", err)
		return common.NewInternalServerError("TDIMPORT-PGDELETE-EXECSQL " + err.Error())
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return common.NewInternalServerError("TDIMPORT-PGDELETE-ROWS " + err.Error())
	}
	if affected == 0 {
		return tdimporterrors.ErrImportRecordNotFound
	}
	return nil
}

// Close closes the connection pool.
func (s *PostgresRecordStore) Close(context.Context) error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (persistence.ImportRecord, error) {
	var (
		record        persistence.ImportRecord
		warningsJSON  []byte
		submodelJSON  []byte
		importedAtRaw time.Time
	)
	err := row.Scan(&record.ID, &record.SubmodelID, &record.Title, &record.SourceSHA256, &record.ArchiveKey, &warningsJSON, &importedAtRaw, &submodelJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.ImportRecord{}, err
		}
		return persistence.ImportRecord{}, common.NewInternalServerError("TDIMPORT-PGSCAN " + err.Error())
	}
	record.ImportedAt = importedAtRaw.UTC()
	if record.Warnings, err = persistence.DecodeWarnings(warningsJSON); err != nil {
		logger.LogError(fmt.Sprintf("TDIMPORT-PGSCAN-WARNINGS %s", record.SubmodelID), err)
		return persistence.ImportRecord{}, tdimporterrors.ErrRecordEncoding
	}
	if record.Submodel, err = persistence.DecodeSubmodel(submodelJSON); err != nil {
		logger.LogError(fmt.Sprintf("TDIMPORT-PGSCAN-SUBMODEL %s", record.SubmodelID), err)
		return persistence.ImportRecord{}, tdimporterrors.ErrRecordEncoding
	}
	return record, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

var _ persistence.Store = (*PostgresRecordStore)(nil)
