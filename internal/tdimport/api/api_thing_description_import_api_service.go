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

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/aassdk"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/archive"
	tdimporterrors "github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/errors"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/events"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/logger"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/metrics"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/persistence"
	"github.com/google/uuid"
)

// ThingDescriptionImportAPIService runs imports and manages the stored results.
type ThingDescriptionImportAPIService struct {
	store              persistence.Store
	archiver           archive.Archiver
	publisher          events.Publisher
	metrics            *metrics.Metrics
	importOptions      []tdimport.Option
	strictVerification bool
	now                func() time.Time
}

// ServiceOption configures a ThingDescriptionImportAPIService.
type ServiceOption func(*ThingDescriptionImportAPIService)

// WithArchiver stores every imported source document.
func WithArchiver(a archive.Archiver) ServiceOption {
	return func(s *ThingDescriptionImportAPIService) {
		if a != nil {
			s.archiver = a
		}
	}
}

// WithPublisher announces imports and deletions.
func WithPublisher(p events.Publisher) ServiceOption {
	return func(s *ThingDescriptionImportAPIService) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithMetrics records every import on m.
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *ThingDescriptionImportAPIService) {
		s.metrics = m
	}
}

// WithImportOptions sets the options passed to every import call.
func WithImportOptions(opts ...tdimport.Option) ServiceOption {
	return func(s *ThingDescriptionImportAPIService) {
		s.importOptions = append(s.importOptions, opts...)
	}
}

// WithStrictVerification rejects submodels that violate metamodel constraints.
func WithStrictVerification(strict bool) ServiceOption {
	return func(s *ThingDescriptionImportAPIService) {
		s.strictVerification = strict
	}
}

// NewThingDescriptionImportAPIService creates the import service on top of store.
func NewThingDescriptionImportAPIService(store persistence.Store, opts ...ServiceOption) *ThingDescriptionImportAPIService {
	s := &ThingDescriptionImportAPIService{
		store:     store,
		archiver:  archive.Noop{},
		publisher: events.Noop{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PostThingDescription converts source into a submodel and stores the import record.
func (s *ThingDescriptionImportAPIService) PostThingDescription(ctx context.Context, source []byte) (model.ImplResponse, error) {
	if len(source) == 0 {
		return common.NewErrorResponse(tdimporterrors.ErrEmptyDocument, http.StatusBadRequest, componentName, "PostThingDescription", "BadRequest"), tdimporterrors.ErrEmptyDocument
	}

	sm := model.NewSubmodel("")
	started := s.now()
	res := tdimport.ImportThingDescriptionBytes(source, nil, sm, nil, s.importOptions...)
	elapsed := s.now().Sub(started)
	if !res.OK() {
		s.metrics.ObserveImport(string(res.Status), len(res.Warnings), 0, elapsed)
		err := common.NewErrBadRequest(res.Err.Error())
		return common.NewErrorResponse(err, http.StatusBadRequest, componentName, "PostThingDescription", "ImportFailed"), err
	}

	_, violations, err := aassdk.Check(sm, s.strictVerification)
	if err != nil {
		s.metrics.ObserveImport(string(tdimport.StatusError), len(res.Warnings), 0, elapsed)
		return common.NewErrorResponse(err, common.StatusFromError(err), componentName, "PostThingDescription", "Verification"), err
	}
	warnings := append(append([]string(nil), res.Warnings...), violations...)
	logger.LogImportWarnings(sm.ID, warnings)
	logger.LogDebug(fmt.Sprintf("converted %s into %d elements in %s", sm.ID, len(sm.SubmodelElements), elapsed))

	if _, err := s.store.GetRecord(ctx, sm.ID); err == nil {
		s.metrics.ObserveImport(string(tdimport.StatusError), len(warnings), 0, elapsed)
		return common.NewErrorResponse(tdimporterrors.ErrImportRecordAlreadyExists, http.StatusConflict, componentName, "PostThingDescription", "Conflict"), tdimporterrors.ErrImportRecordAlreadyExists
	} else if !common.IsErrNotFound(err) {
		return common.NewErrorResponse(err, common.StatusFromError(err), componentName, "PostThingDescription", "Lookup"), err
	}

	recordID := uuid.NewString()
	key, err := s.archiver.Archive(ctx, sm.ID, recordID, source)
	if err != nil {
		return common.NewErrorResponse(err, http.StatusInternalServerError, componentName, "PostThingDescription", "Archive"), err
	}

	record := persistence.ImportRecord{
		ID:           recordID,
		SubmodelID:   sm.ID,
		Title:        title(res),
		SourceSHA256: persistence.Checksum(source),
		ArchiveKey:   key,
		Warnings:     warnings,
		ImportedAt:   s.now().UTC(),
		Submodel:     sm,
	}
	if err := s.store.CreateRecord(ctx, record); err != nil {
		// Archive keys are per record, so this only removes the source uploaded by this call.
		if rmErr := s.archiver.Remove(ctx, key); rmErr != nil {
			logger.LogError("TDIMPORT-POST-ARCHIVEROLLBACK", rmErr)
		}
		return common.NewErrorResponse(err, common.StatusFromError(err), componentName, "PostThingDescription", "Store"), err
	}
	s.metrics.ObserveImport(string(res.Status), len(warnings), len(sm.SubmodelElements), elapsed)

	s.publish(ctx, events.ImportEvent{
		Type:         events.TypeImported,
		SubmodelID:   record.SubmodelID,
		RecordID:     record.ID,
		Title:        record.Title,
		SourceSHA256: record.SourceSHA256,
		Warnings:     len(record.Warnings),
		Timestamp:    record.ImportedAt,
	})
	logger.LogInfo(fmt.Sprintf("imported %s (%d warnings)", record.SubmodelID, len(record.Warnings)))
	return model.Response(http.StatusCreated, record), nil
}

// GetAllImportedSubmodels returns every import record in import order.
func (s *ThingDescriptionImportAPIService) GetAllImportedSubmodels(ctx context.Context) (model.ImplResponse, error) {
	records, err := s.store.ListRecords(ctx)
	if err != nil {
		return common.NewErrorResponse(err, common.StatusFromError(err), componentName, "GetAllImportedSubmodels", "Store"), err
	}
	return model.Response(http.StatusOK, records), nil
}

// GetImportedSubmodelById returns the stored submodel, in AAS SDK form when format is FormatAAS.
func (s *ThingDescriptionImportAPIService) GetImportedSubmodelById(ctx context.Context, submodelID string, format string) (model.ImplResponse, error) {
	record, err := s.store.GetRecord(ctx, submodelID)
	if err != nil {
		return common.NewErrorResponse(err, common.StatusFromError(err), componentName, "GetImportedSubmodelById", "Store"), err
	}
	if format != FormatAAS {
		return model.Response(http.StatusOK, record.Submodel), nil
	}
	jsonable, err := aassdk.Jsonable(record.Submodel)
	if err != nil {
		return common.NewErrorResponse(err, http.StatusInternalServerError, componentName, "GetImportedSubmodelById", "Serialize"), err
	}
	return model.Response(http.StatusOK, jsonable), nil
}

// DeleteImportedSubmodelById removes the record and its archived source.
func (s *ThingDescriptionImportAPIService) DeleteImportedSubmodelById(ctx context.Context, submodelID string) (model.ImplResponse, error) {
	record, err := s.store.GetRecord(ctx, submodelID)
	if err != nil {
		return common.NewErrorResponse(err, common.StatusFromError(err), componentName, "DeleteImportedSubmodelById", "Store"), err
	}
	if err := s.store.DeleteRecord(ctx, submodelID); err != nil {
		return common.NewErrorResponse(err, common.StatusFromError(err), componentName, "DeleteImportedSubmodelById", "Store"), err
	}
	if err := s.archiver.Remove(ctx, record.ArchiveKey); err != nil {
		logger.LogError("TDIMPORT-DELETE-ARCHIVE", err)
	}
	s.publish(ctx, events.ImportEvent{
		Type:       events.TypeDeleted,
		SubmodelID: submodelID,
		RecordID:   record.ID,
		Timestamp:  s.now().UTC(),
	})
	return model.Response(http.StatusNoContent, nil), nil
}

// publish sends an event. Failures are logged, the import itself already succeeded.
func (s *ThingDescriptionImportAPIService) publish(ctx context.Context, event events.ImportEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.LogError("TDIMPORT-PUBLISH "+event.Type, err)
	}
}

func title(res tdimport.Result) string {
	if res.Document == nil {
		return ""
	}
	v, ok := res.Document.Get("title")
	if !ok {
		return ""
	}
	t, _ := v.Str()
	return t
}
