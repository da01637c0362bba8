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

// Package persistence_mongodb stores import records in a MongoDB collection.
package persistence_mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common"
	tdimporterrors "github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/errors"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/logger"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/persistence"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// recordDocument is the BSON shape of an import record. The submodel is kept as
// model JSON so that it round-trips exactly like the other backends.
type recordDocument struct {
	ID           string    `bson:"_id"`
	SubmodelID   string    `bson:"submodelId"`
	Title        string    `bson:"title"`
	SourceSHA256 string    `bson:"sourceSha256"`
	ArchiveKey   string    `bson:"archiveKey"`
	Warnings     []string  `bson:"warnings"`
	ImportedAt   time.Time `bson:"importedAt"`
	Submodel     string    `bson:"submodel"`
}

// MongoRecordStore is a persistence.Store backed by MongoDB.
type MongoRecordStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoRecordStore connects to MongoDB and ensures the unique submodel id index.
func NewMongoRecordStore(ctx context.Context, cfg common.MongoDBConfig) (*MongoRecordStore, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI).SetTimeout(timeout))
	if err != nil {
		logger.LogError("TDIMPORT-MONGOCONNECT", err)
		return nil, tdimporterrors.ErrStorageUnavailable
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		logger.LogError("TDIMPORT-MONGOPING", err)
		return nil, tdimporterrors.ErrStorageUnavailable
	}

	store := NewMongoRecordStoreFromCollection(client.Database(cfg.Database).Collection(cfg.Collection))
	store.client = client
	if err := store.ensureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return store, nil
}

// NewMongoRecordStoreFromCollection wraps an existing collection. Close is a no-op
// for stores created this way.
func NewMongoRecordStoreFromCollection(collection *mongo.Collection) *MongoRecordStore {
	return &MongoRecordStore{collection: collection}
}

func (s *MongoRecordStore) ensureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "submodelId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("ux_submodel_id"),
	})
	if err != nil {
		logger.LogError("TDIMPORT-MONGOINDEX", err)
		return common.NewInternalServerError("TDIMPORT-MONGOINDEX " + err.Error())
	}
	return nil
}

// CreateRecord inserts a record. A duplicate submodel id is reported as conflict.
func (s *MongoRecordStore) CreateRecord(ctx context.Context, record persistence.ImportRecord) error {
	doc, err := toDocument(record)
	if err != nil {
		logger.LogError("TDIMPORT-MONGOCREATE-ENCODE", err)
		return tdimporterrors.ErrRecordEncoding
	}
	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return tdimporterrors.ErrImportRecordAlreadyExists
		}
		logger.LogError("TDIMPORT-MONGOCREATE-INSERT", err)
		return common.NewInternalServerError("TDIMPORT-MONGOCREATE-INSERT " + err.Error())
	}
	return nil
}

// GetRecord loads the record of the given submodel.
func (s *MongoRecordStore) GetRecord(ctx context.Context, submodelID string) (persistence.ImportRecord, error) {
	var doc recordDocument
	err := s.collection.FindOne(ctx, bson.M{"submodelId": submodelID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return persistence.ImportRecord{}, tdimporterrors.ErrImportRecordNotFound
	}
	if err != nil {
		logger.LogError("TDIMPORT-MONGOGET-FIND", err)
		return persistence.ImportRecord{}, common.NewInternalServerError("TDIMPORT-MONGOGET-FIND " + err.Error())
	}
	return fromDocument(doc)
}

// ListRecords loads all records ordered by import time.
func (s *MongoRecordStore) ListRecords(ctx context.Context) ([]persistence.ImportRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "importedAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		logger.LogError("TDIMPORT-MONGOLIST-FIND", err)
		return nil, common.NewInternalServerError("TDIMPORT-MONGOLIST-FIND " + err.Error())
	}
	var docs []recordDocument
	if err := cursor.All(ctx, &docs); err != nil {
		logger.LogError("TDIMPORT-MONGOLIST-CURSOR", err)
		return nil, common.NewInternalServerError("TDIMPORT-MONGOLIST-CURSOR " + err.Error())
	}

	records := make([]persistence.ImportRecord, 0, len(docs))
	for _, doc := range docs {
		record, err := fromDocument(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// DeleteRecord removes the record of the given submodel.
func (s *MongoRecordStore) DeleteRecord(ctx context.Context, submodelID string) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"submodelId": submodelID})
	if err != nil {
		logger.LogError("TDIMPORT-MONGODELETE", err)
		return common.NewInternalServerError("TDIMPORT-MONGODELETE " + err.Error())
	}
	if res.DeletedCount == 0 {
		return tdimporterrors.ErrImportRecordNotFound
	}
	return nil
}

// Close disconnects the client owned by the store.
func (s *MongoRecordStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func toDocument(record persistence.ImportRecord) (recordDocument, error) {
	submodelJSON, err := persistence.EncodeSubmodel(record.Submodel)
	if err != nil {
		return recordDocument{}, err
	}
	warnings := record.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return recordDocument{
		ID:           record.ID,
		SubmodelID:   record.SubmodelID,
		Title:        record.Title,
		SourceSHA256: record.SourceSHA256,
		ArchiveKey:   record.ArchiveKey,
		Warnings:     warnings,
		ImportedAt:   record.ImportedAt.UTC(),
		Submodel:     string(submodelJSON),
	}, nil
}

func fromDocument(doc recordDocument) (persistence.ImportRecord, error) {
	sm, err := persistence.DecodeSubmodel([]byte(doc.Submodel))
	if err != nil {
		logger.LogError(fmt.Sprintf("TDIMPORT-MONGODECODE %s", doc.SubmodelID), err)
		return persistence.ImportRecord{}, tdimporterrors.ErrRecordEncoding
	}
	record := persistence.ImportRecord{
		ID:           doc.ID,
		SubmodelID:   doc.SubmodelID,
		Title:        doc.Title,
		SourceSHA256: doc.SourceSHA256,
		ArchiveKey:   doc.ArchiveKey,
		ImportedAt:   doc.ImportedAt.UTC(),
		Submodel:     sm,
	}
	if len(doc.Warnings) > 0 {
		record.Warnings = doc.Warnings
	}
	return record, nil
}

var _ persistence.Store = (*MongoRecordStore)(nil)
