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

// Package archive keeps a copy of every imported Thing Description in object storage.
package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/logger"
)

// ContentType is the media type of a Thing Description document.
const ContentType = "application/td+json"

// Archiver stores source documents and removes them again.
type Archiver interface {
	// Archive stores source under a key unique to the import record and returns that key.
	// An empty key means nothing was stored.
	Archive(ctx context.Context, submodelID string, recordID string, source []byte) (string, error)
	Remove(ctx context.Context, key string) error
}

// Noop is the Archiver used when no bucket is configured.
type Noop struct{}

// Archive implements Archiver.
func (Noop) Archive(context.Context, string, string, []byte) (string, error) { return "", nil }

// Remove implements Archiver.
func (Noop) Remove(context.Context, string) error { return nil }

// objectAPI is the subset of the S3 client used by S3Archiver.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Archiver writes documents to an S3 compatible bucket.
type S3Archiver struct {
	client objectAPI
	bucket string
	prefix string
}

// New returns an S3Archiver for cfg, or Noop when no bucket is configured.
func New(ctx context.Context, cfg common.S3Config) (Archiver, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return Noop{}, nil
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		logger.LogError("TDIMPORT-S3-LOADCONFIG", err)
		return nil, common.NewInternalServerError("TDIMPORT-S3-LOADCONFIG " + err.Error())
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return newS3Archiver(client, cfg.Bucket, cfg.Prefix), nil
}

func newS3Archiver(client objectAPI, bucket string, prefix string) *S3Archiver {
	return &S3Archiver{client: client, bucket: bucket, prefix: prefix}
}

// Key returns the object key of the source document of one import record. Records
// of the same submodel never share a key.
func (a *S3Archiver) Key(submodelID string, recordID string) string {
	return a.prefix + common.EncodeString(submodelID) + "/" + recordID + ".td.json"
}

// Archive implements Archiver.
func (a *S3Archiver) Archive(ctx context.Context, submodelID string, recordID string, source []byte) (string, error) {
	key := a.Key(submodelID, recordID)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(source),
		ContentType: aws.String(ContentType),
		Metadata:    map[string]string{"submodel-id": submodelID, "record-id": recordID},
	})
	if err != nil {
		logger.LogError(fmt.Sprintf("TDIMPORT-S3-PUT %s", describe(err)), err)
		return "", common.NewInternalServerError("TDIMPORT-S3-PUT " + err.Error())
	}
	return key, nil
}

// Remove implements Archiver. An empty key is ignored.
func (a *S3Archiver) Remove(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.LogError(fmt.Sprintf("TDIMPORT-S3-DELETE %s", describe(err)), err)
		return common.NewInternalServerError("TDIMPORT-S3-DELETE " + err.Error())
	}
	return nil
}

// describe returns the service error code of an S3 failure, if there is one.
func describe(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return "request failed"
}

var (
	_ Archiver = Noop{}
	_ Archiver = (*S3Archiver)(nil)
)
