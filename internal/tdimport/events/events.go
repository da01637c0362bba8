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

// Package events announces completed and removed imports on NATS.
package events

import (
	"context"
	"strings"
	"time"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/logger"
	jsoniter "github.com/json-iterator/go"
	"github.com/nats-io/nats.go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Event types
const (
	TypeImported = "imported"
	TypeDeleted  = "deleted"
)

// ImportEvent is the payload published for every import and deletion.
type ImportEvent struct {
	Type         string    `json:"type"`
	SubmodelID   string    `json:"submodelId"`
	RecordID     string    `json:"recordId,omitempty"`
	Title        string    `json:"title,omitempty"`
	SourceSHA256 string    `json:"sourceSha256,omitempty"`
	Warnings     int       `json:"warnings"`
	Timestamp    time.Time `json:"timestamp"`
}

// Publisher sends import events.
type Publisher interface {
	Publish(ctx context.Context, event ImportEvent) error
	Close() error
}

// Noop is the Publisher used when no NATS server is configured.
type Noop struct{}

// Publish implements Publisher.
func (Noop) Publish(context.Context, ImportEvent) error { return nil }

// Close implements Publisher.
func (Noop) Close() error { return nil }

// conn is the subset of *nats.Conn used by NATSPublisher.
type conn interface {
	Publish(subj string, data []byte) error
	Drain() error
}

// NATSPublisher publishes events as JSON on a fixed subject.
type NATSPublisher struct {
	nc      conn
	subject string
}

// New connects to the configured server, or returns Noop when no URL is set.
func New(cfg common.NATSConfig) (Publisher, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return Noop{}, nil
	}
	nc, err := nats.Connect(cfg.URL,
		nats.Name("basyx-tdimport"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		logger.LogError("TDIMPORT-NATS-CONNECT", err)
		return nil, common.NewInternalServerError("TDIMPORT-NATS-CONNECT " + err.Error())
	}
	return newNATSPublisher(nc, cfg.Subject), nil
}

func newNATSPublisher(nc conn, subject string) *NATSPublisher {
	return &NATSPublisher{nc: nc, subject: subject}
}

// Publish implements Publisher. A zero timestamp is replaced by the current time.
func (p *NATSPublisher) Publish(ctx context.Context, event ImportEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return common.NewInternalServerError("TDIMPORT-NATS-ENCODE " + err.Error())
	}
	if err := p.nc.Publish(p.subject, data); err != nil {
		logger.LogError("TDIMPORT-NATS-PUBLISH", err)
		return common.NewInternalServerError("TDIMPORT-NATS-PUBLISH " + err.Error())
	}
	return nil
}

// Close drains pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	return p.nc.Drain()
}

var (
	_ Publisher = Noop{}
	_ Publisher = (*NATSPublisher)(nil)
)
