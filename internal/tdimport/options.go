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

package tdimport

import (
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
)

// AttachMode controls when built elements reach the caller's submodel.
type AttachMode int

const (
	// AttachStaged builds into a private submodel and copies the result onto the
	// caller's submodel only when the whole document was converted.
	AttachStaged AttachMode = iota
	// AttachIncremental appends every element as soon as it is built. A failing
	// import leaves the elements built before the failure on the submodel.
	AttachIncremental
)

func (m AttachMode) String() string {
	if m == AttachIncremental {
		return "incremental"
	}
	return "staged"
}

// ParseAttachMode maps "incremental" to AttachIncremental and everything else to AttachStaged.
func ParseAttachMode(raw string) AttachMode {
	if raw == "incremental" {
		return AttachIncremental
	}
	return AttachStaged
}

type options struct {
	kind             model.ModellingKind
	mode             AttachMode
	parallel         bool
	validator        Validator
	maxDocumentBytes int64
}

// Option configures one import call.
type Option func(*options)

// WithKind sets the modelling kind of the submodel and every produced element.
func WithKind(kind model.ModellingKind) Option {
	return func(o *options) {
		if kind != "" {
			o.kind = kind
		}
	}
}

// WithAttachMode selects staged or incremental attachment.
func WithAttachMode(mode AttachMode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithParallel builds the independent top-level sections concurrently.
func WithParallel(parallel bool) Option {
	return func(o *options) {
		o.parallel = parallel
	}
}

// WithValidator installs a validation step that runs after parsing and before any conversion.
func WithValidator(v Validator) Option {
	return func(o *options) {
		if v != nil {
			o.validator = v
		}
	}
}

// WithMaxDocumentBytes rejects documents larger than n bytes. Zero disables the limit.
func WithMaxDocumentBytes(n int64) Option {
	return func(o *options) {
		o.maxDocumentBytes = n
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		kind:      model.MODELLINGKIND_INSTANCE,
		mode:      AttachStaged,
		validator: AcceptAll{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
