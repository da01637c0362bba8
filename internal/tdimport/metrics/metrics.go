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

// Package metrics exposes Prometheus instruments for Thing Description imports.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tdimport"

// Metrics bundles the import instruments and the registry they are registered on.
type Metrics struct {
	registry *prometheus.Registry
	imports  *prometheus.CounterVec
	warnings prometheus.Counter
	elements prometheus.Histogram
	duration prometheus.Histogram
}

// New creates the instruments on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		imports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "imports_total",
			Help:      "Thing Description imports by result status.",
		}, []string{"status"}),
		warnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "warnings_total",
			Help:      "Warnings raised while converting Thing Descriptions.",
		}),
		elements: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "submodel_elements",
			Help:      "Top-level submodel elements produced per successful import.",
			Buckets:   prometheus.LinearBuckets(0, 1, 12),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "import_duration_seconds",
			Help:      "Time spent converting one Thing Description.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(m.imports, m.warnings, m.elements, m.duration)
	return m
}

// ObserveImport records the outcome of one import.
//
// Parameters:
//   - status: Result status ("Success" or "error")
//   - warnings: Number of warnings raised
//   - elements: Number of top-level elements on the produced submodel
//   - elapsed: Conversion time
func (m *Metrics) ObserveImport(status string, warnings int, elements int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.imports.WithLabelValues(status).Inc()
	m.warnings.Add(float64(warnings))
	if status == "Success" {
		m.elements.Observe(float64(elements))
	}
	m.duration.Observe(elapsed.Seconds())
}

// Registry returns the registry holding the import instruments.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
