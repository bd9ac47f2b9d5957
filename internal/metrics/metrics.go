// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package metrics holds the Prometheus collectors updated by the scanner.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Error types reported by ObserveError.
const (
	ReaderError  = "reader"
	ScannerError = "scanner"
)

// Metrics is shared by every scanner configured with it. A nil *Metrics
// records nothing.
type Metrics struct {
	tokens     *prometheus.CounterVec
	errors     *prometheus.CounterVec
	inputBytes prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg, if not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		tokens: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "yamlscan_tokens_total",
			Help: "Total number of tokens delivered, by token kind.",
		}, []string{"kind"}),

		errors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "yamlscan_errors_total",
			Help: "Total number of streams that failed to tokenize, by error type.",
		}, []string{"type"}),

		inputBytes: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "yamlscan_input_bytes_total",
			Help: "Total number of decoded input bytes tokenized to the end of stream.",
		}),
	}
}

// ObserveToken counts a delivered token of the given kind.
func (m *Metrics) ObserveToken(kind string) {
	if m == nil {
		return
	}
	m.tokens.WithLabelValues(kind).Inc()
}

// ObserveError counts a failed stream.
func (m *Metrics) ObserveError(typ string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(typ).Inc()
}

// ObserveInput counts n bytes of input scanned to the end of stream.
func (m *Metrics) ObserveInput(n int) {
	if m == nil {
		return
	}
	m.inputBytes.Add(float64(n))
}
