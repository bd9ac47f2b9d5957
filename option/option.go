// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package option configures scanners.
package option

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/yamlcore/yamlscan/internal/metrics"
	"github.com/yamlcore/yamlscan/internal/stream"
)

// Config holds configuration options for a scanner
type Config struct {
	encoding           *stream.Encoding
	logger             logrus.FieldLogger
	metrics            *metrics.Metrics
	maxSimpleKeyLength *int
}

const (
	defaultEncoding           = stream.ANY_ENCODING
	defaultMaxSimpleKeyLength = 1024
)

// Option represents a functional option for configuring a scanner
type Option func(*Config)

// WithEncoding returns an Option that forces the input encoding instead of
// detecting it
func WithEncoding(enc stream.Encoding) Option {
	return func(c *Config) {
		c.encoding = &enc
	}
}

// WithLogger returns an Option that sets the logger receiving debug output
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithMetrics returns an Option that sets the collectors to update
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Config) {
		c.metrics = m
	}
}

// WithMaxSimpleKeyLength returns an Option that sets how many bytes a simple
// key may span
func WithMaxSimpleKeyLength(n int) Option {
	return func(c *Config) {
		c.maxSimpleKeyLength = &n
	}
}

// GetEncoding returns the Config's encoding if set or the default value
func (c *Config) GetEncoding() stream.Encoding {
	if c.encoding != nil {
		return *c.encoding
	}
	return defaultEncoding
}

// GetLogger returns the Config's logger if set or a logger discarding
// everything
func (c *Config) GetLogger() logrus.FieldLogger {
	if c.logger != nil {
		return c.logger
	}
	return newDiscardLogger()
}

// GetMetrics returns the Config's metrics, nil if unset
func (c *Config) GetMetrics() *metrics.Metrics {
	return c.metrics
}

// GetMaxSimpleKeyLength returns the Config's simple key limit if set or the
// default value
func (c *Config) GetMaxSimpleKeyLength() int {
	if c.maxSimpleKeyLength != nil {
		return *c.maxSimpleKeyLength
	}
	return defaultMaxSimpleKeyLength
}

// NewConfig creates a new Config with the provided options
func NewConfig(opts ...Option) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Apply applies additional options to an existing Config
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

func newDiscardLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	log.SetLevel(logrus.ErrorLevel)
	return log
}
