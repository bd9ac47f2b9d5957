// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package option

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/yamlcore/yamlscan/internal/metrics"
	"github.com/yamlcore/yamlscan/internal/stream"
	"github.com/yamlcore/yamlscan/internal/testutil/assert"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, stream.ANY_ENCODING, cfg.GetEncoding())
	assert.Equal(t, 1024, cfg.GetMaxSimpleKeyLength())
	assert.IsNil(t, cfg.GetMetrics())

	logger, ok := cfg.GetLogger().(*logrus.Logger)
	assert.True(t, ok)
	assert.False(t, logger.IsLevelEnabled(logrus.DebugLevel))
}

func TestConfigOptions(t *testing.T) {
	logger, _ := test.NewNullLogger()
	m := metrics.NewMetrics(nil)

	cfg := NewConfig(WithEncoding(stream.UTF16BE_ENCODING), WithLogger(logger))
	cfg.Apply(WithMetrics(m), WithMaxSimpleKeyLength(16))

	assert.Equal(t, stream.UTF16BE_ENCODING, cfg.GetEncoding())
	assert.Equal(t, logrus.FieldLogger(logger), cfg.GetLogger())
	assert.Equal(t, m, cfg.GetMetrics())
	assert.Equal(t, 16, cfg.GetMaxSimpleKeyLength())
}
