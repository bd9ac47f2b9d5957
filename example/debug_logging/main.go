// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Example: Debug Logging traces every delivered token through logrus.

package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/yamlcore/yamlscan"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.DebugLevel)
	log.Formatter = &logrus.JSONFormatter{}

	entry := log.WithField("file", "inline.yaml")
	if _, err := yamlscan.Tokenize([]byte("? complex\n: !!str value\n"), yamlscan.WithLogger(entry)); err != nil {
		entry.WithError(err).Error("tokenize failed")
		os.Exit(1)
	}
}
