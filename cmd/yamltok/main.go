// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This binary reads YAML from a file or stdin and prints the tokens the
// scanner produces, one per line, as text, JSON or YAML.

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/yamlcore/yamlscan"
)

var (
	version = "unversioned"
	commit  string
	date    string
)

// config holds the command line settings.
type config struct {
	json      bool
	yaml      bool
	positions bool
	encoding  string
	kinds     []string
	debug     bool
	file      string
}

func newParser(cfg *config) *flaggy.Parser {
	p := flaggy.NewParser("yamltok")
	p.Description = "Print the tokens of a YAML stream"
	p.AdditionalHelpAppend = "\nWith no file, or when file is -, read standard input."

	p.Bool(&cfg.json, "j", "json", "One JSON object per token")
	p.Bool(&cfg.yaml, "y", "yaml", "A YAML list of tokens")
	p.Bool(&cfg.positions, "p", "pos", "Include token positions")
	p.String(&cfg.encoding, "e", "encoding", "Input encoding: UTF-8, UTF-16LE, UTF-16BE, UTF-32LE or UTF-32BE")
	p.StringSlice(&cfg.kinds, "k", "kind", "Only print tokens of this kind, such as KEY_TOKEN")
	p.Bool(&cfg.debug, "d", "debug", "Log every token to stderr")
	p.AddPositionalValue(&cfg.file, "file", 1, false, "The YAML file to read")

	p.Version = fmt.Sprintf(
		"%s\nDate: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)
	return p
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run tokenizes the input named by args and writes the tokens to stdout.
// Tokens delivered before a scanning error are written before the error is
// returned.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cfg config
	if err := newParser(&cfg).ParseArgs(args); err != nil {
		return err
	}
	if cfg.json && cfg.yaml {
		return errors.New("--json and --yaml cannot be used together")
	}

	opts := []yamlscan.Option{yamlscan.WithLogger(newLogger(cfg.debug, stderr))}
	if cfg.encoding != "" {
		enc, ok := yamlscan.ParseEncoding(cfg.encoding)
		if !ok {
			return errors.Errorf("unknown encoding %q", cfg.encoding)
		}
		opts = append(opts, yamlscan.WithEncoding(enc))
	}

	kinds, err := parseKinds(cfg.kinds)
	if err != nil {
		return err
	}

	input := stdin
	if cfg.file != "" && cfg.file != "-" {
		f, err := os.Open(cfg.file)
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()
		input = f
	}

	var out tokenWriter
	switch {
	case cfg.json:
		out = newJSONWriter(stdout, cfg.positions)
	case cfg.yaml:
		out = newYAMLWriter(stdout, cfg.positions)
	default:
		out = newTextWriter(stdout, cfg.positions)
	}

	var scanErr error
	for tok, err := range yamlscan.NewScanner(input, opts...).All() {
		if err != nil {
			scanErr = err
			break
		}
		if len(kinds) > 0 && !lo.Contains(kinds, tok.Type) {
			continue
		}
		if err := out.Write(tok); err != nil {
			return errors.Wrap(err, "write token")
		}
	}
	if err := out.Flush(); err != nil {
		return errors.Wrap(err, "write tokens")
	}
	return scanErr
}

// parseKinds resolves token kind names, such as "KEY_TOKEN" or "KEY".
func parseKinds(names []string) ([]yamlscan.TokenType, error) {
	unknown := lo.Filter(names, func(name string, _ int) bool {
		_, ok := parseKind(name)
		return !ok
	})
	if len(unknown) > 0 {
		return nil, errors.Errorf("unknown token kind %q", unknown[0])
	}
	return lo.Uniq(lo.Map(names, func(name string, _ int) yamlscan.TokenType {
		kind, _ := parseKind(name)
		return kind
	})), nil
}

func parseKind(name string) (yamlscan.TokenType, bool) {
	if kind, ok := yamlscan.ParseTokenType(name); ok {
		return kind, true
	}
	return yamlscan.ParseTokenType(name + "_TOKEN")
}

// newLogger returns a logger writing to w. Without debug only errors are
// logged, and the scanner logs none.
func newLogger(debug bool, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logrus.ErrorLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
