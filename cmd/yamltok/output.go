// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/yamlcore/yamlscan"
)

// tokenInfo is the printed form of a token.
type tokenInfo struct {
	Token  string   `json:"token" yaml:"token"`
	Value  string   `json:"value,omitempty" yaml:"value,omitempty"`
	Params []string `json:"params,omitempty" yaml:"params,omitempty,flow"`
	Tag    string   `json:"tag,omitempty" yaml:"tag,omitempty"`
	Style  string   `json:"style,omitempty" yaml:"style,omitempty"`
	Pos    string   `json:"pos,omitempty" yaml:"pos,omitempty"`
}

func newTokenInfo(tok yamlscan.Token, positions bool) tokenInfo {
	info := tokenInfo{
		Token:  strings.TrimSuffix(tok.Type.String(), "_TOKEN"),
		Value:  tok.Value,
		Params: tok.Params,
	}
	switch tok.Type {
	case yamlscan.TAG_TOKEN:
		info.Tag = strings.TrimSuffix(tok.Tag.String(), "_TAG")
	case yamlscan.PLAIN_SCALAR_TOKEN, yamlscan.QUOTED_SCALAR_TOKEN:
		info.Style = strings.TrimSuffix(tok.Style.String(), "_SCALAR_STYLE")
	}
	if positions {
		info.Pos = fmt.Sprintf("%d;%d", tok.Mark.Line+1, tok.Mark.Column+1)
	}
	return info
}

// tokenWriter prints tokens. Flush must be called after the last token.
type tokenWriter interface {
	Write(tok yamlscan.Token) error
	Flush() error
}

// textWriter prints one token per line.
type textWriter struct {
	w         io.Writer
	positions bool
}

func newTextWriter(w io.Writer, positions bool) *textWriter {
	return &textWriter{w: w, positions: positions}
}

func (t *textWriter) Write(tok yamlscan.Token) error {
	info := newTokenInfo(tok, t.positions)

	var b strings.Builder
	if info.Pos != "" {
		b.WriteString(info.Pos)
		b.WriteByte(' ')
	}
	b.WriteString(info.Token)
	if info.Tag != "" {
		b.WriteString(" " + info.Tag)
	}
	if info.Style != "" {
		b.WriteString(" " + info.Style)
	}
	if info.Value != "" || info.Style != "" {
		b.WriteString(" " + strconv.Quote(info.Value))
	}
	for _, p := range info.Params {
		b.WriteString(" " + strconv.Quote(p))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(t.w, b.String())
	return err
}

func (t *textWriter) Flush() error { return nil }

var json = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
}.Froze()

// jsonWriter prints one JSON object per line.
type jsonWriter struct {
	enc       *jsoniter.Encoder
	positions bool
}

func newJSONWriter(w io.Writer, positions bool) *jsonWriter {
	return &jsonWriter{enc: json.NewEncoder(w), positions: positions}
}

func (j *jsonWriter) Write(tok yamlscan.Token) error {
	return j.enc.Encode(newTokenInfo(tok, j.positions))
}

func (j *jsonWriter) Flush() error { return nil }

// yamlWriter collects the tokens and prints them as one YAML sequence.
type yamlWriter struct {
	w         io.Writer
	positions bool
	tokens    []tokenInfo
}

func newYAMLWriter(w io.Writer, positions bool) *yamlWriter {
	return &yamlWriter{w: w, positions: positions}
}

func (y *yamlWriter) Write(tok yamlscan.Token) error {
	y.tokens = append(y.tokens, newTokenInfo(tok, y.positions))
	return nil
}

func (y *yamlWriter) Flush() error {
	if len(y.tokens) == 0 {
		return nil
	}
	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(2)
	if err := enc.Encode(y.tokens); err != nil {
		return err
	}
	return enc.Close()
}
