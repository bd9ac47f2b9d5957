// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Example: Token Stream pulls tokens one at a time with Peek and Pop.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/yamlcore/yamlscan"
)

func main() {
	yamlData := `%YAML 1.2
---
name: myapp
tags: [web, api]
description: >
  A folded
  description.
`

	s := yamlscan.NewScanner(strings.NewReader(yamlData))
	for {
		tok, err := s.Peek()
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}

		fmt.Printf("%-22s %s", tok.Type, tok.Mark)
		if tok.Value != "" {
			fmt.Printf(" %q", tok.Value)
		}
		fmt.Println()

		if err := s.Pop(); err != nil {
			panic(err)
		}
	}
}
