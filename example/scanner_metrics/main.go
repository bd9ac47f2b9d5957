// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Example: Scanner Metrics shares one set of Prometheus collectors between
// several scanners and prints what they counted.

package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yamlcore/yamlscan"
)

func main() {
	reg := prometheus.NewRegistry()
	m := yamlscan.NewMetrics(reg)

	docs := []string{
		"a: 1\nb: [2, 3]\n",
		"- x\n- y\n",
		"key: [unclosed}\n",
	}
	for _, doc := range docs {
		if _, err := yamlscan.Tokenize([]byte(doc), yamlscan.WithMetrics(m)); err != nil {
			fmt.Println("error:", err)
		}
	}

	families, err := reg.Gather()
	if err != nil {
		panic(err)
	}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			labels := ""
			for _, lp := range metric.GetLabel() {
				labels += fmt.Sprintf("{%s=%q}", lp.GetName(), lp.GetValue())
			}
			fmt.Printf("%s%s %v\n", mf.GetName(), labels, metric.GetCounter().GetValue())
		}
	}
}
