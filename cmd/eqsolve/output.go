// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"gopkg.in/yaml.v3"
)

// fileResult is the report for one system file.
type fileResult struct {
	File     string   `yaml:"file"`
	Name     string   `yaml:"name"`
	EqCount  int      `yaml:"eq_count"`
	Outcome  string   `yaml:"outcome,omitempty"`
	Solution []string `yaml:"solution,omitempty"`
	Error    string   `yaml:"error,omitempty"`
}

// writeResults renders results in the requested format.
func writeResults(w io.Writer, format string, results []fileResult) error {
	if format == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encode results: %w", err)
		}
		return enc.Close()
	}

	for _, r := range results {
		if r.Error != "" {
			if _, err := fmt.Fprintf(w, "%s: error: %s\n", r.File, r.Error); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s (%s): %s\n", r.Name, r.File, r.Outcome); err != nil {
			return err
		}
		for i, x := range r.Solution {
			if _, err := fmt.Fprintf(w, "  x%d = %s\n", i+1, x); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeMetrics dumps every metric family of g in the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
