// SPDX-License-Identifier: MIT

// Command eqsolve solves linear systems described in YAML files.
//
// Usage:
//
//	eqsolve solve FILE... [--strategy subtract|signflip] [--max-cells N]
//	                      [--workers N] [--output text|yaml] [--metrics]
//	                      [--trace] [--config PATH] [--log-level LEVEL]
//	eqsolve version
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
