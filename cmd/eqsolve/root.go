// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// Persistent flag names.
const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
)

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "eqsolve",
		Short: "Solve square linear systems with exact fractions",
		Long: `eqsolve reads systems of N linear equations in N unknowns from YAML files
and solves them with exact rational arithmetic.

Each file is solved by its own solver; files are processed concurrently.
Outcomes are: solved, no_solutions, infinite_solutions, overflow, memory_error.

Examples:
  eqsolve solve system.yaml
  eqsolve solve a.yaml b.yaml --strategy signflip --output yaml
  eqsolve solve big.yaml --max-cells 100000 --metrics`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String(flagConfig, "", "path to a YAML config file")
	root.PersistentFlags().String(flagLogLevel, "", "log level: debug, info, warn, error")

	root.AddCommand(newSolveCmd(), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the eqsolve version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "eqsolve %s\n", version)
		},
	}
}

// newLogger builds the text logger used by every command.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
