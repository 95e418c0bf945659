// Package main provides the neurosym CLI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

func main() {
	if err := rootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(stdout, stderr io.Writer) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "neurosym",
		Short: "Neural-symbolic reasoning over tensors",
		Long: `neurosym represents facts and relations as dense tensors and runs
fuzzy-logic inference as matrix operations.

Knowledge bases are defined in YAML:

  facts: [Socrates, Man, Mortal]
  relations:
    - {name: isA, from: Socrates, to: Man}
    - {name: isA, from: Man, to: Mortal, strength: 1.0}
  queries:
    - {fact: Socrates, chain: [isA, isA]}`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(stderr, logLevel))
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "neurosym %s\n", version)
			},
		},
		reasonCmd(),
		logicCmd(),
		matmulCmd(),
		snapshotCmd(),
	)

	return cmd
}

func newLogger(w io.Writer, logLevel string) *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
