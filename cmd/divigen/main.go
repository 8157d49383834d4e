// Package main provides the CLI entrypoint for divigen.
//
// divigen is a codegen tool that:
//   - Loads declarative YAML schemas of record types with per-field divide strategies
//   - Resolves each field to one of the recurse/clone/copy/default strategies
//   - Generates Divisible (and optionally ParallelIterator) implementations
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "divigen",
	Short: "Divisible-record code generator",
	Long:  "divigen generates binary-split and parallel-iterator capabilities for annotated record schemas",
}

var verbose bool

func main() {
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(checkCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the CLI logger. Generation is a build step, so the
// human-oriented development encoder is the right default.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return cfg.Build()
}
