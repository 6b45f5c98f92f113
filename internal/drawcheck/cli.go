package drawcheck

import (
	"fmt"
	"os"

	"github.com/okian/fairdraw/pkg/logger"
)

// SetupLogging initializes the logger for the CLI.
func SetupLogging(verbose bool) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		return logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information for the draw check tool.
func ShowHelp() {
	os.Stdout.WriteString(`Fairdraw Check Tool
===================

Re-executes a draw and verifies that its result is reproducible.

Usage:
  go run cmd/drawcheck/main.go [options]

Options:
  -provider string
        Base URL of the draw data provider (default "http://localhost:9081")
  -link string
        Draw link to execute, e.g. https://example.com/giveaways/summer-draw
  -expect string
        Path to a previously published DrawResult JSON; the tool exits
        non-zero if the recomputed seed, digests, or winner index differ
  -output string
        Write the computed DrawResult JSON to this file
  -selftest
        Run the synthetic reproducibility check instead of a live draw
  -participants int
        Synthetic participant count for -selftest (default 100)
  -timeout duration
        HTTP request timeout (default 30s)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Recompute a live draw and print the result
  go run cmd/drawcheck/main.go -link https://example.com/giveaways/summer-draw

  # Verify a published result file
  go run cmd/drawcheck/main.go -link https://example.com/giveaways/summer-draw -expect result.json

  # Check pipeline determinism without a provider
  go run cmd/drawcheck/main.go -selftest -participants 5000
`)
}
