// Package drawcheck re-executes draws and verifies their results against
// published ones. Any third party can run it to confirm a winner was
// selected by the published participant list and closing time, which is the
// reproducibility guarantee the pipeline exists for.
package drawcheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/okian/fairdraw/internal/adapters/provider"
	app "github.com/okian/fairdraw/internal/app"
	"github.com/okian/fairdraw/internal/domain/model"
	"github.com/okian/fairdraw/pkg/logger"
)

// File permission constants.
const (
	resultFilePermission = 0600
)

// Run executes one verification according to config.
func Run(ctx context.Context, config *Config) error {
	if config.SelfTest {
		return runSelfTest(ctx, config)
	}
	return runLive(ctx, config)
}

// runLive fetches the draw behind config.Link, re-executes the pipeline,
// and optionally compares against a published result.
func runLive(ctx context.Context, config *Config) error {
	if config.Link == "" {
		return errors.New("a -link is required unless -selftest is set")
	}

	log := logger.Get()
	log.Info(ctx, "recomputing draw",
		logger.String("link", config.Link),
		logger.String("provider", config.ProviderURL),
	)

	fetcher := provider.New(
		provider.WithBaseURL(config.ProviderURL),
		provider.WithTimeout(config.Timeout),
	)
	svc := app.New(app.WithLogger(log), app.WithFetcher(fetcher))

	result, err := svc.RunDraw(ctx, config.Link, func(step string) {
		log.Debug(ctx, "draw progress", logger.String("step", step))
	})
	if err != nil {
		return fmt.Errorf("draw execution failed: %w", err)
	}

	if err := emitResult(config, result); err != nil {
		return err
	}

	if config.ExpectFile == "" {
		return nil
	}

	expected, err := loadExpected(config.ExpectFile)
	if err != nil {
		return err
	}
	mismatches := Compare(result, expected)
	if len(mismatches) > 0 {
		for _, m := range mismatches {
			log.Error(ctx, "result mismatch", logger.String("field", m))
		}
		return fmt.Errorf("recomputed result differs from %s in %d field(s)", config.ExpectFile, len(mismatches))
	}

	log.Info(ctx, "published result verified",
		logger.String("expect", config.ExpectFile),
		logger.Int("winnerIndex", result.WinnerIndex),
	)
	return nil
}

// emitResult prints the DrawResult and optionally writes it to a file.
func emitResult(config *Config, result model.Result) error {
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	os.Stdout.Write(append(encoded, '\n'))

	if config.OutputFile != "" {
		if err := os.WriteFile(config.OutputFile, encoded, resultFilePermission); err != nil {
			return fmt.Errorf("failed to write result file: %w", err)
		}
	}
	return nil
}

// loadExpected reads a previously published DrawResult.
func loadExpected(path string) (model.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to read expected result: %w", err)
	}
	var expected model.Result
	if err := json.Unmarshal(data, &expected); err != nil {
		return model.Result{}, fmt.Errorf("failed to decode expected result: %w", err)
	}
	return expected, nil
}
