package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/fairdraw/internal/drawcheck"
)

// Default configuration constants.
const (
	defaultProviderURL  = "http://localhost:9081"
	defaultParticipants = 100
	defaultTimeout      = 30 * time.Second
	defaultRunTimeout   = 5 * time.Minute
)

func main() {
	var (
		providerURL  = flag.String("provider", defaultProviderURL, "Base URL of the draw data provider")
		link         = flag.String("link", "", "Draw link to execute")
		expectFile   = flag.String("expect", "", "Previously published DrawResult JSON to verify against")
		outputFile   = flag.String("output", "", "Write the computed DrawResult JSON to this file")
		selfTest     = flag.Bool("selftest", false, "Run the synthetic reproducibility check instead of a live draw")
		participants = flag.Int("participants", defaultParticipants, "Synthetic participant count for -selftest")
		timeout      = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		drawcheck.ShowHelp()
		return
	}

	if err := drawcheck.SetupLogging(*verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &drawcheck.Config{
		ProviderURL:  *providerURL,
		Link:         *link,
		ExpectFile:   *expectFile,
		OutputFile:   *outputFile,
		SelfTest:     *selfTest,
		Participants: *participants,
		Timeout:      *timeout,
		Verbose:      *verbose,
	}

	if err := drawcheck.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Check failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
