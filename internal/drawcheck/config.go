package drawcheck

import "time"

// Config holds configuration for one verification run.
type Config struct {
	ProviderURL  string        // Base URL of the draw data provider
	Link         string        // Draw link to execute
	ExpectFile   string        // Previously published DrawResult to compare against
	OutputFile   string        // Where to write the computed DrawResult (default stdout only)
	SelfTest     bool          // Run the synthetic reproducibility check instead of a live draw
	Participants int           // Synthetic participant count for self-test
	Timeout      time.Duration // HTTP request timeout
	Verbose      bool          // Enable verbose logging
}
