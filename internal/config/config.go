// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load() layers defaults, optional file, and environment variables.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ProviderBaseURL is the base URL of the draw data provider.
	ProviderBaseURL string `koanf:"provider_base_url"`

	// ProviderTimeoutMS bounds each data provider fetch.
	ProviderTimeoutMS int `koanf:"provider_timeout_ms"`

	// MaxParticipants caps the participant count accepted per draw.
	// Zero disables the cap.
	MaxParticipants int `koanf:"max_participants"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		ProviderBaseURL:   "http://localhost:9081",
		ProviderTimeoutMS: 15_000,
		MaxParticipants:   0,
	}
}
