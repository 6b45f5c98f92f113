package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/fairdraw/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"FAIRDRAW_CONFIG",
		"FAIRDRAW_LOG_LEVEL",
		"FAIRDRAW_ADDR",
		"FAIRDRAW_PROVIDER_BASE_URL",
		"FAIRDRAW_PROVIDER_TIMEOUT_MS",
		"FAIRDRAW_MAX_PARTICIPANTS",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.ProviderBaseURL, convey.ShouldEqual, "http://localhost:9081")
				convey.So(cfg.ProviderTimeoutMS, convey.ShouldEqual, 15_000)
				convey.So(cfg.MaxParticipants, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("FAIRDRAW_ADDR", ":8080")
			_ = os.Setenv("FAIRDRAW_PROVIDER_BASE_URL", "https://draws.example.com")
			_ = os.Setenv("FAIRDRAW_PROVIDER_TIMEOUT_MS", "5000")
			_ = os.Setenv("FAIRDRAW_MAX_PARTICIPANTS", "100000")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ProviderBaseURL, convey.ShouldEqual, "https://draws.example.com")
				convey.So(cfg.ProviderTimeoutMS, convey.ShouldEqual, 5000)
				convey.So(cfg.MaxParticipants, convey.ShouldEqual, 100000)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars()

			dir := t.TempDir()
			path := filepath.Join(dir, "fairdraw.yaml")
			yamlBody := "addr: \":7070\"\nlog_level: debug\nprovider_base_url: https://file.example.com\n"
			convey.So(os.WriteFile(path, []byte(yamlBody), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("FAIRDRAW_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values should override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.ProviderBaseURL, convey.ShouldEqual, "https://file.example.com")
			})

			convey.Convey("And env should override the file", func() {
				_ = os.Setenv("FAIRDRAW_ADDR", ":6060")

				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When the config file is missing", func() {
			clearConfigEnvVars()
			_ = os.Setenv("FAIRDRAW_CONFIG", "/nonexistent/fairdraw.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then it should fail with ErrLoadConfig", func() {
				convey.So(err, convey.ShouldWrap, config.ErrLoadConfig)
			})
		})

		convey.Convey("When a value is invalid", func() {
			clearConfigEnvVars()
			_ = os.Setenv("FAIRDRAW_PROVIDER_TIMEOUT_MS", "-1")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then it should fail with ErrInvalidConfig", func() {
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
			})
		})
	})
}
