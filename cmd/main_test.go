package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/okian/fairdraw/internal/adapters/http/api"
	"github.com/okian/fairdraw/internal/adapters/provider"
	app "github.com/okian/fairdraw/internal/app"
	"github.com/okian/fairdraw/internal/config"
	"github.com/okian/fairdraw/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainWiring(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatalf("logger init: %v", err)
	}

	convey.Convey("Given the main application", t, func() {
		convey.Convey("When loading configuration from the environment", func() {
			_ = os.Setenv("FAIRDRAW_ADDR", ":8080")
			_ = os.Setenv("FAIRDRAW_PROVIDER_BASE_URL", "https://draws.example.com")
			defer func() {
				_ = os.Unsetenv("FAIRDRAW_ADDR")
				_ = os.Unsetenv("FAIRDRAW_PROVIDER_BASE_URL")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ProviderBaseURL, convey.ShouldEqual, "https://draws.example.com")
			})
		})

		convey.Convey("When creating the service", func() {
			convey.Convey("Then it should be creatable with default options", func() {
				convey.So(app.New(), convey.ShouldNotBeNil)
			})

			convey.Convey("And with custom options", func() {
				svc := app.New(
					app.WithFetcher(provider.New(provider.WithBaseURL("https://draws.example.com"))),
					app.WithMaxParticipants(1000),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When registering routes on a mux", func() {
			svc := app.New()
			mux := http.NewServeMux()
			api.NewServer(svc, svc).Register(context.Background(), mux)

			convey.Convey("Then the health endpoint should respond", func() {
				rec := httptest.NewRecorder()
				mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
				convey.So(rec.Code, convey.ShouldEqual, http.StatusOK)
			})
		})
	})
}
