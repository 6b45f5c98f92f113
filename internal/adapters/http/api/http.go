// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/fairdraw/internal/domain/draw"
	"github.com/okian/fairdraw/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the orchestrator implementation.
type Dependencies interface {
	// RunDraw executes one draw from a draw link, streaming progress
	// strings into onStep.
	RunDraw(ctx context.Context, drawLink string, onStep draw.ProgressFunc) (model.Result, error)
}

// Server wires HTTP routes for the draw API.
type Server struct {
	drawsHandler  *DrawsHandler
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		drawsHandler:  NewDrawsHandler(deps),
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/draws", MetricsMiddleware(s.drawsHandler.HandleRunDraw, "draws"))
}
