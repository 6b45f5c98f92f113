// Package service provides the draw orchestrator that sequences link
// parsing, the data-provider fetch, and the pure selection pipeline.
package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/okian/fairdraw/internal/adapters/provider"
	"github.com/okian/fairdraw/internal/domain/draw"
	"github.com/okian/fairdraw/internal/domain/model"
	"github.com/okian/fairdraw/pkg/logger"
	"github.com/okian/fairdraw/pkg/metrics"
)

// Service runs draws. It holds no per-draw state: concurrent RunDraw calls
// are fully independent, each owning its participants, seed, and chain.
type Service struct {
	fetcher         provider.Fetcher
	logger          logger.Logger
	defaultSink     draw.ProgressFunc
	maxParticipants int

	drawsRun    atomic.Int64
	drawsFailed atomic.Int64
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFetcher sets the data-provider client.
func WithFetcher(f provider.Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithProgressSink sets a default sink used when RunDraw is called with a
// nil onStep.
func WithProgressSink(sink draw.ProgressFunc) Option {
	return func(s *Service) {
		s.defaultSink = sink
	}
}

// WithMaxParticipants caps the accepted participant count per draw; zero
// means no cap. Oversized provider payloads fail as invalid input.
func WithMaxParticipants(limit int) Option {
	return func(s *Service) {
		if limit >= 0 {
			s.maxParticipants = limit
		}
	}
}

// New constructs a Service.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// RunDraw executes one draw: extract the slug from drawLink, fetch the
// frozen inputs, run the pure pipeline, assemble the result. onStep receives
// an ordered sequence of progress strings, including one final failure
// notification when the draw errors; it never influences the result. Every
// returned error carries one of the enumerated draw kinds.
func (s *Service) RunDraw(ctx context.Context, drawLink string, onStep draw.ProgressFunc) (model.Result, error) {
	if onStep == nil {
		onStep = s.defaultSink
	}
	start := time.Now()

	result, err := s.runDraw(ctx, drawLink, onStep)
	metrics.ObserveDrawDuration(float64(time.Since(start).Milliseconds()))
	if err != nil {
		err = draw.Classify(err)
		s.drawsFailed.Add(1)
		onStep.Emit("draw failed: " + err.Error())
		metrics.RecordDrawFailure(draw.CodeOf(err))
		s.logger.Error(ctx, "draw failed",
			logger.String("link", drawLink),
			logger.String("code", draw.CodeOf(err)),
			logger.Error(err),
		)
		return model.Result{}, err
	}

	s.drawsRun.Add(1)
	metrics.RecordDraw()
	metrics.ObserveParticipants(result.TotalParticipants)
	s.logger.Info(ctx, "draw complete",
		logger.String("link", drawLink),
		logger.Int("winnerIndex", result.WinnerIndex),
		logger.Int("participants", result.TotalParticipants),
	)
	return result, nil
}

func (s *Service) runDraw(ctx context.Context, drawLink string, onStep draw.ProgressFunc) (model.Result, error) {
	onStep.Emit("resolving draw link")
	slug, err := ExtractSlug(drawLink)
	if err != nil {
		return model.Result{}, err
	}

	if s.fetcher == nil {
		return model.Result{}, fmt.Errorf("%w: no data provider configured", draw.ErrAPI)
	}

	onStep.Emit("fetching participants for " + slug)
	snap, err := s.fetcher.Fetch(ctx, slug)
	if err != nil {
		return model.Result{}, fmt.Errorf("%w: %v", draw.ErrAPI, err)
	}
	if s.maxParticipants > 0 && len(snap.Participants) > s.maxParticipants {
		return model.Result{}, fmt.Errorf("%w: %d participants exceeds cap %d",
			draw.ErrInvalidInput, len(snap.Participants), s.maxParticipants)
	}

	// Inputs are frozen here; the pipeline below is pure.
	return draw.Run(snap.Participants, snap.Meta, onStep)
}

// ExtractSlug returns the draw identifier from a draw link: the last
// non-empty path segment of the URL. Links without a usable segment fail
// with the InvalidLink kind.
func ExtractSlug(drawLink string) (string, error) {
	if strings.TrimSpace(drawLink) == "" {
		return "", fmt.Errorf("%w: empty link", draw.ErrInvalidLink)
	}
	u, err := url.Parse(drawLink)
	if err != nil {
		return "", fmt.Errorf("%w: %v", draw.ErrInvalidLink, err)
	}

	segments := strings.Split(u.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if seg := strings.TrimSpace(segments[i]); seg != "" {
			return seg, nil
		}
	}
	return "", fmt.Errorf("%w: no identifier segment in %q", draw.ErrInvalidLink, drawLink)
}

// GetStats returns service counters for the stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"drawsRun":        s.drawsRun.Load(),
		"drawsFailed":     s.drawsFailed.Load(),
		"maxParticipants": s.maxParticipants,
	}
}
