// Package provider implements the HTTP client for the external draw data
// provider. The provider owns participant lists and draw metadata; this
// client only fetches and validates, it never retries (retry policy belongs
// to the caller).
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okian/fairdraw/internal/domain/model"
	"github.com/okian/fairdraw/pkg/metrics"
)

// Defaults for the provider client.
const (
	defaultTimeout      = 15 * time.Second
	maxSnapshotBodySize = 16 << 20 // 16 MiB cap on provider payloads
)

// Snapshot is one draw's frozen inputs as returned by the provider.
type Snapshot struct {
	Participants []model.Participant
	Meta         model.Metadata
}

// snapshotPayload mirrors the provider's JSON response.
type snapshotPayload struct {
	Participants    []model.Participant `json:"participants"`
	ClosedAt        string              `json:"closedAt"`
	MinParticipants int                 `json:"minParticipants"`
	Slug            string              `json:"slug"`
}

// Fetcher abstracts the data provider for the orchestrator.
type Fetcher interface {
	// Fetch returns the frozen inputs for slug, honoring ctx for
	// cancellation and deadline.
	Fetch(ctx context.Context, slug string) (Snapshot, error)
}

// Client fetches draw snapshots over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a provider client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch GETs {base}/draws/{slug} and decodes the snapshot. Transport
// failures, cancellation, and timeouts surface as ErrRequest; non-2xx
// responses as ErrStatus; structurally unusable bodies as ErrBadSnapshot.
func (c *Client) Fetch(ctx context.Context, slug string) (Snapshot, error) {
	start := time.Now()
	snap, err := c.fetch(ctx, slug)
	metrics.ObserveProviderRequest(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordProviderError()
	}
	return snap, err
}

func (c *Client) fetch(ctx context.Context, slug string) (Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/draws/"+slug, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Snapshot{}, fmt.Errorf("%w: %s for slug %q", ErrStatus, resp.Status, slug)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSnapshotBodySize))
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: reading body: %v", ErrRequest, err)
	}

	var payload snapshotPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	return payload.snapshot()
}

// snapshot validates the payload and converts it to domain types.
func (p snapshotPayload) snapshot() (Snapshot, error) {
	switch {
	case len(p.Participants) == 0:
		return Snapshot{}, fmt.Errorf("%w: no participants", ErrBadSnapshot)
	case p.ClosedAt == "":
		return Snapshot{}, fmt.Errorf("%w: no closedAt", ErrBadSnapshot)
	case p.MinParticipants < 1:
		return Snapshot{}, fmt.Errorf("%w: minParticipants %d", ErrBadSnapshot, p.MinParticipants)
	case p.Slug == "":
		return Snapshot{}, fmt.Errorf("%w: no slug", ErrBadSnapshot)
	}

	// time.Parse accepts fractional seconds in the input whether or not the
	// layout carries them, so RFC 3339 covers the millisecond wire form.
	closedAt, err := time.Parse(time.RFC3339, p.ClosedAt)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: closedAt %q: %v", ErrBadSnapshot, p.ClosedAt, err)
	}

	return Snapshot{
		Participants: p.Participants,
		Meta: model.Metadata{
			Slug:            p.Slug,
			ClosedAt:        closedAt,
			MinParticipants: p.MinParticipants,
		},
	}, nil
}
