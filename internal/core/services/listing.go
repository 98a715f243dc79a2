// internal/core/services/listing.go
package services

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/jeanmonodalex/partage-web/internal/core/domain"
	"github.com/jeanmonodalex/partage-web/internal/core/ports"
)

// ListingState tracks where the fetch cycle currently stands.
type ListingState string

const (
	StateIdle    ListingState = "idle"
	StateLoading ListingState = "loading"
	StateLoaded  ListingState = "loaded"
	StateFailed  ListingState = "failed"
)

// ListingResult is the renderable outcome of the current fetch cycle.
// Items are replaced wholesale on success and left untouched on failure,
// so a failed refresh keeps showing the previous results. Err carries the
// last failure so the renderer can surface it instead of swallowing it.
type ListingResult struct {
	Items   []domain.ItemSummary
	Filters domain.FilterSet
	Loading bool
	State   ListingState
	Err     error
}

// Empty reports whether a settled result has nothing to show.
func (r ListingResult) Empty() bool {
	return !r.Loading && len(r.Items) == 0
}

// ListingService drives the search result lifecycle: it translates a
// filter set into a single backend request and exposes loading, result
// and error state.
//
// Overlapping fetches are allowed. Each call takes a monotonically
// increasing token and only the response matching the latest issued token
// is applied, so "last issued wins" holds regardless of resolution order.
type ListingService struct {
	api    ports.ListingAPI
	logger *slog.Logger

	// lifetime governs in-flight requests; Close cancels it so a pending
	// request cannot write state after teardown.
	lifetime context.Context
	cancel   context.CancelFunc

	token atomic.Uint64

	mu     sync.Mutex
	result ListingResult
}

// NewListingService creates a listing service around the given backend port.
func NewListingService(api ports.ListingAPI, logger *slog.Logger) *ListingService {
	ctx, cancel := context.WithCancel(context.Background())
	return &ListingService{
		api:      api,
		logger:   logger.With(slog.String("service", "listing")),
		lifetime: ctx,
		cancel:   cancel,
		result:   ListingResult{State: StateIdle},
	}
}

// Fetch issues one backend request for the given filter set and returns the
// settled result. Loading is true from before the request is issued until
// it settles; previous items are preserved until replaced. A response that
// lost the token race is discarded without touching state.
func (s *ListingService) Fetch(ctx context.Context, filters domain.FilterSet) ListingResult {
	token := s.token.Add(1)

	s.mu.Lock()
	s.result.Loading = true
	s.result.State = StateLoading
	s.result.Filters = filters
	s.result.Err = nil
	s.mu.Unlock()

	// The request stops when either the caller's context or the service's
	// lifetime ends.
	reqCtx, cancelReq := context.WithCancel(ctx)
	defer cancelReq()
	stop := context.AfterFunc(s.lifetime, cancelReq)
	defer stop()

	items, err := s.api.SearchItems(reqCtx, filters)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.token.Load() {
		s.logger.DebugContext(ctx, "discarding stale search response",
			slog.Uint64("token", token),
			slog.Uint64("latest", s.token.Load()))
		return s.result
	}

	s.result.Loading = false
	if err != nil {
		s.result.State = StateFailed
		s.result.Err = err
		s.logger.ErrorContext(ctx, "search request failed",
			slog.String("filters", filters.Encode()),
			slog.String("error", err.Error()))
		return s.result
	}

	s.result.State = StateLoaded
	s.result.Items = items
	s.logger.InfoContext(ctx, "search completed",
		slog.String("filters", filters.Encode()),
		slog.Int("items", len(items)))
	return s.result
}

// Snapshot returns the current result. The item slice is shared and must be
// treated as read-only; it is only ever replaced, never mutated in place.
func (s *ListingService) Snapshot() ListingResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Close aborts any in-flight request. Their responses are discarded.
func (s *ListingService) Close() {
	s.cancel()
}
