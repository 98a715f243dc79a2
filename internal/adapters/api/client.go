// internal/adapters/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jeanmonodalex/partage-web/internal/core/domain"
	"github.com/jeanmonodalex/partage-web/internal/core/ports"
)

// Config holds backend client configuration.
type Config struct {
	// BaseURL is the backend root, e.g. "http://localhost:8001".
	BaseURL string
	Timeout time.Duration
	// SearchLimit caps the number of items requested per search.
	SearchLimit int
}

// Client is the HTTP adapter for the backend REST API. It owns no business
// rules: it maps filter sets onto query parameters, forwards bearer tokens,
// and decodes the backend's wire format.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	limit   int
	logger  *slog.Logger
}

// Static port assertions.
var (
	_ ports.ListingAPI = (*Client)(nil)
	_ ports.AccountAPI = (*Client)(nil)
	_ ports.BookingAPI = (*Client)(nil)
	_ ports.MessageAPI = (*Client)(nil)
)

// NewClient creates a backend API client.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("backend base URL %q must be absolute", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	limit := cfg.SearchLimit
	if limit <= 0 {
		limit = 20
	}

	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
		limit:   limit,
		logger:  logger.With(slog.String("adapter", "backend_api")),
	}, nil
}

// APIError is a non-2xx backend response.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend: %s (status %d)", e.Detail, e.Status)
}

// SearchItems implements ports.ListingAPI. The outbound parameters are
// exactly the populated filter fields plus the configured limit.
func (c *Client) SearchItems(ctx context.Context, filters domain.FilterSet) ([]domain.ItemSummary, error) {
	params := filters.QueryValues()
	params.Set("limit", strconv.Itoa(c.limit))

	var resp struct {
		Items []domain.ItemSummary `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/items?"+params.Encode(), "", nil, &resp); err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}

	for i := range resp.Items {
		c.resolveImages(&resp.Items[i])
	}
	return resp.Items, nil
}

// GetItem implements ports.ListingAPI.
func (c *Client) GetItem(ctx context.Context, id string) (*domain.ItemSummary, error) {
	var item domain.ItemSummary
	if err := c.do(ctx, http.MethodGet, "/api/items/"+url.PathEscape(id), "", nil, &item); err != nil {
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}
	c.resolveImages(&item)
	return &item, nil
}

// Cantons implements ports.ListingAPI.
func (c *Client) Cantons(ctx context.Context) ([]string, error) {
	var resp struct {
		Cantons []string `json:"cantons"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/cantons", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("list cantons: %w", err)
	}
	return resp.Cantons, nil
}

// Health implements ports.ListingAPI.
func (c *Client) Health(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/health", "", nil, &resp); err != nil {
		return fmt.Errorf("backend health: %w", err)
	}
	return nil
}

// Register implements ports.AccountAPI.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (string, error) {
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", reg, &resp); err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	return resp.AccessToken, nil
}

// Login implements ports.AccountAPI.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", creds, &resp); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return resp.AccessToken, nil
}

// Me implements ports.AccountAPI.
func (c *Client) Me(ctx context.Context, token string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", token, nil, &profile); err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	return &profile, nil
}

// CreateBooking implements ports.BookingAPI. The backend computes the total
// price; the returned booking carries only what the backend echoes back.
func (c *Client) CreateBooking(ctx context.Context, token string, req domain.BookingRequest) (*domain.Booking, error) {
	var resp struct {
		ID         string          `json:"id"`
		TotalPrice json.RawMessage `json:"prix_total"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/bookings", token, req, &resp); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	booking := &domain.Booking{
		ID:     resp.ID,
		ItemID: req.ItemID,
		Start:  domain.Timestamp{Time: req.Start},
		End:    domain.Timestamp{Time: req.End},
		Status: domain.BookingPending,
	}
	if len(resp.TotalPrice) > 0 {
		if err := booking.TotalPrice.UnmarshalJSON(resp.TotalPrice); err != nil {
			return nil, fmt.Errorf("create booking: decode total price: %w", err)
		}
	}
	return booking, nil
}

// MyBookings implements ports.BookingAPI.
func (c *Client) MyBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	var resp struct {
		Reservations []domain.Booking `json:"reservations"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/bookings/mes-reservations", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return resp.Reservations, nil
}

// SendMessage implements ports.MessageAPI.
func (c *Client) SendMessage(ctx context.Context, token string, req domain.MessageRequest) error {
	if err := c.do(ctx, http.MethodPost, "/api/messages", token, req, nil); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// Conversations implements ports.MessageAPI.
func (c *Client) Conversations(ctx context.Context, token string) ([]domain.Message, error) {
	var resp struct {
		Messages []domain.Message `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/messages/conversations", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return resp.Messages, nil
}

// do performs one backend round trip: JSON in, JSON out, bearer token when
// present, non-2xx mapped to *APIError with the backend's detail message.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	ref, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("invalid request path %q: %w", path, err)
	}
	endpoint := c.baseURL.ResolveReference(ref).String()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "backend call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil {
			apiErr.Detail = detail.Detail
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// resolveImages rewrites relative image paths (the backend returns
// "/uploads/...") against the backend base URL so templates can use them
// directly.
func (c *Client) resolveImages(item *domain.ItemSummary) {
	for i, img := range item.Images {
		u, err := url.Parse(img)
		if err != nil || u.IsAbs() {
			continue
		}
		item.Images[i] = c.baseURL.ResolveReference(u).String()
	}
}
