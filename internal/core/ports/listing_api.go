// internal/core/ports/listing_api.go
package ports

import (
	"context"

	"github.com/jeanmonodalex/partage-web/internal/core/domain"
)

// ListingAPI is the outbound port for the backend's item endpoints.
// Implemented by the HTTP adapter; the gateway never filters, sorts, or
// validates what comes back.
type ListingAPI interface {
	// SearchItems issues a single request whose parameters are exactly the
	// populated fields of the filter set.
	SearchItems(ctx context.Context, filters domain.FilterSet) ([]domain.ItemSummary, error)
	GetItem(ctx context.Context, id string) (*domain.ItemSummary, error)
	Cantons(ctx context.Context) ([]string, error)
	Health(ctx context.Context) error
}
