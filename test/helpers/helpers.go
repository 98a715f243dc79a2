// test/helpers/helpers.go
package helpers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jeanmonodalex/partage-web/internal/core/domain"
)

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// TestItem builds a populated item summary the way the backend returns one.
func TestItem(id, title string) domain.ItemSummary {
	return domain.ItemSummary{
		ID:              id,
		Title:           title,
		Description:     "En très bon état, disponible le week-end.",
		Category:        domain.CategorySport,
		PricePerDay:     decimal.NewFromFloat(15.50),
		RegistrationFee: domain.RegistrationFee,
		Canton:          "Vaud",
		City:            "Lausanne",
		Available:       true,
		OwnerID:         "64b000000000000000000001",
		OwnerName:       "Claire Dubois",
		CreatedAt:       domain.Timestamp{Time: time.Date(2025, 5, 12, 9, 30, 0, 0, time.UTC)},
		Images:          []string{"/uploads/test.jpg"},
		AverageRating:   4.5,
	}
}

// WriteItems writes a backend-shaped /api/items response.
func WriteItems(t *testing.T, w http.ResponseWriter, items ...domain.ItemSummary) {
	t.Helper()
	if items == nil {
		items = []domain.ItemSummary{}
	}
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{"items": items})
	require.NoError(t, err)
}

// WriteJSON writes an arbitrary JSON response body.
func WriteJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}
