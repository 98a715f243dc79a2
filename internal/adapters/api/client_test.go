// internal/adapters/api/client_test.go
package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanmonodalex/partage-web/internal/adapters/api"
	"github.com/jeanmonodalex/partage-web/internal/core/domain"
	"github.com/jeanmonodalex/partage-web/test/helpers"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*api.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := api.NewClient(api.Config{
		BaseURL:     srv.URL,
		Timeout:     5 * time.Second,
		SearchLimit: 20,
	}, helpers.TestLogger())
	require.NoError(t, err)
	return client, srv
}

func TestNewClient_RejectsRelativeBaseURL(t *testing.T) {
	_, err := api.NewClient(api.Config{BaseURL: "localhost:8001"}, helpers.TestLogger())
	assert.Error(t, err)

	_, err = api.NewClient(api.Config{BaseURL: "/api"}, helpers.TestLogger())
	assert.Error(t, err)
}

func TestClient_SearchItems_SendsOnlyPopulatedFilters(t *testing.T) {
	var got url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/items", r.URL.Path)
		got = r.URL.Query()
		helpers.WriteItems(t, w)
	})

	filters := domain.FilterSet{FreeText: "vélo", Canton: "Vaud"}
	_, err := client.SearchItems(context.Background(), filters)
	require.NoError(t, err)

	assert.Equal(t, "vélo", got.Get(domain.ParamQuery))
	assert.Equal(t, "Vaud", got.Get(domain.ParamCanton))
	assert.Equal(t, "20", got.Get("limit"))
	_, hasCategory := got[domain.ParamCategory]
	_, hasPrice := got[domain.ParamMaxPrice]
	assert.False(t, hasCategory, "empty category must not be sent")
	assert.False(t, hasPrice, "absent price must not be sent")
}

func TestClient_SearchItems_SendsAllFiltersWhenSet(t *testing.T) {
	var got url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		helpers.WriteItems(t, w)
	})

	filters := domain.FilterSet{
		FreeText:       "tente",
		Canton:         "Genève",
		Category:       "Camping",
		MaxPricePerDay: decimal.RequireFromString("12.50"),
	}
	_, err := client.SearchItems(context.Background(), filters)
	require.NoError(t, err)

	assert.Equal(t, "tente", got.Get(domain.ParamQuery))
	assert.Equal(t, "Genève", got.Get(domain.ParamCanton))
	assert.Equal(t, "Camping", got.Get(domain.ParamCategory))
	assert.Equal(t, "12.5", got.Get(domain.ParamMaxPrice))
}

func TestClient_SearchItems_DecodesBackendResponse(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [{
			"id": "64b000000000000000000010",
			"titre": "Raclette à volonté",
			"prix_par_jour": 8.5,
			"frais_inscription": 5.0,
			"canton": "Valais",
			"ville": "Sion",
			"disponible": true,
			"proprietaire_nom": "Marc Favre",
			"date_creation": "2025-08-31T12:00:00.123456",
			"images": ["/uploads/raclette.jpg", "https://cdn.example.com/full.jpg"],
			"note_moyenne": 0
		}]}`))
	})

	items, err := client.SearchItems(context.Background(), domain.FilterSet{})
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Raclette à volonté", item.Title)
	assert.Equal(t, "8.5", item.PricePerDay.String())
	assert.Equal(t, "Sion, Valais", item.Location())
	assert.True(t, item.CreatedAt.Equal(time.Date(2025, 8, 31, 12, 0, 0, 123456000, time.UTC)))
	assert.True(t, item.Unrated())

	// Relative upload paths are resolved against the backend; absolute
	// URLs pass through untouched.
	require.Len(t, item.Images, 2)
	assert.Equal(t, srv.URL+"/uploads/raclette.jpg", item.Images[0])
	assert.Equal(t, "https://cdn.example.com/full.jpg", item.Images[1])
}

func TestClient_SearchItems_BackendError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSON(t, w, http.StatusServiceUnavailable,
			map[string]string{"detail": "Base de données indisponible"})
	})

	_, err := client.SearchItems(context.Background(), domain.FilterSet{})
	require.Error(t, err)

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Equal(t, "Base de données indisponible", apiErr.Detail)
}

func TestClient_GetItem_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/items/missing", r.URL.Path)
		helpers.WriteJSON(t, w, http.StatusNotFound,
			map[string]string{"detail": "Objet non trouvé"})
	})

	_, err := client.GetItem(context.Background(), "missing")

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestClient_Login_ReturnsAccessToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		helpers.WriteJSON(t, w, http.StatusOK,
			map[string]string{"access_token": "jwt-token", "token_type": "bearer"})
	})

	token, err := client.Login(context.Background(), domain.Credentials{
		Email:    "claire@example.ch",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestClient_Me_ForwardsBearerToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "64b000000000000000000001",
			"email": "claire@example.ch",
			"nom": "Dubois",
			"prenom": "Claire",
			"canton": "Vaud",
			"date_creation": "2025-01-15T08:00:00.000001"
		}`))
	})

	profile, err := client.Me(context.Background(), "jwt-token")
	require.NoError(t, err)
	assert.Equal(t, "Claire Dubois", profile.FullName())
	assert.True(t, profile.CreatedAt.Equal(time.Date(2025, 1, 15, 8, 0, 0, 1000, time.UTC)))
}

func TestClient_MyBookings_DecodesBackendResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/bookings/mes-reservations", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reservations": [{
			"id": "64b000000000000000000099",
			"item_id": "64b000000000000000000010",
			"item_titre": "Vélo de route",
			"date_debut": "2025-06-01T00:00:00",
			"date_fin": "2025-06-04T00:00:00",
			"prix_total": 46.5,
			"statut": "confirmee",
			"date_creation": "2025-05-30T18:45:12.123456"
		}]}`))
	})

	bookings, err := client.MyBookings(context.Background(), "jwt-token")
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	booking := bookings[0]
	assert.Equal(t, "Vélo de route", booking.ItemTitle)
	assert.True(t, booking.Start.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, booking.End.Equal(time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)))
	assert.True(t, booking.CreatedAt.Equal(time.Date(2025, 5, 30, 18, 45, 12, 123456000, time.UTC)))
	assert.Equal(t, "46.5", booking.TotalPrice.String())
	assert.Equal(t, domain.BookingConfirmed, booking.Status)
}

func TestClient_Conversations_DecodesBackendResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages": [{
			"id": "64b000000000000000000200",
			"expediteur_id": "64b000000000000000000001",
			"expediteur_nom": "Claire Dubois",
			"destinataire_id": "64b000000000000000000002",
			"contenu": "Le vélo est-il disponible ce week-end ?",
			"date_envoi": "2025-08-31T12:00:00.123456",
			"lu": false
		}]}`))
	})

	messages, err := client.Conversations(context.Background(), "jwt-token")
	require.NoError(t, err)
	require.Len(t, messages, 1)

	msg := messages[0]
	assert.Equal(t, "Claire Dubois", msg.SenderName)
	assert.True(t, msg.SentAt.Equal(time.Date(2025, 8, 31, 12, 0, 0, 123456000, time.UTC)))
	assert.False(t, msg.Read)
}

func TestClient_CreateBooking_DecodesTotalPrice(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		helpers.WriteJSON(t, w, http.StatusCreated, map[string]any{
			"id":         "64b000000000000000000099",
			"prix_total": 46.5,
		})
	})

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	booking, err := client.CreateBooking(context.Background(), "jwt-token", domain.BookingRequest{
		ItemID: "64b000000000000000000010",
		Start:  start,
		End:    end,
	})
	require.NoError(t, err)

	assert.Equal(t, "64b000000000000000000099", booking.ID)
	assert.Equal(t, "46.5", booking.TotalPrice.String())
	assert.Equal(t, domain.BookingPending, booking.Status)
}

func TestClient_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			helpers.WriteJSON(t, w, http.StatusOK, map[string]string{"status": "ok"})
		})
		assert.NoError(t, client.Health(context.Background()))
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		client, err := api.NewClient(api.Config{BaseURL: srv.URL}, helpers.TestLogger())
		require.NoError(t, err)

		err = client.Health(context.Background())
		assert.Error(t, err)

		var apiErr *api.APIError
		assert.False(t, errors.As(err, &apiErr), "transport failures are not API errors")
	})
}
