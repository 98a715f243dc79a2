// internal/web/booking.go
package web

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jeanmonodalex/partage-web/internal/core/domain"
)

// bookingsPage is the template data for the reservations view.
type bookingsPage struct {
	Bookings  []domain.Booking
	User      *domain.UserProfile
	Error     string
	Created   *domain.Booking
	ActiveNav string
}

// handleMyBookings handles GET /bookings.
func (s *Server) handleMyBookings(w http.ResponseWriter, r *http.Request) {
	token, ok := s.requireToken(w, r)
	if !ok {
		return
	}

	page := bookingsPage{User: s.currentUser(r), ActiveNav: "bookings"}

	bookings, err := s.bookings.MyBookings(r.Context(), token)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "bookings fetch failed",
			slog.String("error", err.Error()))
		page.Error = "Impossible de charger vos réservations: " + userMessage(err)
	}
	page.Bookings = bookings

	s.renderPage(w, page, "base.html", "pages/bookings.html")
}

// handleCreateBooking handles POST /bookings from the item detail page.
func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	token, ok := s.requireToken(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Formulaire invalide", http.StatusBadRequest)
		return
	}

	itemID := r.PostFormValue("item_id")
	start, errStart := time.Parse("2006-01-02", r.PostFormValue("date_debut"))
	end, errEnd := time.Parse("2006-01-02", r.PostFormValue("date_fin"))
	if itemID == "" || errStart != nil || errEnd != nil || !end.After(start) {
		http.Error(w, "Dates invalides", http.StatusBadRequest)
		return
	}

	req := domain.BookingRequest{
		ItemID:  itemID,
		Start:   start,
		End:     end,
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}

	booking, err := s.bookings.CreateBooking(r.Context(), token, req)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "booking creation failed",
			slog.String("item_id", itemID),
			slog.String("error", err.Error()))
		w.WriteHeader(http.StatusBadRequest)
		s.renderPage(w, bookingsPage{
			User:      s.currentUser(r),
			Error:     "Réservation impossible: " + userMessage(err),
			ActiveNav: "bookings",
		}, "base.html", "pages/bookings.html")
		return
	}

	s.logger.InfoContext(r.Context(), "booking created",
		slog.String("booking_id", booking.ID),
		slog.String("item_id", itemID))

	http.Redirect(w, r, "/bookings", http.StatusSeeOther)
}
