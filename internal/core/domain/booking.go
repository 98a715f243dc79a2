// internal/core/domain/booking.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle of a rental request. Values match
// the backend's wire constants.
type BookingStatus string

const (
	BookingPending   BookingStatus = "en_attente"
	BookingConfirmed BookingStatus = "confirmee"
	BookingRefused   BookingStatus = "refusee"
	BookingFinished  BookingStatus = "terminee"
)

// Label returns the display text for a status.
func (s BookingStatus) Label() string {
	switch s {
	case BookingPending:
		return "En attente"
	case BookingConfirmed:
		return "Confirmée"
	case BookingRefused:
		return "Refusée"
	case BookingFinished:
		return "Terminée"
	default:
		return string(s)
	}
}

// Booking is the backend's projection of a rental request. The total price
// is computed server-side (days × daily price + registration fee) and only
// displayed here.
type Booking struct {
	ID         string          `json:"id"`
	ItemID     string          `json:"item_id"`
	ItemTitle  string          `json:"item_titre"`
	RenterID   string          `json:"locataire_id"`
	RenterName string          `json:"locataire_nom"`
	OwnerID    string          `json:"proprietaire_id"`
	Start      Timestamp       `json:"date_debut"`
	End        Timestamp       `json:"date_fin"`
	TotalPrice decimal.Decimal `json:"prix_total"`
	Status     BookingStatus   `json:"statut"`
	Message    string          `json:"message,omitempty"`
	CreatedAt  Timestamp       `json:"date_creation"`
}

// BookingRequest is the payload for creating a booking.
type BookingRequest struct {
	ItemID  string    `json:"item_id"`
	Start   time.Time `json:"date_debut"`
	End     time.Time `json:"date_fin"`
	Message string    `json:"message,omitempty"`
}
