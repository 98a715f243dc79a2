// internal/core/ports/account_api.go
package ports

import (
	"context"

	"github.com/jeanmonodalex/partage-web/internal/core/domain"
)

// AccountAPI is the outbound port for authentication. The backend owns all
// credential storage; the gateway only forwards and holds the issued token
// in a browser cookie.
type AccountAPI interface {
	Register(ctx context.Context, reg domain.Registration) (token string, err error)
	Login(ctx context.Context, creds domain.Credentials) (token string, err error)
	Me(ctx context.Context, token string) (*domain.UserProfile, error)
}

// BookingAPI is the outbound port for rental requests.
type BookingAPI interface {
	CreateBooking(ctx context.Context, token string, req domain.BookingRequest) (*domain.Booking, error)
	MyBookings(ctx context.Context, token string) ([]domain.Booking, error)
}

// MessageAPI is the outbound port for user-to-user messaging.
type MessageAPI interface {
	SendMessage(ctx context.Context, token string, req domain.MessageRequest) error
	Conversations(ctx context.Context, token string) ([]domain.Message, error)
}
