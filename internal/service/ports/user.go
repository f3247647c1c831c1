package ports

import (
	"context"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
)

type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
