package ports

import (
	"context"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
)

type VenueRepo interface {
	Create(ctx context.Context, v *domain.VenueInput) (int64, error)
	Update(ctx context.Context, id int64, v *domain.VenueInput) error
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
	ListByStatus(ctx context.Context, status domain.VenueStatus) ([]*domain.Venue, error)
}
