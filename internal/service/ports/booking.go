package ports

import (
	"context"
	"time"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.BookingInput) (int64, error)
	Update(ctx context.Context, id int64, b *domain.BookingInput) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Confirm(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.BookingWithVenue, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.BookingWithVenue, error)
	FindConflicts(ctx context.Context, venueID int64, date time.Time, start, end domain.TimeOfDay, excludeID *int64) ([]domain.Booking, error)
	CancelStalePending(ctx context.Context, before time.Time) ([]*domain.Booking, error)
}
