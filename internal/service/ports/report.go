package ports

import (
	"context"
	"time"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
)

type ReportRepo interface {
	VenueUtilization(ctx context.Context, from, to time.Time) ([]domain.VenueUtilization, error)
	EventTypeSummary(ctx context.Context, from, to time.Time) ([]domain.EventTypeSummary, error)
	BookingsInRange(ctx context.Context, from, to time.Time) ([]*domain.BookingWithVenue, error)
}
