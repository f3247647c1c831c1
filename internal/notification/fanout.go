package notification

import (
	"context"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/service/ports"
)

// Fanout delivers every booking notification to all configured channels.
type Fanout struct {
	targets []ports.BookingNotifier
}

func NewFanout(targets ...ports.BookingNotifier) *Fanout {
	return &Fanout{targets: targets}
}

func (f *Fanout) NotifyBookingCreated(ctx context.Context, b *domain.Booking, v *domain.Venue) {
	for _, t := range f.targets {
		t.NotifyBookingCreated(ctx, b, v)
	}
}

func (f *Fanout) NotifyBookingStatusChanged(ctx context.Context, b *domain.Booking, v *domain.Venue) {
	for _, t := range f.targets {
		t.NotifyBookingStatusChanged(ctx, b, v)
	}
}
