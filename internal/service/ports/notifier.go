package ports

import (
	"context"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking, v *domain.Venue)
	NotifyBookingStatusChanged(ctx context.Context, b *domain.Booking, v *domain.Venue)
}

type CodeSender interface {
	SendVerificationCode(ctx context.Context, email, code string)
}
