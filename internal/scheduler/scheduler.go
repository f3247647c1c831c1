package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
)

type staleCanceller interface {
	CancelStale(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically cancels Pending requests whose event date has
// already passed.
type Scheduler struct {
	bookingService staleCanceller
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService staleCanceller,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.bookingService.CancelStale(ctx)
	if err != nil {
		s.logger.Error("failed to cancel stale bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range cancelled {
		s.logger.Info("stale booking cancelled",
			logger.Int64("booking_id", b.ID),
			logger.Int64("venue_id", b.VenueID),
			logger.String("event_date", b.EventDate.Format("2006-01-02")),
		)
	}
}
