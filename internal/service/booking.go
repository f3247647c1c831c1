package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/monitoring"
	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/service/ports"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	venueRepo   ports.VenueRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	venueRepo ports.VenueRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// CheckAvailability is the read-only conflict predicate. A degenerate
// interval (start >= end) is rejected here rather than evaluated.
func (s *BookingService) CheckAvailability(
	ctx context.Context,
	venueID int64,
	date time.Time,
	start, end domain.TimeOfDay,
	excludeBookingID *int64,
) (*domain.Availability, error) {
	if venueID <= 0 {
		return nil, fmt.Errorf("%w: venue_id must be positive", domain.ErrValidation)
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("%w: start_time must be before end_time", domain.ErrValidation)
	}

	conflicts, err := s.bookingRepo.FindConflicts(ctx, venueID, date, start, end, excludeBookingID)
	if err != nil {
		return nil, fmt.Errorf("find conflicts: %w", err)
	}

	monitoring.ObserveAvailabilityCheck(len(conflicts) == 0)

	return &domain.Availability{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

func (s *BookingService) Create(ctx context.Context, input *domain.BookingInput) (*domain.Booking, error) {
	if err := validateBookingInput(input); err != nil {
		return nil, err
	}

	id, err := s.bookingRepo.Create(ctx, input)
	if err != nil {
		if _, ok := domain.AsConflict(err); ok {
			monitoring.ObserveBookingConflict("create")
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	monitoring.ObserveBookingCreated()

	booking := &domain.Booking{
		ID:              id,
		VenueID:         input.VenueID,
		ClientName:      input.ClientName,
		ContactEmail:    input.ContactEmail,
		ContactPhone:    input.ContactPhone,
		EventType:       input.EventType,
		EventDate:       input.EventDate,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		ExpectedGuests:  input.ExpectedGuests,
		SpecialRequests: input.SpecialRequests,
		Status:          domain.BookingStatusPending,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}

	s.logger.Info("booking created",
		logger.Int64("booking_id", id),
		logger.Int64("venue_id", input.VenueID),
		logger.String("event_date", input.EventDate.Format("2006-01-02")),
	)

	s.notify(ctx, booking, ports.BookingNotifier.NotifyBookingCreated)

	return booking, nil
}

func (s *BookingService) Update(ctx context.Context, id int64, input *domain.BookingInput) error {
	if err := validateBookingInput(input); err != nil {
		return err
	}

	if err := s.bookingRepo.Update(ctx, id, input); err != nil {
		if _, ok := domain.AsConflict(err); ok {
			monitoring.ObserveBookingConflict("update")
		}
		return fmt.Errorf("update booking: %w", err)
	}

	s.logger.Info("booking updated", logger.Int64("booking_id", id))

	return nil
}

// SetStatus applies an administrator's status change. Pending->Confirmed
// re-runs the conflict check inside the repository transaction, so a slot
// taken since creation rejects the confirmation instead of double-booking.
func (s *BookingService) SetStatus(ctx context.Context, id int64, rawStatus string) (*domain.Booking, error) {
	status, err := domain.ParseBookingStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	current, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, status)
	}

	if status == domain.BookingStatusConfirmed {
		err = s.bookingRepo.Confirm(ctx, id)
	} else {
		err = s.bookingRepo.UpdateStatus(ctx, id, status)
	}
	if err != nil {
		if _, ok := domain.AsConflict(err); ok {
			monitoring.ObserveBookingConflict("confirm")
		}
		return nil, fmt.Errorf("set status: %w", err)
	}

	monitoring.ObserveStatusTransition(string(status))

	updated := current.Booking
	updated.Status = status
	updated.UpdatedAt = time.Now().UTC()

	s.logger.Info("booking status changed",
		logger.Int64("booking_id", id),
		logger.String("from", string(current.Status)),
		logger.String("to", string(status)),
	)

	s.notify(ctx, &updated, ports.BookingNotifier.NotifyBookingStatusChanged)

	return &updated, nil
}

func (s *BookingService) Get(ctx context.Context, id int64) (*domain.BookingWithVenue, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.BookingWithVenue, error) {
	return s.bookingRepo.List(ctx, filter)
}

// CancelStale cancels Pending requests whose event date has passed; they
// can never be confirmed and only clutter the dashboard.
func (s *BookingService) CancelStale(ctx context.Context) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelStalePending(ctx, time.Now().UTC().Truncate(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("stale pending bookings cancelled",
			logger.Int("count", len(cancelled)),
		)
	}

	return cancelled, nil
}

func (s *BookingService) notify(
	ctx context.Context,
	b *domain.Booking,
	fn func(ports.BookingNotifier, context.Context, *domain.Booking, *domain.Venue),
) {
	venue, err := s.venueRepo.GetByID(ctx, b.VenueID)
	if err != nil {
		s.logger.Error("failed to get venue for notification",
			logger.Int64("venue_id", b.VenueID),
			logger.String("error", err.Error()),
		)
		return
	}

	go fn(s.notifier, context.WithoutCancel(ctx), b, venue)
}

func validateBookingInput(b *domain.BookingInput) error {
	switch {
	case b.VenueID <= 0:
		return fmt.Errorf("%w: venue_id must be positive", domain.ErrValidation)
	case b.ClientName == "":
		return fmt.Errorf("%w: client_name is required", domain.ErrValidation)
	case b.ContactEmail == "":
		return fmt.Errorf("%w: contact_email is required", domain.ErrValidation)
	case b.ContactPhone == "":
		return fmt.Errorf("%w: contact_phone is required", domain.ErrValidation)
	case b.EventDate.IsZero():
		return fmt.Errorf("%w: event_date is required", domain.ErrValidation)
	case b.ExpectedGuests <= 0:
		return fmt.Errorf("%w: expected_guests must be positive", domain.ErrValidation)
	case !b.StartTime.Before(b.EndTime):
		return fmt.Errorf("%w: start_time must be before end_time", domain.ErrValidation)
	}
	return nil
}
