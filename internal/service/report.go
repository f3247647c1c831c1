package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/service/ports"
)

type ReportService struct {
	repo ports.ReportRepo
}

func NewReportService(repo ports.ReportRepo) *ReportService {
	return &ReportService{repo: repo}
}

func (s *ReportService) VenueUtilization(ctx context.Context, from, to time.Time) ([]domain.VenueUtilization, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.repo.VenueUtilization(ctx, from, to)
}

func (s *ReportService) EventTypeSummary(ctx context.Context, from, to time.Time) ([]domain.EventTypeSummary, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.repo.EventTypeSummary(ctx, from, to)
}

// Calendar returns all bookings, whatever their status, inside the range;
// the dashboard colors them by status.
func (s *ReportService) Calendar(ctx context.Context, from, to time.Time) ([]*domain.BookingWithVenue, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.repo.BookingsInRange(ctx, from, to)
}

func validateRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", domain.ErrValidation)
	}
	if to.Before(from) {
		return fmt.Errorf("%w: end date must not precede start date", domain.ErrValidation)
	}
	return nil
}
