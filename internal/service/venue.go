package service

import (
	"context"
	"fmt"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/service/ports"
)

type VenueService struct {
	repo ports.VenueRepo
}

func NewVenueService(repo ports.VenueRepo) *VenueService {
	return &VenueService{repo: repo}
}

func (s *VenueService) Create(ctx context.Context, input *domain.VenueInput) (*domain.Venue, error) {
	if err := validateVenueInput(input); err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = domain.VenueStatusAvailable
	}

	id, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}

func (s *VenueService) Update(ctx context.Context, id int64, input *domain.VenueInput) (*domain.Venue, error) {
	if err := validateVenueInput(input); err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = domain.VenueStatusAvailable
	}

	if err := s.repo.Update(ctx, id, input); err != nil {
		return nil, fmt.Errorf("update venue: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}

// ListAvailable is the public catalogue; unavailable venues stay hidden
// from the booking flow.
func (s *VenueService) ListAvailable(ctx context.Context) ([]*domain.Venue, error) {
	return s.repo.ListByStatus(ctx, domain.VenueStatusAvailable)
}

func (s *VenueService) List(ctx context.Context) ([]*domain.Venue, error) {
	return s.repo.List(ctx)
}

func validateVenueInput(v *domain.VenueInput) error {
	switch {
	case v.Name == "":
		return fmt.Errorf("%w: venue_name is required", domain.ErrValidation)
	case v.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	case v.HourlyRate.IsNegative():
		return fmt.Errorf("%w: hourly_rate must not be negative", domain.ErrValidation)
	}
	return nil
}
