package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type VenueStatus string

const (
	VenueStatusAvailable   VenueStatus = "Available"
	VenueStatusUnavailable VenueStatus = "Unavailable"
)

func ParseVenueStatus(s string) (VenueStatus, error) {
	switch VenueStatus(s) {
	case VenueStatusAvailable, VenueStatusUnavailable:
		return VenueStatus(s), nil
	}
	return "", fmt.Errorf("%w: invalid venue status %q", ErrValidation, s)
}

type Venue struct {
	ID         int64           `json:"venue_id"`
	Name       string          `json:"venue_name"`
	Capacity   int             `json:"capacity"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Status     VenueStatus     `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type VenueInput struct {
	Name       string
	Capacity   int
	HourlyRate decimal.Decimal
	Status     VenueStatus
}
