package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
)

func TestBuildBookingFilter_Empty(t *testing.T) {
	where, args := buildBookingFilter(domain.BookingFilter{})

	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestBuildBookingFilter_SingleClause(t *testing.T) {
	venueID := int64(3)

	where, args := buildBookingFilter(domain.BookingFilter{VenueID: &venueID})

	assert.Equal(t, " WHERE b.venue_id = $1", where)
	assert.Equal(t, []any{int64(3)}, args)
}

func TestBuildBookingFilter_AllClauses(t *testing.T) {
	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)
	venueID := int64(3)
	status := domain.BookingStatusConfirmed

	where, args := buildBookingFilter(domain.BookingFilter{
		FromDate: &from,
		ToDate:   &to,
		VenueID:  &venueID,
		Status:   &status,
	})

	assert.Equal(t,
		" WHERE b.event_date >= $1 AND b.event_date <= $2 AND b.venue_id = $3 AND b.status = $4",
		where)
	assert.Equal(t, []any{from, to, int64(3), domain.BookingStatusConfirmed}, args)
}

func TestBuildBookingFilter_PlaceholdersFollowArgOrder(t *testing.T) {
	to := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)
	status := domain.BookingStatusPending

	where, args := buildBookingFilter(domain.BookingFilter{
		ToDate: &to,
		Status: &status,
	})

	assert.Equal(t, " WHERE b.event_date <= $1 AND b.status = $2", where)
	assert.Len(t, args, 2)
}
