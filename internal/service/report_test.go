package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/service/ports/mocks"
)

func TestReportService_VenueUtilization_Success(t *testing.T) {
	repo := mocks.NewMockReportRepo(t)
	svc := NewReportService(repo)

	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)

	rows := []domain.VenueUtilization{
		{VenueID: 1, VenueName: "Grand Ballroom", BookingCount: 4, TotalMinutes: 960, EstimatedRevenue: decimal.NewFromInt(80000)},
	}
	repo.EXPECT().VenueUtilization(mock.Anything, from, to).Return(rows, nil)

	result, err := svc.VenueUtilization(context.Background(), from, to)

	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, 4, result[0].BookingCount)
}

func TestReportService_EventTypeSummary_Success(t *testing.T) {
	repo := mocks.NewMockReportRepo(t)
	svc := NewReportService(repo)

	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)

	rows := []domain.EventTypeSummary{
		{EventType: domain.EventTypeWedding, Count: 3, AvgGuests: 180},
	}
	repo.EXPECT().EventTypeSummary(mock.Anything, from, to).Return(rows, nil)

	result, err := svc.EventTypeSummary(context.Background(), from, to)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestReportService_Calendar_Success(t *testing.T) {
	repo := mocks.NewMockReportRepo(t)
	svc := NewReportService(repo)

	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)

	bookings := []*domain.BookingWithVenue{
		{Booking: domain.Booking{ID: 1, Status: domain.BookingStatusConfirmed}, VenueName: "Grand Ballroom"},
		{Booking: domain.Booking{ID: 2, Status: domain.BookingStatusPending}, VenueName: "Garden Pavilion"},
	}
	repo.EXPECT().BookingsInRange(mock.Anything, from, to).Return(bookings, nil)

	result, err := svc.Calendar(context.Background(), from, to)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestReportService_InvalidRange(t *testing.T) {
	repo := mocks.NewMockReportRepo(t)
	svc := NewReportService(repo)

	from := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Calendar(context.Background(), from, to)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.VenueUtilization(context.Background(), time.Time{}, to)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
