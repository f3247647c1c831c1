package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/service/ports/mocks"
)

func TestVenueService_Create_Success(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	input := &domain.VenueInput{
		Name:       "Grand Ballroom",
		Capacity:   300,
		HourlyRate: decimal.NewFromInt(5000),
	}
	created := &domain.Venue{
		ID:         1,
		Name:       "Grand Ballroom",
		Capacity:   300,
		HourlyRate: decimal.NewFromInt(5000),
		Status:     domain.VenueStatusAvailable,
	}

	repo.EXPECT().Create(mock.Anything, input).Return(int64(1), nil)
	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(created, nil)

	venue, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), venue.ID)
	assert.Equal(t, domain.VenueStatusAvailable, venue.Status)
}

func TestVenueService_Create_DefaultsStatus(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	input := &domain.VenueInput{Name: "Garden Pavilion", Capacity: 120}

	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, v *domain.VenueInput) {
		assert.Equal(t, domain.VenueStatusAvailable, v.Status)
	}).Return(int64(2), nil)
	repo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.Venue{ID: 2}, nil)

	_, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
}

func TestVenueService_Create_Invalid(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	tests := []struct {
		name  string
		input *domain.VenueInput
	}{
		{"missing name", &domain.VenueInput{Capacity: 100}},
		{"zero capacity", &domain.VenueInput{Name: "Hall", Capacity: 0}},
		{"negative rate", &domain.VenueInput{Name: "Hall", Capacity: 100, HourlyRate: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestVenueService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	input := &domain.VenueInput{Name: "Hall", Capacity: 100}
	repo.EXPECT().Update(mock.Anything, int64(99), mock.Anything).Return(domain.ErrVenueNotFound)

	_, err := svc.Update(context.Background(), 99, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}

func TestVenueService_ListAvailable_FiltersByStatus(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	venues := []*domain.Venue{
		{ID: 1, Name: "Grand Ballroom", Status: domain.VenueStatusAvailable},
	}
	repo.EXPECT().ListByStatus(mock.Anything, domain.VenueStatusAvailable).Return(venues, nil)

	result, err := svc.ListAvailable(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestVenueService_List_All(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	venues := []*domain.Venue{
		{ID: 1, Status: domain.VenueStatusAvailable},
		{ID: 2, Status: domain.VenueStatusUnavailable},
	}
	repo.EXPECT().List(mock.Anything).Return(venues, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
