package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func validInput() *domain.BookingInput {
	return &domain.BookingInput{
		VenueID:        1,
		ClientName:     "Maria Santos",
		ContactEmail:   "maria@example.com",
		ContactPhone:   "+63-917-555-0101",
		EventType:      domain.EventTypeWedding,
		EventDate:      time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00:00",
		EndTime:        "14:00:00",
		ExpectedGuests: 150,
	}
}

func TestBookingService_CheckAvailability_Available(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	date := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	bookingRepo.EXPECT().
		FindConflicts(mock.Anything, int64(1), date, domain.TimeOfDay("10:00:00"), domain.TimeOfDay("12:00:00"), (*int64)(nil)).
		Return(nil, nil)

	result, err := svc.CheckAvailability(context.Background(), 1, date, "10:00:00", "12:00:00", nil)

	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Empty(t, result.Conflicts)
}

func TestBookingService_CheckAvailability_Conflict(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	date := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	conflicts := []domain.Booking{
		{ID: 7, VenueID: 1, StartTime: "11:00:00", EndTime: "13:00:00", Status: domain.BookingStatusConfirmed},
	}
	bookingRepo.EXPECT().
		FindConflicts(mock.Anything, int64(1), date, domain.TimeOfDay("10:00:00"), domain.TimeOfDay("12:00:00"), (*int64)(nil)).
		Return(conflicts, nil)

	result, err := svc.CheckAvailability(context.Background(), 1, date, "10:00:00", "12:00:00", nil)

	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Len(t, result.Conflicts, 1)
	assert.Equal(t, int64(7), result.Conflicts[0].ID)
}

func TestBookingService_CheckAvailability_ExcludesBooking(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	date := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	excludeID := int64(42)

	bookingRepo.EXPECT().
		FindConflicts(mock.Anything, int64(1), date, domain.TimeOfDay("10:00:00"), domain.TimeOfDay("12:00:00"), &excludeID).
		Return(nil, nil)

	result, err := svc.CheckAvailability(context.Background(), 1, date, "10:00:00", "12:00:00", &excludeID)

	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestBookingService_CheckAvailability_DegenerateInterval(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	date := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

	_, err := svc.CheckAvailability(context.Background(), 1, date, "12:00:00", "12:00:00", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CheckAvailability(context.Background(), 1, date, "14:00:00", "12:00:00", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_CheckAvailability_InvalidVenue(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	date := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

	_, err := svc.CheckAvailability(context.Background(), 0, date, "10:00:00", "12:00:00", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	venue := &domain.Venue{ID: 1, Name: "Grand Ballroom", Capacity: 300}

	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(int64(7), nil)
	venueRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(venue, nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, venue).Return()

	booking, err := svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, int64(7), booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_Conflict(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	conflictErr := &domain.ConflictError{
		Conflicts: []domain.Booking{{ID: 3, Status: domain.BookingStatusConfirmed}},
	}
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(int64(0), conflictErr)

	_, err := svc.Create(context.Background(), validInput())

	require.Error(t, err)
	ce, ok := domain.AsConflict(err)
	require.True(t, ok)
	assert.Len(t, ce.Conflicts, 1)
}

func TestBookingService_Create_VenueNotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(int64(0), domain.ErrVenueNotFound)

	_, err := svc.Create(context.Background(), validInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}

func TestBookingService_Create_InvalidInput(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	tests := []struct {
		name   string
		mutate func(*domain.BookingInput)
	}{
		{"missing client name", func(b *domain.BookingInput) { b.ClientName = "" }},
		{"missing email", func(b *domain.BookingInput) { b.ContactEmail = "" }},
		{"missing phone", func(b *domain.BookingInput) { b.ContactPhone = "" }},
		{"zero guests", func(b *domain.BookingInput) { b.ExpectedGuests = 0 }},
		{"zero date", func(b *domain.BookingInput) { b.EventDate = time.Time{} }},
		{"start equals end", func(b *domain.BookingInput) { b.EndTime = b.StartTime }},
		{"start after end", func(b *domain.BookingInput) { b.StartTime, b.EndTime = b.EndTime, b.StartTime }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			_, err := svc.Create(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Update_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	bookingRepo.EXPECT().Update(mock.Anything, int64(7), mock.Anything).Return(nil)

	err := svc.Update(context.Background(), 7, validInput())

	require.NoError(t, err)
}

func TestBookingService_Update_Conflict(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	conflictErr := &domain.ConflictError{Conflicts: []domain.Booking{{ID: 2}}}
	bookingRepo.EXPECT().Update(mock.Anything, int64(7), mock.Anything).Return(conflictErr)

	err := svc.Update(context.Background(), 7, validInput())

	require.Error(t, err)
	_, ok := domain.AsConflict(err)
	assert.True(t, ok)
}

func TestBookingService_SetStatus_Confirm(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	current := &domain.BookingWithVenue{
		Booking:   domain.Booking{ID: 7, VenueID: 1, Status: domain.BookingStatusPending},
		VenueName: "Grand Ballroom",
	}
	venue := &domain.Venue{ID: 1, Name: "Grand Ballroom"}

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(current, nil)
	bookingRepo.EXPECT().Confirm(mock.Anything, int64(7)).Return(nil)
	venueRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(venue, nil)
	notifier.EXPECT().NotifyBookingStatusChanged(mock.Anything, mock.Anything, venue).Return()

	updated, err := svc.SetStatus(context.Background(), 7, "Confirmed")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, updated.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_SetStatus_ConfirmRejectedBySlotTaken(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	current := &domain.BookingWithVenue{
		Booking: domain.Booking{ID: 7, VenueID: 1, Status: domain.BookingStatusPending},
	}
	conflictErr := &domain.ConflictError{
		Conflicts: []domain.Booking{{ID: 9, Status: domain.BookingStatusConfirmed}},
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(current, nil)
	bookingRepo.EXPECT().Confirm(mock.Anything, int64(7)).Return(conflictErr)

	_, err := svc.SetStatus(context.Background(), 7, "Confirmed")

	require.Error(t, err)
	ce, ok := domain.AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, int64(9), ce.Conflicts[0].ID)
}

func TestBookingService_SetStatus_CancelConfirmed(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	current := &domain.BookingWithVenue{
		Booking: domain.Booking{ID: 7, VenueID: 1, Status: domain.BookingStatusConfirmed},
	}
	venue := &domain.Venue{ID: 1, Name: "Grand Ballroom"}

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(current, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, int64(7), domain.BookingStatusCancelled).Return(nil)
	venueRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(venue, nil)
	notifier.EXPECT().NotifyBookingStatusChanged(mock.Anything, mock.Anything, venue).Return()

	updated, err := svc.SetStatus(context.Background(), 7, "Cancelled")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, updated.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_SetStatus_InvalidTransition(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	tests := []struct {
		name string
		from domain.BookingStatus
		to   string
	}{
		{"cancelled to confirmed", domain.BookingStatusCancelled, "Confirmed"},
		{"cancelled to pending", domain.BookingStatusCancelled, "Pending"},
		{"confirmed to pending", domain.BookingStatusConfirmed, "Pending"},
		{"pending to pending", domain.BookingStatusPending, "Pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := &domain.BookingWithVenue{
				Booking: domain.Booking{ID: 7, VenueID: 1, Status: tt.from},
			}
			bookingRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(current, nil).Once()

			_, err := svc.SetStatus(context.Background(), 7, tt.to)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		})
	}
}

func TestBookingService_SetStatus_UnknownStatus(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	_, err := svc.SetStatus(context.Background(), 7, "Done")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_SetStatus_NotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrBookingNotFound)

	_, err := svc.SetStatus(context.Background(), 99, "Confirmed")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_CancelStale_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	cancelled := []*domain.Booking{
		{ID: 1, VenueID: 1, Status: domain.BookingStatusCancelled},
		{ID: 2, VenueID: 2, Status: domain.BookingStatusCancelled},
	}
	bookingRepo.EXPECT().CancelStalePending(mock.Anything, mock.Anything).Return(cancelled, nil)

	result, err := svc.CancelStale(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestBookingService_CancelStale_RepoError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log)

	bookingRepo.EXPECT().CancelStalePending(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.CancelStale(context.Background())

	require.Error(t, err)
}
