package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusPending, false},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusConfirmed, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestParseBookingStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Confirmed", "Cancelled"} {
		status, err := ParseBookingStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, BookingStatus(valid), status)
	}

	for _, invalid := range []string{"pending", "Done", "CANCELLED", ""} {
		_, err := ParseBookingStatus(invalid)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestParseEventType(t *testing.T) {
	for _, valid := range []string{"wedding", "conference", "birthday", "corporate", "seminar", "other"} {
		et, err := ParseEventType(valid)
		require.NoError(t, err)
		assert.Equal(t, EventType(valid), et)
	}

	_, err := ParseEventType("rave")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}
