package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return BookingStatus(s), nil
	}
	return "", fmt.Errorf("%w: invalid status %q", ErrValidation, s)
}

// Allowed transitions: Pending->Confirmed, Pending->Cancelled, Confirmed->Cancelled.
// Cancelled is terminal; Confirmed never goes back to Pending.
func (s BookingStatus) CanTransitionTo(to BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return to == BookingStatusConfirmed || to == BookingStatusCancelled
	case BookingStatusConfirmed:
		return to == BookingStatusCancelled
	}
	return false
}

type EventType string

const (
	EventTypeWedding    EventType = "wedding"
	EventTypeConference EventType = "conference"
	EventTypeBirthday   EventType = "birthday"
	EventTypeCorporate  EventType = "corporate"
	EventTypeSeminar    EventType = "seminar"
	EventTypeOther      EventType = "other"
)

func ParseEventType(s string) (EventType, error) {
	switch EventType(s) {
	case EventTypeWedding, EventTypeConference, EventTypeBirthday,
		EventTypeCorporate, EventTypeSeminar, EventTypeOther:
		return EventType(s), nil
	}
	return "", fmt.Errorf("%w: invalid event type %q", ErrValidation, s)
}

type Booking struct {
	ID              int64         `json:"booking_id"`
	VenueID         int64         `json:"venue_id"`
	ClientName      string        `json:"client_name"`
	ContactEmail    string        `json:"contact_email"`
	ContactPhone    string        `json:"contact_phone"`
	EventType       EventType     `json:"event_type"`
	EventDate       time.Time     `json:"event_date"`
	StartTime       TimeOfDay     `json:"start_time"`
	EndTime         TimeOfDay     `json:"end_time"`
	ExpectedGuests  int           `json:"expected_guests"`
	SpecialRequests string        `json:"special_requests"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"last_updated"`
}

type BookingInput struct {
	VenueID         int64
	ClientName      string
	ContactEmail    string
	ContactPhone    string
	EventType       EventType
	EventDate       time.Time
	StartTime       TimeOfDay
	EndTime         TimeOfDay
	ExpectedGuests  int
	SpecialRequests string
}

// BookingWithVenue joins a booking with its venue for the admin views.
type BookingWithVenue struct {
	Booking
	VenueName     string `json:"venue_name"`
	VenueCapacity int    `json:"capacity"`
}

// Availability is the outcome of the conflict check: available means no
// confirmed booking intersects the requested slot.
type Availability struct {
	Available bool      `json:"available"`
	Conflicts []Booking `json:"conflicts,omitempty"`
}

type BookingFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	VenueID  *int64
	Status   *BookingStatus
}
