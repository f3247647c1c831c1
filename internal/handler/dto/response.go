package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
)

const dateLayout = "2006-01-02"

type ErrorResponse struct {
	Error     string            `json:"error"`
	Conflicts []BookingResponse `json:"conflicts,omitempty"`
}

type AvailabilityResponse struct {
	Available bool              `json:"available"`
	Conflicts []BookingResponse `json:"conflicts,omitempty"`
	Message   string            `json:"message,omitempty"`
}

type BookingCreatedResponse struct {
	BookingID int64 `json:"booking_id"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type BookingResponse struct {
	BookingID       int64  `json:"booking_id"`
	VenueID         int64  `json:"venue_id"`
	ClientName      string `json:"client_name"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
	EventType       string `json:"event_type"`
	EventDate       string `json:"event_date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	ExpectedGuests  int    `json:"expected_guests"`
	SpecialRequests string `json:"special_requests,omitempty"`
	Status          string `json:"status"`
	VenueName       string `json:"venue_name,omitempty"`
	Capacity        int    `json:"capacity,omitempty"`
}

type VenueResponse struct {
	VenueID    int64           `json:"venue_id"`
	VenueName  string          `json:"venue_name"`
	Capacity   int             `json:"capacity"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Status     string          `json:"status"`
}

type UserResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type VerificationIssuedResponse struct {
	CodeID string `json:"codeId"`
	Email  string `json:"email"`
}

type CalendarEventResponse struct {
	ID              int64              `json:"id"`
	Title           string             `json:"title"`
	Start           string             `json:"start"`
	End             string             `json:"end"`
	BackgroundColor string             `json:"backgroundColor"`
	BorderColor     string             `json:"borderColor"`
	ExtendedProps   CalendarEventProps `json:"extendedProps"`
}

type CalendarEventProps struct {
	Venue  string `json:"venue"`
	Client string `json:"client"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:       b.ID,
		VenueID:         b.VenueID,
		ClientName:      b.ClientName,
		ContactEmail:    b.ContactEmail,
		ContactPhone:    b.ContactPhone,
		EventType:       string(b.EventType),
		EventDate:       b.EventDate.Format(dateLayout),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		ExpectedGuests:  b.ExpectedGuests,
		SpecialRequests: b.SpecialRequests,
		Status:          string(b.Status),
	}
}

func ToBookingResponses(bookings []domain.Booking) []BookingResponse {
	res := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		res = append(res, ToBookingResponse(&bookings[i]))
	}
	return res
}

func ToBookingWithVenueResponse(b *domain.BookingWithVenue) BookingResponse {
	resp := ToBookingResponse(&b.Booking)
	resp.VenueName = b.VenueName
	resp.Capacity = b.VenueCapacity
	return resp
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		VenueID:    v.ID,
		VenueName:  v.Name,
		Capacity:   v.Capacity,
		HourlyRate: v.HourlyRate,
		Status:     string(v.Status),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:   u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     u.Role,
		Email:    u.Email,
	}
}

func ToCalendarEventResponse(b *domain.BookingWithVenue) CalendarEventResponse {
	color := "#f39c12"
	if b.Status == domain.BookingStatusConfirmed {
		color = "#27ae60"
	}

	date := b.EventDate.Format(dateLayout)

	return CalendarEventResponse{
		ID:              b.ID,
		Title:           fmt.Sprintf("%s - %s (%s)", b.VenueName, b.ClientName, b.EventType),
		Start:           fmt.Sprintf("%sT%s", date, b.StartTime),
		End:             fmt.Sprintf("%sT%s", date, b.EndTime),
		BackgroundColor: color,
		BorderColor:     color,
		ExtendedProps: CalendarEventProps{
			Venue:  b.VenueName,
			Client: b.ClientName,
			Type:   string(b.EventType),
			Status: string(b.Status),
		},
	}
}
