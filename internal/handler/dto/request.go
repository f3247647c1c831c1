package dto

import "github.com/shopspring/decimal"

// Request bodies keep the camelCase field names the browser client sends;
// responses mirror the snake_case row shape the dashboard expects.

type AvailabilityRequest struct {
	VenueID          int64  `json:"venueId" binding:"required,gt=0"`
	Date             string `json:"date" binding:"required"`
	StartTime        string `json:"startTime" binding:"required"`
	EndTime          string `json:"endTime" binding:"required"`
	ExcludeBookingID *int64 `json:"excludeBookingId"`
}

type BookingRequest struct {
	VenueID         int64  `json:"venueId" binding:"required,gt=0"`
	ClientName      string `json:"clientName" binding:"required"`
	ContactEmail    string `json:"contactEmail" binding:"required,email"`
	ContactPhone    string `json:"contactPhone" binding:"required"`
	EventType       string `json:"eventType" binding:"required"`
	EventDate       string `json:"eventDate" binding:"required"`
	StartTime       string `json:"startTime" binding:"required"`
	EndTime         string `json:"endTime" binding:"required"`
	ExpectedGuests  int    `json:"expectedGuests" binding:"required,gt=0"`
	SpecialRequests string `json:"specialRequests"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type VenueRequest struct {
	Name       string          `json:"venueName" binding:"required"`
	Capacity   int             `json:"capacity" binding:"required,gt=0"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	Status     string          `json:"status"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type VerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyCodeRequest struct {
	CodeID string `json:"codeId" binding:"required,uuid"`
	Code   string `json:"code" binding:"required,len=6"`
}
