package domain

import "github.com/shopspring/decimal"

// VenueUtilization aggregates confirmed bookings per venue over a date
// range. Revenue is estimated as booked hours times the hourly rate.
type VenueUtilization struct {
	VenueID          int64           `json:"venue_id"`
	VenueName        string          `json:"venue_name"`
	BookingCount     int             `json:"booking_count"`
	TotalMinutes     int64           `json:"total_minutes"`
	EstimatedRevenue decimal.Decimal `json:"estimated_revenue"`
}

type EventTypeSummary struct {
	EventType EventType `json:"event_type"`
	Count     int       `json:"count"`
	AvgGuests float64   `json:"avg_guests"`
}
