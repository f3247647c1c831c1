package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
)

type ReportRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReportRepo(db *dbpg.DB) *ReportRepository {
	return &ReportRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReportRepository) VenueUtilization(ctx context.Context, from, to time.Time) ([]domain.VenueUtilization, error) {
	query := `SELECT v.venue_id, v.venue_name,
				     COUNT(b.booking_id) AS booking_count,
				     COALESCE(SUM(EXTRACT(EPOCH FROM (b.end_time - b.start_time)) / 60), 0)::bigint AS total_minutes,
				     COALESCE(SUM(EXTRACT(EPOCH FROM (b.end_time - b.start_time)) / 3600 * v.hourly_rate), 0) AS estimated_revenue
			  FROM venues v
			  LEFT JOIN event_bookings b
			      ON b.venue_id = v.venue_id
			     AND b.event_date BETWEEN $1 AND $2
			     AND b.status = $3
			  GROUP BY v.venue_id, v.venue_name
			  ORDER BY booking_count DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("venue utilization: %w", err)
	}
	defer rows.Close()

	var res []domain.VenueUtilization
	for rows.Next() {
		var u domain.VenueUtilization
		if err = rows.Scan(&u.VenueID, &u.VenueName, &u.BookingCount, &u.TotalMinutes, &u.EstimatedRevenue); err != nil {
			return nil, fmt.Errorf("scan utilization: %w", err)
		}
		res = append(res, u)
	}

	return res, rows.Err()
}

func (r *ReportRepository) EventTypeSummary(ctx context.Context, from, to time.Time) ([]domain.EventTypeSummary, error) {
	query := `SELECT event_type,
				     COUNT(booking_id) AS count,
				     AVG(expected_guests::float) AS avg_guests
			  FROM event_bookings
			  WHERE event_date BETWEEN $1 AND $2
			    AND status = $3
			  GROUP BY event_type
			  ORDER BY count DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("event type summary: %w", err)
	}
	defer rows.Close()

	var res []domain.EventTypeSummary
	for rows.Next() {
		var s domain.EventTypeSummary
		if err = rows.Scan(&s.EventType, &s.Count, &s.AvgGuests); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (r *ReportRepository) BookingsInRange(ctx context.Context, from, to time.Time) ([]*domain.BookingWithVenue, error) {
	query := `SELECT b.booking_id, b.venue_id, b.client_name, b.contact_email, b.contact_phone,
				     b.event_type, b.event_date, b.start_time, b.end_time, b.expected_guests,
				     COALESCE(b.special_requests, ''), b.status, b.created_at, b.last_updated,
				     v.venue_name, v.capacity
			  FROM event_bookings b
			  JOIN venues v ON v.venue_id = b.venue_id
			  WHERE b.event_date BETWEEN $1 AND $2
			  ORDER BY b.event_date, b.start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("bookings in range: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingWithVenue
	for rows.Next() {
		bv, err := scanBookingWithVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, bv)
	}

	return res, rows.Err()
}
