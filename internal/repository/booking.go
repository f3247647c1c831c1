package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
)

const (
	pgExclusionViolation  = "23P01"
	pgForeignKeyViolation = "23503"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const bookingColumns = `booking_id, venue_id, client_name, contact_email, contact_phone,
       event_type, event_date, start_time, end_time, expected_guests,
       COALESCE(special_requests, ''), status, created_at, last_updated`

// Half-open interval test: requested [start, end) intersects an existing
// [start_time, end_time) iff start < end_time AND end > start_time.
// Only Confirmed rows participate.
const conflictQuery = `SELECT ` + bookingColumns + `
       FROM event_bookings
       WHERE venue_id = $1
         AND event_date = $2
         AND status = $3
         AND $4::time < end_time
         AND $5::time > start_time`

func (r *BookingRepository) FindConflicts(
	ctx context.Context,
	venueID int64,
	date time.Time,
	start, end domain.TimeOfDay,
	excludeID *int64,
) ([]domain.Booking, error) {
	query := conflictQuery
	args := []any{venueID, date, domain.BookingStatusConfirmed, start.String(), end.String()}
	if excludeID != nil {
		query += ` AND booking_id <> $6`
		args = append(args, *excludeID)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find conflicts: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.BookingInput) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockVenue(ctx, tx, b.VenueID); err != nil {
		return 0, err
	}

	conflicts, err := conflictsTx(ctx, tx, b.VenueID, b.EventDate, b.StartTime, b.EndTime, nil)
	if err != nil {
		return 0, err
	}
	if len(conflicts) > 0 {
		return 0, &domain.ConflictError{Conflicts: conflicts}
	}

	query := `INSERT INTO event_bookings (
				  venue_id, client_name, contact_email, contact_phone, event_type,
				  event_date, start_time, end_time, expected_guests, special_requests,
				  status, created_at, last_updated)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, now(), now())
			  RETURNING booking_id`

	var id int64
	err = tx.QueryRowContext(
		ctx, query,
		b.VenueID, b.ClientName, b.ContactEmail, b.ContactPhone, b.EventType,
		b.EventDate, b.StartTime.String(), b.EndTime.String(),
		b.ExpectedGuests, b.SpecialRequests, domain.BookingStatusPending,
	).Scan(&id)
	if err != nil {
		return 0, mapAdmissionError(err, "insert booking")
	}

	return id, tx.Commit()
}

func (r *BookingRepository) Update(ctx context.Context, id int64, b *domain.BookingInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockVenue(ctx, tx, b.VenueID); err != nil {
		return err
	}

	conflicts, err := conflictsTx(ctx, tx, b.VenueID, b.EventDate, b.StartTime, b.EndTime, &id)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return &domain.ConflictError{Conflicts: conflicts}
	}

	query := `UPDATE event_bookings
			  SET venue_id = $2,
			      client_name = $3,
			      contact_email = $4,
			      contact_phone = $5,
			      event_type = $6,
			      event_date = $7,
			      start_time = $8,
			      end_time = $9,
			      expected_guests = $10,
			      special_requests = NULLIF($11, ''),
			      last_updated = now()
			  WHERE booking_id = $1`
	res, err := tx.ExecContext(
		ctx, query, id,
		b.VenueID, b.ClientName, b.ContactEmail, b.ContactPhone, b.EventType,
		b.EventDate, b.StartTime.String(), b.EndTime.String(),
		b.ExpectedGuests, b.SpecialRequests,
	)
	if err != nil {
		return mapAdmissionError(err, "update booking")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update booking rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrBookingNotFound
	}

	return tx.Commit()
}

// Confirm re-runs the conflict check inside the same transaction, so a
// booking whose slot was taken by a sibling since creation is rejected
// instead of silently double-booking the venue.
func (r *BookingRepository) Confirm(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT venue_id, event_date, start_time, end_time, status
			  FROM event_bookings
			  WHERE booking_id = $1
			  FOR UPDATE`

	var (
		venueID    int64
		date       time.Time
		start, end time.Time
		status     domain.BookingStatus
	)
	if err = tx.QueryRowContext(ctx, query, id).Scan(&venueID, &date, &start, &end, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("get booking for confirm: %w", err)
	}

	if status != domain.BookingStatusPending {
		return domain.ErrInvalidTransition
	}

	if err = lockVenue(ctx, tx, venueID); err != nil {
		return err
	}

	conflicts, err := conflictsTx(ctx, tx, venueID, date,
		domain.TimeOfDayFrom(start), domain.TimeOfDayFrom(end), &id)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return &domain.ConflictError{Conflicts: conflicts}
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE event_bookings SET status = $2, last_updated = now() WHERE booking_id = $1`,
		id, domain.BookingStatusConfirmed,
	)
	if err != nil {
		return mapAdmissionError(err, "confirm booking")
	}

	return tx.Commit()
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	query := `UPDATE event_bookings
			  SET status = $2, last_updated = now()
			  WHERE booking_id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking status rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.BookingWithVenue, error) {
	query := `SELECT b.booking_id, b.venue_id, b.client_name, b.contact_email, b.contact_phone,
				     b.event_type, b.event_date, b.start_time, b.end_time, b.expected_guests,
				     COALESCE(b.special_requests, ''), b.status, b.created_at, b.last_updated,
				     v.venue_name, v.capacity
			  FROM event_bookings b
			  JOIN venues v ON v.venue_id = b.venue_id
			  WHERE b.booking_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	bv, err := scanBookingWithVenue(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return bv, nil
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.BookingWithVenue, error) {
	query := `SELECT b.booking_id, b.venue_id, b.client_name, b.contact_email, b.contact_phone,
				     b.event_type, b.event_date, b.start_time, b.end_time, b.expected_guests,
				     COALESCE(b.special_requests, ''), b.status, b.created_at, b.last_updated,
				     v.venue_name, v.capacity
			  FROM event_bookings b
			  JOIN venues v ON v.venue_id = b.venue_id`

	where, args := buildBookingFilter(filter)
	query += where + ` ORDER BY b.event_date DESC, b.start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
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

func (r *BookingRepository) CancelStalePending(ctx context.Context, before time.Time) ([]*domain.Booking, error) {
	query := `UPDATE event_bookings
			  SET status = $2, last_updated = now()
			  WHERE status = $1 AND event_date < $3
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusCancelled, before,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale pending: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// lockVenue serializes admission writes per venue, closing the
// check-then-write race between concurrent creates, updates and confirms.
func lockVenue(ctx context.Context, tx *sql.Tx, venueID int64) error {
	var status domain.VenueStatus
	err := tx.QueryRowContext(ctx,
		`SELECT status FROM venues WHERE venue_id = $1 FOR UPDATE`, venueID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrVenueNotFound
		}
		return fmt.Errorf("lock venue: %w", err)
	}

	if status != domain.VenueStatusAvailable {
		return domain.ErrVenueUnavailable
	}

	return nil
}

func conflictsTx(
	ctx context.Context,
	tx *sql.Tx,
	venueID int64,
	date time.Time,
	start, end domain.TimeOfDay,
	excludeID *int64,
) ([]domain.Booking, error) {
	query := conflictQuery
	args := []any{venueID, date, domain.BookingStatusConfirmed, start.String(), end.String()}
	if excludeID != nil {
		query += ` AND booking_id <> $6`
		args = append(args, *excludeID)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find conflicts: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b          domain.Booking
		start, end time.Time
	)
	if err := row.Scan(
		&b.ID, &b.VenueID, &b.ClientName, &b.ContactEmail, &b.ContactPhone,
		&b.EventType, &b.EventDate, &start, &end, &b.ExpectedGuests,
		&b.SpecialRequests, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.StartTime = domain.TimeOfDayFrom(start)
	b.EndTime = domain.TimeOfDayFrom(end)

	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]domain.Booking, error) {
	var res []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan conflict: %w", err)
		}
		res = append(res, *b)
	}

	return res, rows.Err()
}

func scanBookingWithVenue(row rowScanner) (*domain.BookingWithVenue, error) {
	var (
		bv         domain.BookingWithVenue
		start, end time.Time
	)
	if err := row.Scan(
		&bv.ID, &bv.VenueID, &bv.ClientName, &bv.ContactEmail, &bv.ContactPhone,
		&bv.EventType, &bv.EventDate, &start, &end, &bv.ExpectedGuests,
		&bv.SpecialRequests, &bv.Status, &bv.CreatedAt, &bv.UpdatedAt,
		&bv.VenueName, &bv.VenueCapacity,
	); err != nil {
		return nil, err
	}
	bv.StartTime = domain.TimeOfDayFrom(start)
	bv.EndTime = domain.TimeOfDayFrom(end)

	return &bv, nil
}

// buildBookingFilter assembles the WHERE clause from a fixed set of
// parameterized predicates. Values never enter the query text.
func buildBookingFilter(f domain.BookingFilter) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	add := func(clause string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if f.FromDate != nil {
		add("b.event_date >= $%d", *f.FromDate)
	}
	if f.ToDate != nil {
		add("b.event_date <= $%d", *f.ToDate)
	}
	if f.VenueID != nil {
		add("b.venue_id = $%d", *f.VenueID)
	}
	if f.Status != nil {
		add("b.status = $%d", *f.Status)
	}

	if len(clauses) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

// mapAdmissionError translates engine-level rejections into domain errors.
// The exclusion constraint on confirmed rows is the backstop for the
// no-overlap invariant when a conflicting write slips past the row lock.
func mapAdmissionError(err error, op string) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgExclusionViolation:
			return &domain.ConflictError{}
		case pgForeignKeyViolation:
			return domain.ErrVenueNotFound
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
