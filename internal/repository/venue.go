package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
)

type VenueRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVenueRepo(db *dbpg.DB) *VenueRepository {
	return &VenueRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const venueColumns = `venue_id, venue_name, capacity, hourly_rate, status, created_at, updated_at`

func (r *VenueRepository) Create(ctx context.Context, v *domain.VenueInput) (int64, error) {
	query := `INSERT INTO venues (venue_name, capacity, hourly_rate, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, now(), now())
			  RETURNING venue_id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, v.Name, v.Capacity, v.HourlyRate, v.Status)
	if err != nil {
		return 0, fmt.Errorf("insert venue: %w", err)
	}

	var id int64
	if err = row.Scan(&id); err != nil {
		return 0, fmt.Errorf("scan venue id: %w", err)
	}

	return id, nil
}

func (r *VenueRepository) Update(ctx context.Context, id int64, v *domain.VenueInput) error {
	query := `UPDATE venues
			  SET venue_name = $2, capacity = $3, hourly_rate = $4, status = $5, updated_at = now()
			  WHERE venue_id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, v.Name, v.Capacity, v.HourlyRate, v.Status)
	if err != nil {
		return fmt.Errorf("update venue: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("venue rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrVenueNotFound
	}

	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE venue_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	var v domain.Venue
	if err = row.Scan(&v.ID, &v.Name, &v.Capacity, &v.HourlyRate, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("scan venue: %w", err)
	}

	return &v, nil
}

func (r *VenueRepository) List(ctx context.Context) ([]*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY venue_name`
	return r.queryVenues(ctx, query)
}

func (r *VenueRepository) ListByStatus(ctx context.Context, status domain.VenueStatus) ([]*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE status = $1 ORDER BY venue_name`
	return r.queryVenues(ctx, query, status)
}

func (r *VenueRepository) queryVenues(ctx context.Context, query string, args ...any) ([]*domain.Venue, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	var res []*domain.Venue
	for rows.Next() {
		var v domain.Venue
		if err = rows.Scan(&v.ID, &v.Name, &v.Capacity, &v.HourlyRate, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}
