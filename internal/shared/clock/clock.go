// Package clock abstracts "what day is it" behind an injectable interface so
// the date-dependent validation rules stay deterministic under test.
package clock

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TimeProvider reports the current calendar date in a client-supplied
// IANA timezone (for example "Asia/Tokyo").
type TimeProvider interface {
	CurrentDate(ctx context.Context, clientTimeZone string) (time.Time, error)
}

// DatabaseTimeProvider takes the current date from PostgreSQL, so every
// instance of the service agrees on the same reference time.
type DatabaseTimeProvider struct {
	pool *pgxpool.Pool
}

func NewDatabaseTimeProvider(pool *pgxpool.Pool) *DatabaseTimeProvider {
	return &DatabaseTimeProvider{pool: pool}
}

func (p *DatabaseTimeProvider) CurrentDate(ctx context.Context, clientTimeZone string) (time.Time, error) {
	var current time.Time
	err := p.pool.QueryRow(ctx, `SELECT (now() AT TIME ZONE $1)::date`, clientTimeZone).Scan(&current)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read current date: %w", err)
	}
	return current, nil
}

// FixedTimeProvider always returns the same date. Test use only.
type FixedTimeProvider struct {
	Date time.Time
}

func (p FixedTimeProvider) CurrentDate(_ context.Context, _ string) (time.Time, error) {
	return p.Date, nil
}
