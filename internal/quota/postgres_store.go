package quota

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/tubespark/server/internal/plans"
)

const (
	createTableSQL = `
		CREATE TABLE IF NOT EXISTS usage_records (
			user_id TEXT NOT NULL,
			resource_kind TEXT NOT NULL,
			cycle_start TIMESTAMP WITH TIME ZONE NOT NULL,
			consumed INTEGER NOT NULL DEFAULT 0 CHECK (consumed >= 0),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			PRIMARY KEY (user_id, resource_kind, cycle_start)
		);
		CREATE INDEX IF NOT EXISTS idx_usage_records_user_id ON usage_records(user_id);
	`

	usedSQL = `
		SELECT consumed
		FROM usage_records
		WHERE user_id = $1 AND resource_kind = $2 AND cycle_start = $3
	`

	// inserts or increments in one statement. the WHERE clauses make the
	// ceiling check part of the row lock, so no row is returned on refusal.
	incrementSQL = `
		INSERT INTO usage_records (user_id, resource_kind, cycle_start, consumed)
		SELECT $1::text, $2::text, $3::timestamptz, $4::int
		WHERE $5::int < 0 OR $4::int <= $5::int
		ON CONFLICT (user_id, resource_kind, cycle_start) DO UPDATE
			SET consumed = usage_records.consumed + EXCLUDED.consumed, updated_at = NOW()
			WHERE $5::int < 0 OR usage_records.consumed + EXCLUDED.consumed <= $5::int
		RETURNING consumed
	`
)

// implements Store using PostgreSQL. Counters are keyed by cycle start, so a
// new cycle naturally starts from zero.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// creates the required tables if they don't exist
func (s *PostgresStore) Initialize(ctx context.Context) error {
	_, err := s.db.Exec(ctx, createTableSQL)
	return err
}

func (s *PostgresStore) Used(ctx context.Context, userID string, kind plans.ResourceKind, cycle Cycle) (int, error) {
	var consumed int

	err := s.db.QueryRow(ctx, usedSQL, userID, string(kind), cycle.Start).Scan(&consumed)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to query usage: %w", err)
	}

	return consumed, nil
}

func (s *PostgresStore) IncrementWithCeiling(ctx context.Context, userID string, kind plans.ResourceKind, cycle Cycle, amount, ceiling int) (int, bool, error) {
	var consumed int

	err := s.db.QueryRow(ctx, incrementSQL, userID, string(kind), cycle.Start, amount, ceiling).Scan(&consumed)
	if errors.Is(err, pgx.ErrNoRows) {
		used, usedErr := s.Used(ctx, userID, kind, cycle)
		if usedErr != nil {
			return 0, false, usedErr
		}

		return used, false, nil
	}

	if err != nil {
		return 0, false, fmt.Errorf("failed to increment usage: %w", err)
	}

	return consumed, true, nil
}
