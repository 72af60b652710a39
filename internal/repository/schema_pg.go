package repository

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		email         TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		booking_id        TEXT PRIMARY KEY,
		user_email        TEXT NOT NULL REFERENCES users (email),
		name              TEXT NOT NULL,
		location          TEXT NOT NULL,
		booking_date      TEXT NOT NULL,
		event_type        TEXT NOT NULL,
		price             INTEGER NOT NULL,
		status            TEXT NOT NULL,
		booking_time      TIMESTAMPTZ NOT NULL,
		photographer_name TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS bookings_user_email_date_idx ON bookings (user_email, booking_date DESC)`,
}

// Migrate creates the users and bookings tables when missing.
func Migrate(ctx context.Context, db PgxPool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
