package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ms-shaziya7/capture-moments/internal/domain"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// UserRepository is the user directory keyed by email.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts the user only if the email is not taken yet.
	Create(ctx context.Context, user *domain.User) error
}

// BookingRepository is the append-only booking ledger.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, email string) ([]domain.Booking, error)
}

// PgxPool is the subset of *pgxpool.Pool the postgres repositories use.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
