package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ms-shaziya7/capture-moments/config"
	"github.com/ms-shaziya7/capture-moments/internal/repository"
)

type storage struct {
	users    repository.UserRepository
	bookings repository.BookingRepository
	close    func()
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	switch cfg.Storage.Backend {
	case config.BackendDynamoDB:
		client, err := repository.NewDynamoClient(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		return &storage{
			users:    repository.NewDynamoUserRepository(client, cfg.DynamoDB.UsersTable),
			bookings: repository.NewDynamoBookingRepository(client, cfg.DynamoDB.BookingsTable, cfg.DynamoDB.UserBookingsIndex),
			close:    func() {},
		}, nil

	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := repository.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &storage{
			users:    repository.NewUserRepository(pool),
			bookings: repository.NewBookingRepository(pool),
			close:    pool.Close,
		}, nil

	default:
		return &storage{
			users:    repository.NewMemoryUserRepository(),
			bookings: repository.NewMemoryBookingRepository(),
			close:    func() {},
		}, nil
	}
}
