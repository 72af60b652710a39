package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ms-shaziya7/capture-moments/internal/domain"
)

type PGUserRepository struct {
	db PgxPool
}

func NewUserRepository(db PgxPool) UserRepository {
	return &PGUserRepository{db: db}
}

func (r *PGUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT email, name, password_hash, created_at FROM users WHERE email=$1`, email)
	var u domain.User
	if err := row.Scan(&u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PGUserRepository) Create(ctx context.Context, user *domain.User) error {
	res, err := r.db.Exec(ctx, `INSERT INTO users (email, name, password_hash, created_at) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING`,
		user.Email, user.Name, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrAlreadyExists
	}
	return nil
}

var _ UserRepository = (*PGUserRepository)(nil)
