package repository

import (
	"context"
	"sync"

	"github.com/ms-shaziya7/capture-moments/internal/domain"
)

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]domain.User)}
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return ErrAlreadyExists
	}
	r.users[user.Email] = *user
	return nil
}

// MemoryBookingRepository keeps bookings in insertion order with a per-owner index.
type MemoryBookingRepository struct {
	mu      sync.RWMutex
	byID    map[string]struct{}
	all     []domain.Booking
	byOwner map[string][]int
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{
		byID:    make(map[string]struct{}),
		byOwner: make(map[string][]int),
	}
}

func (r *MemoryBookingRepository) Create(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[booking.ID]; ok {
		return ErrAlreadyExists
	}
	r.byID[booking.ID] = struct{}{}
	r.all = append(r.all, *booking)
	r.byOwner[booking.UserEmail] = append(r.byOwner[booking.UserEmail], len(r.all)-1)
	return nil
}

func (r *MemoryBookingRepository) ListByUser(_ context.Context, email string) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.byOwner[email]
	bookings := make([]domain.Booking, 0, len(idx))
	for _, i := range idx {
		bookings = append(bookings, r.all[i])
	}
	return bookings, nil
}

var (
	_ UserRepository    = (*MemoryUserRepository)(nil)
	_ BookingRepository = (*MemoryBookingRepository)(nil)
)
