package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ms-shaziya7/capture-moments/internal/domain"
	"github.com/ms-shaziya7/capture-moments/internal/kafka"
	"github.com/ms-shaziya7/capture-moments/internal/repository"
)

type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	ForgotPassword(ctx context.Context, email string) error
}

type Producer interface {
	PublishAccount(ctx context.Context, topic string, event kafka.AccountEvent) error
}

type SignupInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type AuthService struct {
	users              repository.UserRepository
	producer           Producer
	notificationsTopic string
	cost               int
	now                func() time.Time
}

type AuthServiceOption func(*AuthService)

func WithProducer(producer Producer, notificationsTopic string) AuthServiceOption {
	return func(s *AuthService) {
		s.producer = producer
		s.notificationsTopic = notificationsTopic
	}
}

// WithBcryptCost overrides bcrypt.DefaultCost; out-of-range values fall back to it.
func WithBcryptCost(cost int) AuthServiceOption {
	return func(s *AuthService) {
		s.cost = cost
	}
}

func WithClock(now func() time.Time) AuthServiceOption {
	return func(s *AuthService) {
		s.now = now
	}
}

func NewAuthService(users repository.UserRepository, opts ...AuthServiceOption) *AuthService {
	service := &AuthService{
		users: users,
		cost:  bcrypt.DefaultCost,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	if service.cost < bcrypt.MinCost || service.cost > bcrypt.MaxCost {
		service.cost = bcrypt.DefaultCost
	}
	return service
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Session{}, domain.ErrInvalidCredentials
		}
		return domain.Session{}, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	return domain.Session{
		LoggedIn:  true,
		UserEmail: user.Email,
		UserName:  user.Name,
	}, nil
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	if input.Password != input.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	_, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return nil, domain.ErrDuplicateEmail
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}

	// The existence check above is advisory; Create is the conditional write.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	s.publish(ctx, kafka.AccountEvent{
		Type:       kafka.EventUserRegistered,
		Email:      user.Email,
		Name:       user.Name,
		OccurredAt: user.CreatedAt,
	})
	return user, nil
}

// ForgotPassword only acknowledges the request; no reset token is issued.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrEmailNotFound
		}
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	s.publish(ctx, kafka.AccountEvent{
		Type:       kafka.EventPasswordResetRequested,
		Email:      user.Email,
		Name:       user.Name,
		OccurredAt: s.now(),
	})
	return nil
}

// Seed creates the given accounts unless they already exist.
func (s *AuthService) Seed(ctx context.Context, users ...SignupInput) error {
	for _, u := range users {
		u.ConfirmPassword = u.Password
		if _, err := s.Signup(ctx, u); err != nil && !errors.Is(err, domain.ErrDuplicateEmail) {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}
	return nil
}

func (s *AuthService) publish(ctx context.Context, event kafka.AccountEvent) {
	if s.producer == nil || s.notificationsTopic == "" {
		return
	}
	if err := s.producer.PublishAccount(ctx, s.notificationsTopic, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for %s: %v", event.Type, event.Email, err)
	}
}

var _ AuthUseCase = (*AuthService)(nil)
