package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ms-shaziya7/capture-moments/internal/domain"
	"github.com/ms-shaziya7/capture-moments/internal/kafka"
	"github.com/ms-shaziya7/capture-moments/internal/repository"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, sess domain.Session, input CreateBookingInput) (*domain.Booking, error)
	ListBookingsForUser(ctx context.Context, sess domain.Session) ([]domain.Booking, error)
}

// Cache is an optional read-through store for booking history. A fill only
// lands if no invalidation happened since the generation was read.
type Cache interface {
	GetBookings(ctx context.Context, email string) ([]domain.Booking, error)
	HistoryGeneration(ctx context.Context, email string) (int64, error)
	SetBookings(ctx context.Context, email string, generation int64, bookings []domain.Booking) (bool, error)
	InvalidateBookings(ctx context.Context, email string) error
}

type Producer interface {
	PublishBooking(ctx context.Context, topic string, event kafka.BookingEvent) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	now                func() time.Time
	newID              func() string
}

type CreateBookingInput struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	Date      string `json:"date"`
	EventType string `json:"type"`
}

type BookingServiceOption func(*BookingService)

func WithCache(cache Cache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
	}
}

func WithProducer(producer Producer, bookingTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(bookings repository.BookingRepository, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings: bookings,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, sess domain.Session, input CreateBookingInput) (*domain.Booking, error) {
	if !sess.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}

	eventType := domain.EventType(input.EventType)
	booking := &domain.Booking{
		ID:               s.generateID(),
		UserEmail:        sess.UserEmail,
		Name:             input.Name,
		Location:         input.Location,
		BookingDate:      input.Date,
		EventType:        eventType,
		Price:            domain.PriceFor(eventType),
		Status:           domain.BookingStatusPending,
		BookingTime:      s.clock(),
		PhotographerName: domain.PhotographerPlaceholder,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateBookings(ctx, booking.UserEmail); err != nil {
			log.Printf("invalidate history cache for %s: %v", booking.UserEmail, err)
		}
	}
	if err := s.publish(ctx, kafka.EventBookingCreated, booking); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", kafka.EventBookingCreated, booking.ID, err)
	}
	return booking, nil
}

func (s *BookingService) ListBookingsForUser(ctx context.Context, sess domain.Session) ([]domain.Booking, error) {
	if !sess.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}

	fill := false
	var generation int64
	if s.cache != nil {
		if cached, err := s.cache.GetBookings(ctx, sess.UserEmail); err == nil && cached != nil {
			return cached, nil
		}
		gen, err := s.cache.HistoryGeneration(ctx, sess.UserEmail)
		if err != nil {
			log.Printf("read history generation for %s: %v", sess.UserEmail, err)
		} else {
			fill, generation = true, gen
		}
	}

	stored, err := s.bookings.ListByUser(ctx, sess.UserEmail)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	bookings := make([]domain.Booking, 0, len(stored))
	for _, b := range stored {
		if b.UserEmail == sess.UserEmail {
			bookings = append(bookings, b)
		}
	}
	domain.SortBookings(bookings)

	if fill {
		if _, err := s.cache.SetBookings(ctx, sess.UserEmail, generation, bookings); err != nil {
			log.Printf("fill history cache for %s: %v", sess.UserEmail, err)
		}
	}
	return bookings, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		BookingID:   booking.ID,
		UserEmail:   booking.UserEmail,
		Name:        booking.Name,
		Location:    booking.Location,
		BookingDate: booking.BookingDate,
		EventType:   string(booking.EventType),
		Price:       booking.Price,
		Status:      string(booking.Status),
		BookingTime: booking.BookingTime,
	}
	if err := s.producer.PublishBooking(ctx, s.bookingTopic, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.PublishBooking(ctx, s.notificationsTopic, event)
	}
	return nil
}

func (s *BookingService) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

func (s *BookingService) generateID() string {
	if s.newID == nil {
		return uuid.NewString()
	}
	return s.newID()
}

var _ BookingUseCase = (*BookingService)(nil)
