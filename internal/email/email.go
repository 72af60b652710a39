package email

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ms-shaziya7/capture-moments/internal/kafka"
)

// Sender writes notification emails. Delivery is a log line until a mail
// provider is configured.
type Sender struct {
	logger *log.Logger
}

// NewSender logs deliveries to logger, or to the standard logger when nil so
// they follow whatever output logging.Setup installed.
func NewSender(logger *log.Logger) *Sender {
	if logger == nil {
		logger = log.Default()
	}
	return &Sender{logger: logger}
}

func (s *Sender) SendBooking(_ context.Context, event kafka.BookingEvent) error {
	s.logger.Printf("send email to %s: %s booking %s on %s at %s, price %d, status %s",
		event.UserEmail, event.EventType, event.BookingID, event.BookingDate, event.Location, event.Price, event.Status)
	return nil
}

func (s *Sender) SendAccount(_ context.Context, event kafka.AccountEvent) error {
	var subject string
	switch event.Type {
	case kafka.EventUserRegistered:
		subject = "welcome to Capture Moments"
	case kafka.EventPasswordResetRequested:
		subject = "password reset requested"
	default:
		subject = event.Type
	}
	s.logger.Printf("send email to %s: %s", event.Email, subject)
	return nil
}

// Handle decodes a notification payload and dispatches it by event type.
// Malformed or unknown payloads are logged and skipped.
func (s *Sender) Handle(ctx context.Context, payload []byte) error {
	var env kafka.Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		log.Printf("decode event error: %v", err)
		return nil
	}

	switch env.Type {
	case kafka.EventBookingCreated:
		var event kafka.BookingEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			log.Printf("decode booking event error: %v", err)
			return nil
		}
		return s.SendBooking(ctx, event)
	case kafka.EventUserRegistered, kafka.EventPasswordResetRequested:
		var event kafka.AccountEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			log.Printf("decode account event error: %v", err)
			return nil
		}
		return s.SendAccount(ctx, event)
	default:
		log.Printf("skip unknown event type %q", env.Type)
		return nil
	}
}
