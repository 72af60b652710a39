package kafka

import "time"

const (
	EventBookingCreated         = "booking_created"
	EventUserRegistered         = "user_registered"
	EventPasswordResetRequested = "password_reset_requested"
)

// HeaderEventType names the message header holding the event type.
const HeaderEventType = "event_type"

// Envelope is decoded first so consumers can dispatch on Type.
type Envelope struct {
	Type string `json:"type"`
}

type BookingEvent struct {
	Type        string    `json:"type"`
	BookingID   string    `json:"booking_id"`
	UserEmail   string    `json:"user_email"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	BookingDate string    `json:"booking_date"`
	EventType   string    `json:"event_type"`
	Price       int       `json:"price"`
	Status      string    `json:"status"`
	BookingTime time.Time `json:"booking_time"`
}

type AccountEvent struct {
	Type       string    `json:"type"`
	Email      string    `json:"email"`
	Name       string    `json:"name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
