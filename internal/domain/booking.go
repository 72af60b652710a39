package domain

import (
	"sort"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "Pending"
	BookingStatusUpcoming BookingStatus = "Upcoming"
)

type EventType string

const (
	EventTypeWedding   EventType = "Wedding"
	EventTypeEvents    EventType = "Events"
	EventTypeBirthday  EventType = "Birthday"
	EventTypeTour      EventType = "Tour"
	EventTypeWildlife  EventType = "Wildlife"
	EventTypeAdventure EventType = "Adventure"
)

// DefaultPrice applies to event types missing from the price table.
const DefaultPrice = 5000

// PhotographerPlaceholder is shown until a photographer is assigned.
const PhotographerPlaceholder = "Assigned Soon"

// BookingDateLayout is the calendar date format of Booking.BookingDate.
const BookingDateLayout = "2006-01-02"

var eventPrices = map[EventType]int{
	EventTypeWedding:   25000,
	EventTypeEvents:    15000,
	EventTypeBirthday:  10000,
	EventTypeTour:      12000,
	EventTypeWildlife:  20000,
	EventTypeAdventure: 18000,
}

// EventTypes lists the known event types in display order.
func EventTypes() []EventType {
	return []EventType{
		EventTypeWedding,
		EventTypeEvents,
		EventTypeBirthday,
		EventTypeTour,
		EventTypeWildlife,
		EventTypeAdventure,
	}
}

// PriceFor never fails: unknown types cost DefaultPrice.
func PriceFor(t EventType) int {
	if p, ok := eventPrices[t]; ok {
		return p
	}
	return DefaultPrice
}

type Booking struct {
	ID               string        `json:"booking_id"`
	UserEmail        string        `json:"user_email"`
	Name             string        `json:"name"`
	Location         string        `json:"location"`
	BookingDate      string        `json:"booking_date"`
	EventType        EventType     `json:"event_type"`
	Price            int           `json:"price"`
	Status           BookingStatus `json:"status"`
	BookingTime      time.Time     `json:"booking_time"`
	PhotographerName string        `json:"photographer_name"`
}

// SortBookings orders history newest first: booking date, then creation time,
// then id, all descending.
func SortBookings(bookings []Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if a.BookingDate != b.BookingDate {
			return a.BookingDate > b.BookingDate
		}
		if !a.BookingTime.Equal(b.BookingTime) {
			return a.BookingTime.After(b.BookingTime)
		}
		return a.ID > b.ID
	})
}
