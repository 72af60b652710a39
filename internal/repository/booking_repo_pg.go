package repository

import (
	"context"

	"github.com/ms-shaziya7/capture-moments/internal/domain"
)

type PGBookingRepository struct {
	db PgxPool
}

func NewBookingRepository(db PgxPool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	res, err := r.db.Exec(ctx, `INSERT INTO bookings (booking_id, user_email, name, location, booking_date, event_type, price, status, booking_time, photographer_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (booking_id) DO NOTHING`,
		booking.ID, booking.UserEmail, booking.Name, booking.Location, booking.BookingDate,
		string(booking.EventType), booking.Price, string(booking.Status), booking.BookingTime, booking.PhotographerName)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrAlreadyExists
	}
	return nil
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, email string) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT booking_id, user_email, name, location, booking_date, event_type, price, status, booking_time, photographer_name
		FROM bookings WHERE user_email=$1 ORDER BY booking_date DESC, booking_time DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var (
			b         domain.Booking
			eventType string
			status    string
		)
		if err := rows.Scan(&b.ID, &b.UserEmail, &b.Name, &b.Location, &b.BookingDate, &eventType, &b.Price, &status, &b.BookingTime, &b.PhotographerName); err != nil {
			return nil, err
		}
		b.EventType = domain.EventType(eventType)
		b.Status = domain.BookingStatus(status)
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
