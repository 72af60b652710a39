package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ms-shaziya7/capture-moments/internal/domain"
)

var bookingColumns = []string{"booking_id", "user_email", "name", "location", "booking_date", "event_type", "price", "status", "booking_time", "photographer_name"}

func TestNewBookingRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBookingRepository(mock)
	assert.NotNil(t, repo)
}

func TestPGBookingRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	b := &domain.Booking{
		ID:               "b-1",
		UserEmail:        "alice@x.com",
		Name:             "Alice",
		Location:         "Goa",
		BookingDate:      "2025-06-01",
		EventType:        domain.EventTypeWedding,
		Price:            25000,
		Status:           domain.BookingStatusPending,
		BookingTime:      time.Now(),
		PhotographerName: domain.PhotographerPlaceholder,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(b.ID, b.UserEmail, b.Name, b.Location, b.BookingDate, "Wedding", 25000, "Pending", pgxmock.AnyArg(), b.PhotographerName).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = NewBookingRepository(mock).Create(context.Background(), b)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGBookingRepository_Create_Conflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	err = NewBookingRepository(mock).Create(context.Background(), &domain.Booking{ID: "b-1"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestPGBookingRepository_Create_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	dbErr := errors.New("connection refused")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).WillReturnError(dbErr)

	err = NewBookingRepository(mock).Create(context.Background(), &domain.Booking{ID: "b-1"})
	assert.ErrorIs(t, err, dbErr)
}

func TestPGBookingRepository_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := pgxmock.NewRows(bookingColumns).
		AddRow("b-2", "alice@x.com", "Alice", "Goa", "2025-07-01", "Tour", 12000, "Pending", now, "Assigned Soon").
		AddRow("b-1", "alice@x.com", "Alice", "Pune", "2025-06-01", "Wedding", 25000, "Pending", now, "Assigned Soon")

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE user_email=$1")).
		WithArgs("alice@x.com").
		WillReturnRows(rows)

	bookings, err := NewBookingRepository(mock).ListByUser(context.Background(), "alice@x.com")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "b-2", bookings[0].ID)
	assert.Equal(t, domain.EventTypeTour, bookings[0].EventType)
	assert.Equal(t, 25000, bookings[1].Price)
	assert.Equal(t, domain.BookingStatusPending, bookings[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGUserRepository_GetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email=$1")).
		WithArgs("alice@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"email", "name", "password_hash", "created_at"}).
			AddRow("alice@x.com", "Alice", "hash", created))

	u, err := NewUserRepository(mock).GetByEmail(context.Background(), "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, created, u.CreatedAt)
}

func TestPGUserRepository_GetByEmail_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email=$1")).
		WithArgs("nobody@x.com").
		WillReturnError(pgx.ErrNoRows)

	u, err := NewUserRepository(mock).GetByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, u)
}

func TestPGUserRepository_Create_Duplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("alice@x.com", "Alice", "hash", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	err = NewUserRepository(mock).Create(context.Background(), &domain.User{Email: "alice@x.com", Name: "Alice", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestMigrate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS users")).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS bookings")).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX IF NOT EXISTS")).WillReturnResult(pgxmock.NewResult("CREATE", 0))

	assert.NoError(t, Migrate(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}
