package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ms-shaziya7/capture-moments/internal/domain"
	"github.com/ms-shaziya7/capture-moments/internal/service/auth"
	"github.com/ms-shaziya7/capture-moments/internal/service/booking"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (domain.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockAuthUseCase) Signup(ctx context.Context, input auth.SignupInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, sess domain.Session, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, sess, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListBookingsForUser(ctx context.Context, sess domain.Session) ([]domain.Booking, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Load(r *http.Request) domain.Session {
	args := m.Called(r)
	return args.Get(0).(domain.Session)
}

func (m *MockSessionStore) Save(w http.ResponseWriter, r *http.Request, sess domain.Session) error {
	args := m.Called(w, r, sess)
	return args.Error(0)
}

func (m *MockSessionStore) Clear(w http.ResponseWriter, r *http.Request) error {
	args := m.Called(w, r)
	return args.Error(0)
}

var alice = domain.Session{LoggedIn: true, UserEmail: "alice@x.com", UserName: "Alice"}

type testDeps struct {
	auth     *MockAuthUseCase
	bookings *MockBookingUseCase
	sessions *MockSessionStore
	router   *gin.Engine
}

func newTestDeps(sess domain.Session) *testDeps {
	gin.SetMode(gin.TestMode)

	d := &testDeps{
		auth:     &MockAuthUseCase{},
		bookings: &MockBookingUseCase{},
		sessions: &MockSessionStore{},
	}
	d.sessions.On("Load", mock.Anything).Return(sess)
	d.router = NewRouter(RouterConfig{
		Auth:           d.auth,
		Bookings:       d.bookings,
		Sessions:       d.sessions,
		RequestTimeout: time.Second,
	})
	return d
}

func (d *testDeps) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func (d *testDeps) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	d.router.ServeHTTP(w, req)
	return w
}

func (d *testDeps) postJSON(path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	d.router.ServeHTTP(w, req)
	return w
}

type testView struct {
	Page     string                 `json:"page"`
	Message  string                 `json:"message"`
	Category string                 `json:"category"`
	Data     map[string]interface{} `json:"data"`
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) testView {
	t.Helper()
	var v testView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
