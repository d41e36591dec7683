package create_booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	createBookingHandler "github.com/fadehouse/booking-service/internal/api/handlers/create_booking"
	"github.com/fadehouse/booking-service/internal/api/middleware"
	createBooking "github.com/fadehouse/booking-service/internal/usecase/create_booking"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*createBooking.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc *mockUseCase) *mux.Router {
	h := createBookingHandler.NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/bookings", h.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, router *mux.Router, userID string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := new(mockUseCase)
	router := newRouter(uc)

	userID := uuid.New()
	barberID := uuid.New()
	serviceID := uuid.New()
	bookingID := uuid.New()

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.UserID == userID &&
			req.BarberID == barberID &&
			req.ServiceID == serviceID &&
			req.SlotTime == "10:00 AM"
	})).Return(&createBooking.Response{
		ID:          bookingID,
		UserID:      userID,
		BarberID:    barberID,
		ServiceID:   serviceID,
		BookingDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.Local),
		SlotTime:    "10:00 AM",
		Status:      "upcoming",
		BarberName:  "James Wilson",
	}, nil)

	body := `{"barberId":"` + barberID.String() + `","serviceId":"` + serviceID.String() +
		`","date":"2025-10-15","time":"10:00 AM"}`

	rec := doRequest(t, router, userID.String(), body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp createBookingHandler.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, bookingID, resp.ID)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Equal(t, "10:00 AM", resp.Time)
	assert.Equal(t, "upcoming", resp.Status)
	assert.Equal(t, "James Wilson", resp.BarberName)

	uc.AssertExpectations(t)
}

func TestHandle_SlotTaken(t *testing.T) {
	uc := new(mockUseCase)
	router := newRouter(uc)

	uc.On("Execute", mock.Anything, mock.Anything).
		Return(nil, createBooking.ErrSlotTaken)

	body := `{"barberId":"` + uuid.NewString() + `","serviceId":"` + uuid.NewString() +
		`","date":"2025-10-15","time":"10:00 AM"}`

	rec := doRequest(t, router, uuid.NewString(), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "slot already booked")
}

func TestHandle_BarberNotFound(t *testing.T) {
	uc := new(mockUseCase)
	router := newRouter(uc)

	uc.On("Execute", mock.Anything, mock.Anything).
		Return(nil, createBooking.ErrBarberNotFound)

	body := `{"barberId":"` + uuid.NewString() + `","serviceId":"` + uuid.NewString() +
		`","date":"2025-10-15","time":"10:00 AM"}`

	rec := doRequest(t, router, uuid.NewString(), body)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "barber not found")
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := new(mockUseCase)
	router := newRouter(uc)

	rec := doRequest(t, router, uuid.NewString(), `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_InvalidDate(t *testing.T) {
	uc := new(mockUseCase)
	router := newRouter(uc)

	body := `{"barberId":"` + uuid.NewString() + `","serviceId":"` + uuid.NewString() +
		`","date":"15.10.2025","time":"10:00 AM"}`

	rec := doRequest(t, router, uuid.NewString(), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid date")
}

func TestHandle_MissingUserHeader(t *testing.T) {
	uc := new(mockUseCase)
	router := newRouter(uc)

	rec := doRequest(t, router, "", `{}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_MalformedUserHeader(t *testing.T) {
	uc := new(mockUseCase)
	router := newRouter(uc)

	rec := doRequest(t, router, "not-a-uuid", `{}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
