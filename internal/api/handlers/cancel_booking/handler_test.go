package cancel_booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	cancelBookingHandler "github.com/fadehouse/booking-service/internal/api/handlers/cancel_booking"
	"github.com/fadehouse/booking-service/internal/api/middleware"
	"github.com/fadehouse/booking-service/internal/service/bookings"
	"github.com/fadehouse/booking-service/internal/service/bookings/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Cancel(ctx context.Context, req *models.CancelBookingRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(svc *mockService) *mux.Router {
	h := cancelBookingHandler.NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/bookings/{bookingId}", h.Handle).Methods(http.MethodDelete)
	return r
}

func doRequest(t *testing.T, router *mux.Router, userID, bookingID string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/"+bookingID, nil)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Cancelled(t *testing.T) {
	svc := new(mockService)
	router := newRouter(svc)

	userID := uuid.New()
	bookingID := uuid.New()

	svc.On("Cancel", mock.Anything, &models.CancelBookingRequest{
		BookingID: bookingID,
		UserID:    userID,
	}).Return(nil)

	rec := doRequest(t, router, userID.String(), bookingID.String())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Booking cancelled successfully")
	svc.AssertExpectations(t)
}

func TestHandle_NotFound(t *testing.T) {
	svc := new(mockService)
	router := newRouter(svc)

	svc.On("Cancel", mock.Anything, mock.Anything).
		Return(bookings.ErrBookingNotFound)

	rec := doRequest(t, router, uuid.NewString(), uuid.NewString())

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_NotOwnerLooksLikeNotFound(t *testing.T) {
	svc := new(mockService)
	router := newRouter(svc)

	svc.On("Cancel", mock.Anything, mock.Anything).
		Return(bookings.ErrAccessDenied)

	rec := doRequest(t, router, uuid.NewString(), uuid.NewString())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "booking not found")
}

func TestHandle_InvalidBookingID(t *testing.T) {
	svc := new(mockService)
	router := newRouter(svc)

	rec := doRequest(t, router, uuid.NewString(), "42")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	svc := new(mockService)
	router := newRouter(svc)

	rec := doRequest(t, router, "", uuid.NewString())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
}
