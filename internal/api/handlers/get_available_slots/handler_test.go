package get_available_slots_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	getAvailableSlotsHandler "github.com/fadehouse/booking-service/internal/api/handlers/get_available_slots"
	getAvailableSlots "github.com/fadehouse/booking-service/internal/usecase/get_available_slots"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*getAvailableSlots.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc *mockUseCase) *mux.Router {
	h := getAvailableSlotsHandler.NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/slots/{date}", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_SlotArray(t *testing.T) {
	uc := new(mockUseCase)
	router := newRouter(uc)

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getAvailableSlots.Request) bool {
		return req.Date.Format("2006-01-02") == "2025-10-15" && req.BarberID == nil
	})).Return(&getAvailableSlots.Response{
		Slots: []getAvailableSlots.Slot{
			{ID: "1", Label: "9:00 AM", Available: true},
			{ID: "2", Label: "9:30 AM", Available: false},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/slots/2025-10-15", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var slots []getAvailableSlotsHandler.SlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slots))
	require.Len(t, slots, 2)
	assert.Equal(t, "9:00 AM", slots[0].Time)
	assert.True(t, slots[0].Available)
	assert.False(t, slots[1].Available)
}

func TestHandle_BarberFilter(t *testing.T) {
	uc := new(mockUseCase)
	router := newRouter(uc)

	barberID := uuid.New()
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getAvailableSlots.Request) bool {
		return req.BarberID != nil && *req.BarberID == barberID
	})).Return(&getAvailableSlots.Response{Slots: []getAvailableSlots.Slot{}}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/bookings/slots/2025-10-15?barberId="+barberID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandle_InvalidDate(t *testing.T) {
	uc := new(mockUseCase)
	router := newRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/slots/15-10-2025", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_InvalidBarberID(t *testing.T) {
	uc := new(mockUseCase)
	router := newRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/slots/2025-10-15?barberId=banana", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
