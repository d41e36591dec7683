package get_booking

import (
	"context"

	"github.com/fadehouse/booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetByID(ctx context.Context, req *models.GetBookingRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
