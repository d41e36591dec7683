package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fadehouse/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListForDay получает все активные бронирования на календарный день,
	// опционально отфильтрованные по барберу
	ListForDay(ctx context.Context, date time.Time, barberID *uuid.UUID) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
