package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fadehouse/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error)
	FindConflict(ctx context.Context, barberID uuid.UUID, date time.Time, slotTime string) (*domain.Booking, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.BookingPatch) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
}

// CatalogRepository интерфейс read-only каталога барберов и услуг
type CatalogRepository interface {
	GetBarberByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error)
	GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
