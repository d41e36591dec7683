package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fadehouse/booking-service/internal/domain"
	"github.com/fadehouse/booking-service/internal/integrations/userservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindConflict(ctx context.Context, barberID uuid.UUID, date time.Time, slotTime string) (*domain.Booking, error)
}

// CatalogRepository интерфейс read-only каталога барберов и услуг
type CatalogRepository interface {
	GetBarberByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error)
	GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// UserServiceClient интерфейс клиента профильного сервиса
type UserServiceClient interface {
	GetUserWithGracefulDegradation(ctx context.Context, userID uuid.UUID) (*userservice.User, error)
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
