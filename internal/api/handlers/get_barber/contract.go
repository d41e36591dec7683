package get_barber

import (
	"context"

	"github.com/google/uuid"

	"github.com/fadehouse/booking-service/internal/domain"
)

type CatalogRepository interface {
	GetBarberByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
