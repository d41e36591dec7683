package get_service

import (
	"context"

	"github.com/google/uuid"

	"github.com/fadehouse/booking-service/internal/domain"
)

type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
