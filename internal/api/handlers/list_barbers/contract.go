package list_barbers

import (
	"context"

	"github.com/fadehouse/booking-service/internal/domain"
)

type CatalogRepository interface {
	ListBarbers(ctx context.Context) ([]*domain.Barber, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
