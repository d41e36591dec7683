package list_services

import (
	"context"

	"github.com/fadehouse/booking-service/internal/domain"
)

type CatalogRepository interface {
	ListServices(ctx context.Context) ([]*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
