package list_services

import (
	"github.com/google/uuid"

	"github.com/fadehouse/booking-service/internal/domain"
)

// ServiceResponse HTTP модель услуги
type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Duration    string    `json:"duration"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Duration:    s.Duration,
		Price:       s.Price,
		Description: s.Description,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		result = append(result, FromDomainService(s))
	}
	return result
}
