package list_barbers

import (
	"github.com/google/uuid"

	"github.com/fadehouse/booking-service/internal/domain"
)

// BarberResponse HTTP модель барбера
type BarberResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Avatar      *string   `json:"avatar,omitempty"`
	Specialties []string  `json:"specialties"`
	Rating      float64   `json:"rating"`
	Bio         string    `json:"bio"`
}

// FromDomainBarber конвертирует domain модель в DTO
func FromDomainBarber(b *domain.Barber) BarberResponse {
	return BarberResponse{
		ID:          b.ID,
		Name:        b.Name,
		Avatar:      b.Avatar,
		Specialties: b.Specialties,
		Rating:      b.Rating,
		Bio:         b.Bio,
	}
}

// FromDomainBarberList конвертирует список domain моделей в DTO
func FromDomainBarberList(barbers []*domain.Barber) []BarberResponse {
	result := make([]BarberResponse, 0, len(barbers))
	for _, b := range barbers {
		result = append(result, FromDomainBarber(b))
	}
	return result
}
