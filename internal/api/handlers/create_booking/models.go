package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/fadehouse/booking-service/internal/domain"
	createBooking "github.com/fadehouse/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BarberID  string `json:"barberId"`
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"` // "2025-10-15"
	Time      string `json:"time"` // "10:00 AM"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	BarberID  uuid.UUID `json:"barberId"`
	ServiceID uuid.UUID `json:"serviceId"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`

	BarberName      string  `json:"barberName"`
	BarberAvatar    *string `json:"barberAvatar,omitempty"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	ServiceDuration string  `json:"serviceDuration"`
	UserName        string  `json:"userName,omitempty"`
	UserEmail       string  `json:"userEmail,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID uuid.UUID) (*createBooking.Request, error) {
	barberID, err := uuid.Parse(r.BarberID)
	if err != nil {
		return nil, errInvalidBarberID
	}

	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, errInvalidServiceID
	}

	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, errInvalidDate
	}

	return &createBooking.Request{
		UserID:    userID,
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
		SlotTime:  r.Time,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		BarberID:        resp.BarberID,
		ServiceID:       resp.ServiceID,
		Date:            resp.BookingDate.Format(domain.DateFormat),
		Time:            resp.SlotTime,
		Status:          resp.Status,
		BarberName:      resp.BarberName,
		BarberAvatar:    resp.BarberAvatar,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		ServiceDuration: resp.ServiceDuration,
		UserName:        resp.UserName,
		UserEmail:       resp.UserEmail,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
