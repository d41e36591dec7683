package update_booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fadehouse/booking-service/internal/domain"
	"github.com/fadehouse/booking-service/internal/service/bookings/models"
)

var (
	errInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	errInvalidBarberID  = errors.New("invalid barberId, expected UUID")
	errInvalidServiceID = errors.New("invalid serviceId, expected UUID")
)

// UpdateBookingRequest HTTP request model.
// Все поля опциональны - обновляются только переданные
type UpdateBookingRequest struct {
	Date      *string `json:"date,omitempty"`
	Time      *string `json:"time,omitempty"`
	BarberID  *string `json:"barberId,omitempty"`
	ServiceID *string `json:"serviceId,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBookingRequest) ToServiceRequest(bookingID, userID uuid.UUID) (*models.UpdateBookingRequest, error) {
	req := &models.UpdateBookingRequest{
		BookingID: bookingID,
		UserID:    userID,
		SlotTime:  r.Time,
		Status:    r.Status,
	}

	if r.Date != nil {
		date, err := time.ParseInLocation(domain.DateFormat, *r.Date, time.Local)
		if err != nil {
			return nil, errInvalidDate
		}
		req.Date = &date
	}

	if r.BarberID != nil {
		id, err := uuid.Parse(*r.BarberID)
		if err != nil {
			return nil, errInvalidBarberID
		}
		req.BarberID = &id
	}

	if r.ServiceID != nil {
		id, err := uuid.Parse(*r.ServiceID)
		if err != nil {
			return nil, errInvalidServiceID
		}
		req.ServiceID = &id
	}

	return req, nil
}
