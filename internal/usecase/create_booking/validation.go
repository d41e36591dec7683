package create_booking

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fadehouse/booking-service/internal/domain"
)

// validateRequest проверяет корректность запроса на создание бронирования
func validateRequest(req *Request) error {
	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if req.BarberID == uuid.Nil {
		return fmt.Errorf("%w: barber id is required", ErrInvalidInput)
	}
	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: booking date is required", ErrInvalidInput)
	}
	if req.SlotTime == "" {
		return fmt.Errorf("%w: slot time is required", ErrInvalidInput)
	}
	if !domain.IsValidSlotLabel(req.SlotTime) {
		return fmt.Errorf("%w: unknown slot time %q", ErrInvalidInput, req.SlotTime)
	}

	return nil
}
