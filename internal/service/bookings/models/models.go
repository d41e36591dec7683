package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/fadehouse/booking-service/internal/domain"
)

// Request модели

// GetBookingRequest запрос на получение бронирования
type GetBookingRequest struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID uuid.UUID
}

// UpdateBookingRequest запрос на изменение бронирования.
// Все поля опциональны - обновляются только переданные
type UpdateBookingRequest struct {
	BookingID uuid.UUID
	UserID    uuid.UUID

	Date      *time.Time
	SlotTime  *string
	BarberID  *uuid.UUID
	ServiceID *uuid.UUID
	Status    *string
}

// ToDomainPatch конвертирует request в domain патч
func (r *UpdateBookingRequest) ToDomainPatch() domain.BookingPatch {
	patch := domain.BookingPatch{
		SlotTime:  r.SlotTime,
		BarberID:  r.BarberID,
		ServiceID: r.ServiceID,
	}
	if r.Date != nil {
		normalized := domain.NormalizeDate(*r.Date)
		patch.Date = &normalized
	}
	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	BarberID    uuid.UUID `json:"barberId"`
	ServiceID   uuid.UUID `json:"serviceId"`
	BookingDate string    `json:"date"` // "2025-10-15"
	SlotTime    string    `json:"time"` // "10:00 AM"
	Status      string    `json:"status"`

	// Денормализованные данные каталога
	BarberName      string  `json:"barberName"`
	BarberAvatar    *string `json:"barberAvatar,omitempty"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	ServiceDuration string  `json:"serviceDuration"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		BarberID:        b.BarberID,
		ServiceID:       b.ServiceID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		SlotTime:        b.SlotTime,
		Status:          string(b.Status),
		BarberName:      b.BarberName,
		BarberAvatar:    b.BarberAvatar,
		ServiceName:     b.ServiceName,
		ServicePrice:    b.ServicePrice,
		ServiceDuration: b.ServiceDuration,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		if resp := FromDomainBooking(b); resp != nil {
			result.Bookings = append(result.Bookings, *resp)
		}
	}
	return result
}
