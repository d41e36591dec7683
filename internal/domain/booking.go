package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusUpcoming  BookingStatus = "upcoming"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents one appointment reservation in the system
type Booking struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	BarberID  uuid.UUID
	ServiceID uuid.UUID

	BookingDate time.Time // нормализована к локальной полуночи
	SlotTime    string    // метка слота из фиксированной сетки, например "10:00 AM"
	Status      BookingStatus

	// Read-side display data joined from the catalog
	BarberName      string
	BarberAvatar    *string
	ServiceName     string
	ServicePrice    float64
	ServiceDuration string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusUpcoming
}

// CanBeUpdated returns true if the booking can be rescheduled
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusUpcoming
}

// BookingPatch частичное обновление бронирования
// nil-поля сохраняют прежние значения
type BookingPatch struct {
	Date      *time.Time
	SlotTime  *string
	BarberID  *uuid.UUID
	ServiceID *uuid.UUID
	Status    *BookingStatus
}

// IsEmpty returns true if the patch changes nothing
func (p *BookingPatch) IsEmpty() bool {
	return p.Date == nil && p.SlotTime == nil && p.BarberID == nil &&
		p.ServiceID == nil && p.Status == nil
}

// TouchesSlot returns true if applying the patch may move the booking
// to a different (barber, date, time) triple
func (p *BookingPatch) TouchesSlot() bool {
	return p.Date != nil || p.SlotTime != nil || p.BarberID != nil
}

// NormalizeDate обнуляет время, оставляя календарный день (локальная полночь)
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay возвращает последний момент календарного дня (23:59:59.999)
func EndOfDay(t time.Time) time.Time {
	return NormalizeDate(t).Add(24*time.Hour - time.Millisecond)
}

// ValidStatuses список допустимых статусов бронирования
var ValidStatuses = []BookingStatus{
	StatusUpcoming,
	StatusCompleted,
	StatusCancelled,
}

// IsValidStatus проверяет, что строка является допустимым статусом
func IsValidStatus(s string) bool {
	for _, status := range ValidStatuses {
		if BookingStatus(s) == status {
			return true
		}
	}
	return false
}
