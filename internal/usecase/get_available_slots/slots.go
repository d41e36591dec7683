package get_available_slots

import (
	"github.com/google/uuid"

	"github.com/fadehouse/booking-service/internal/domain"
)

// markTakenSlots отмечает занятыми слоты сетки, на которые есть активные бронирования
//
// Семантика фильтра по барберу:
// - фильтр задан: слот занят, только если бронирование принадлежит этому барберу;
// - фильтр не задан: слот блокируется ЛЮБЫМ активным бронированием на это время
//   (семантика "глобально заблокированного слота" до выбора барбера)
//
// Бронирование с меткой времени вне сетки молча игнорируется: это проблема
// целостности данных, а не ошибка запроса
func markTakenSlots(grid []domain.TimeSlot, bookings []*domain.Booking, barberID *uuid.UUID) []Slot {
	slots := make([]Slot, len(grid))
	for i, s := range grid {
		slots[i] = Slot{
			ID:        s.ID,
			Label:     s.Label,
			Available: s.Available,
		}
	}

	for _, booking := range bookings {
		idx := domain.SlotIndex(booking.SlotTime)
		if idx < 0 {
			continue
		}
		if barberID != nil && booking.BarberID != *barberID {
			continue
		}
		slots[idx].Available = false
	}

	return slots
}
