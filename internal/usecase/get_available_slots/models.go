package get_available_slots

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date     time.Time  // Дата, на которую запрашиваются слоты (без времени)
	BarberID *uuid.UUID // Опциональный фильтр по барберу
}

// Response модель ответа со списком слотов дня
type Response struct {
	Date     time.Time
	BarberID *uuid.UUID
	Slots    []Slot
}

// Slot временной слот с признаком доступности
type Slot struct {
	ID        string // Стабильный идентификатор слота в сетке ("1".."16")
	Label     string // Метка слота, например "10:00 AM"
	Available bool
}
