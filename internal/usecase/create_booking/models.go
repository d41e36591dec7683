package create_booking

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    uuid.UUID // ID аутентифицированного пользователя (из auth-контекста)
	BarberID  uuid.UUID
	ServiceID uuid.UUID
	Date      time.Time // Дата бронирования (без времени)
	SlotTime  string    // Метка слота из фиксированной сетки, например "10:00 AM"
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	BarberID    uuid.UUID
	ServiceID   uuid.UUID
	BookingDate time.Time
	SlotTime    string
	Status      string

	// Денормализованные данные для немедленного отображения в UI
	BarberName      string
	BarberAvatar    *string
	ServiceName     string
	ServicePrice    float64
	ServiceDuration string
	UserName        string
	UserEmail       string

	CreatedAt time.Time
	UpdatedAt time.Time
}
