package get_available_slots

import (
	"context"
	"fmt"

	"github.com/fadehouse/booking-service/internal/domain"
)

// UseCase use case получения доступных слотов на день
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Пересекает каноническую сетку слотов с активными бронированиями дня
// Чтение не линеаризуется с конкурентными записями: слот, показанный свободным,
// может быть занят мгновением позже — проигравший получит отказ при создании
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.BarberID != nil {
		uc.logger.Info("GetAvailableSlots: date=%s, barber=%s",
			req.Date.Format(domain.DateFormat), *req.BarberID)
	} else {
		uc.logger.Info("GetAvailableSlots: date=%s, no barber filter",
			req.Date.Format(domain.DateFormat))
	}

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Каноническая сетка слотов дня
	grid := domain.GenerateDailySlots()

	// 3. Активные бронирования на этот календарный день
	bookings, err := uc.bookingRepo.ListForDay(ctx, req.Date, req.BarberID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 4. Отмечаем занятые слоты
	slots := markTakenSlots(grid, bookings, req.BarberID)

	uc.logger.Info("GetAvailableSlots: resolved %d slots (%d bookings) for date=%s",
		len(slots), len(bookings), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:     req.Date,
		BarberID: req.BarberID,
		Slots:    slots,
	}, nil
}
