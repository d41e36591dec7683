package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadehouse/booking-service/internal/domain"
	bookingRepo "github.com/fadehouse/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/fadehouse/booking-service/internal/infra/storage/catalog"
	"github.com/fadehouse/booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, req *models.GetBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", req.BookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", req.BookingID)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя,
// отсортированную по дате бронирования по убыванию
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s", req.UserID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Update изменяет бронирование. Обновляются только переданные поля.
// Если меняется барбер, дата или слот - занятость нового слота перепроверяется
// в serializable-транзакции
func (s *Service) Update(ctx context.Context, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%s by user=%s", req.BookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID {
		s.logger.Warn("Update: access denied for user=%s to booking id=%s", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	patch := req.ToDomainPatch()
	if patch.IsEmpty() {
		s.logger.Warn("Update: empty patch for booking id=%s", req.BookingID)
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	if err := s.validatePatch(ctx, patch); err != nil {
		return nil, err
	}

	if !booking.CanBeUpdated() {
		s.logger.Warn("Update: booking id=%s cannot be updated, status=%s", req.BookingID, booking.Status)
		return nil, ErrCannotUpdate
	}

	if patch.TouchesSlot() {
		err = s.updateWithSlotCheck(ctx, booking, patch)
	} else {
		err = s.bookingRepo.Update(ctx, req.BookingID, patch)
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotTaken):
			return nil, ErrSlotTaken
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			s.logger.Warn("Update: target slot taken for booking id=%s", req.BookingID)
			return nil, ErrSlotTaken
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("Update: booking id=%s not found during update", req.BookingID)
			return nil, ErrBookingNotFound
		default:
			s.logger.Error("Update: repository error for booking id=%s: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	// Перечитываем бронирование, чтобы вернуть актуальные данные каталога
	updated, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		s.logger.Error("Update: failed to reload booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Update - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking id=%s", req.BookingID)
	return models.FromDomainBooking(updated), nil
}

// Cancel отменяет бронирование пользователя.
// Повторная отмена уже отменённого бронирования считается успехом
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", req.BookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", req.BookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", req.BookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%s to booking id=%s", req.UserID, req.BookingID)
		return ErrAccessDenied
	}

	if booking.IsCancelled() {
		s.logger.Info("Cancel: booking id=%s already cancelled", req.BookingID)
		return nil
	}

	if err := s.bookingRepo.UpdateStatus(ctx, req.BookingID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found during cancellation", req.BookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", req.BookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", req.BookingID)
	return nil
}

// Вспомогательные методы

// validatePatch проверяет значения патча и существование ссылок на каталог
func (s *Service) validatePatch(ctx context.Context, patch domain.BookingPatch) error {
	if patch.SlotTime != nil && !domain.IsValidSlotLabel(*patch.SlotTime) {
		return fmt.Errorf("%w: unknown slot time %q", ErrInvalidInput, *patch.SlotTime)
	}
	if patch.Status != nil && !domain.IsValidStatus(string(*patch.Status)) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *patch.Status)
	}

	if patch.BarberID != nil {
		if _, err := s.catalogRepo.GetBarberByID(ctx, *patch.BarberID); err != nil {
			if errors.Is(err, catalogRepo.ErrBarberNotFound) {
				s.logger.Warn("validatePatch: barber id=%s not found", *patch.BarberID)
				return ErrBarberNotFound
			}
			s.logger.Error("validatePatch: failed to get barber id=%s: %v", *patch.BarberID, err)
			return fmt.Errorf("%w: validatePatch - get barber: %v", ErrInternal, err)
		}
	}

	if patch.ServiceID != nil {
		if _, err := s.catalogRepo.GetServiceByID(ctx, *patch.ServiceID); err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				s.logger.Warn("validatePatch: service id=%s not found", *patch.ServiceID)
				return ErrServiceNotFound
			}
			s.logger.Error("validatePatch: failed to get service id=%s: %v", *patch.ServiceID, err)
			return fmt.Errorf("%w: validatePatch - get service: %v", ErrInternal, err)
		}
	}

	return nil
}

// updateWithSlotCheck применяет патч, перепроверяя занятость целевого слота
// в одной serializable-транзакции с обновлением
func (s *Service) updateWithSlotCheck(ctx context.Context, booking *domain.Booking, patch domain.BookingPatch) error {
	targetBarber := booking.BarberID
	if patch.BarberID != nil {
		targetBarber = *patch.BarberID
	}
	targetDate := booking.BookingDate
	if patch.Date != nil {
		targetDate = *patch.Date
	}
	targetSlot := booking.SlotTime
	if patch.SlotTime != nil {
		targetSlot = *patch.SlotTime
	}

	// Слот фактически не меняется - конфликт искать не с кем
	sameSlot := targetBarber == booking.BarberID &&
		targetDate.Equal(booking.BookingDate) &&
		targetSlot == booking.SlotTime
	if sameSlot {
		return s.bookingRepo.Update(ctx, booking.ID, patch)
	}

	return s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		conflict, err := s.bookingRepo.FindConflict(txCtx, targetBarber, targetDate, targetSlot)
		if err == nil && conflict.ID != booking.ID {
			return ErrSlotTaken
		}
		if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return fmt.Errorf("find conflict: %w", err)
		}

		return s.bookingRepo.Update(txCtx, booking.ID, patch)
	})
}
