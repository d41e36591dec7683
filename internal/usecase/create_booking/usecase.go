package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadehouse/booking-service/internal/domain"
	"github.com/fadehouse/booking-service/internal/infra/storage/booking"
	"github.com/fadehouse/booking-service/internal/infra/storage/catalog"
	"github.com/fadehouse/booking-service/internal/integrations/userservice"
)

// UseCase создаёт бронирование слота у барбера
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	userClient  UserServiceClient
	txManager   TransactionManager
	log         Logger
}

func New(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	log Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		userClient:  userClient,
		txManager:   txManager,
		log:         log,
	}
}

// Execute создаёт новое бронирование.
// Проверка занятости слота и вставка выполняются в одной serializable-транзакции,
// поэтому два конкурентных запроса на один слот не могут пройти одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	barber, err := uc.catalogRepo.GetBarberByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, catalog.ErrBarberNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrBarberNotFound, req.BarberID)
		}
		uc.log.Error("create_booking: Execute - failed to get barber %s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: Execute - get barber: %v", ErrInternal, err)
	}

	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrServiceNotFound, req.ServiceID)
		}
		uc.log.Error("create_booking: Execute - failed to get service %s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: Execute - get service: %v", ErrInternal, err)
	}

	// Профиль подтягиваем для отображения; при деградации сервиса
	// бронирование всё равно создаём
	user, err := uc.userClient.GetUserWithGracefulDegradation(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userservice.ErrServiceDegraded) {
			uc.log.Warn("create_booking: Execute - user service degraded for %s: %v", req.UserID, err)
		}
		user = nil
	}

	bookingDate := domain.NormalizeDate(req.Date)

	newBooking := &domain.Booking{
		UserID:      req.UserID,
		BarberID:    req.BarberID,
		ServiceID:   req.ServiceID,
		BookingDate: bookingDate,
		SlotTime:    req.SlotTime,
		Status:      domain.StatusUpcoming,
	}

	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		_, findErr := uc.bookingRepo.FindConflict(txCtx, req.BarberID, bookingDate, req.SlotTime)
		if findErr == nil {
			return ErrSlotTaken
		}
		if !errors.Is(findErr, booking.ErrBookingNotFound) {
			return fmt.Errorf("%w: Execute - find conflict: %v", ErrInternal, findErr)
		}

		var createErr error
		created, createErr = uc.bookingRepo.Create(txCtx, newBooking)
		if createErr != nil {
			if errors.Is(createErr, booking.ErrSlotTaken) {
				return ErrSlotTaken
			}
			return fmt.Errorf("%w: Execute - create booking: %v", ErrInternal, createErr)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return nil, err
		}
		if errors.Is(err, ErrInternal) {
			uc.log.Error("create_booking: Execute - transaction failed: %v", err)
			return nil, err
		}
		uc.log.Error("create_booking: Execute - transaction failed: %v", err)
		return nil, fmt.Errorf("%w: Execute - transaction: %v", ErrInternal, err)
	}

	uc.log.Info("create_booking: Execute - booking %s created for user %s (barber %s, %s %s)",
		created.ID, created.UserID, created.BarberID, created.BookingDate.Format(domain.DateFormat), created.SlotTime)

	resp := &Response{
		ID:              created.ID,
		UserID:          created.UserID,
		BarberID:        created.BarberID,
		ServiceID:       created.ServiceID,
		BookingDate:     created.BookingDate,
		SlotTime:        created.SlotTime,
		Status:          string(created.Status),
		BarberName:      barber.Name,
		BarberAvatar:    barber.Avatar,
		ServiceName:     service.Name,
		ServicePrice:    service.Price,
		ServiceDuration: service.Duration,
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}
	if user != nil {
		resp.UserName = user.Name
		resp.UserEmail = user.Email
	}

	return resp, nil
}
