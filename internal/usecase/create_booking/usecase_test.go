package create_booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fadehouse/booking-service/internal/domain"
	bookingRepo "github.com/fadehouse/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/fadehouse/booking-service/internal/infra/storage/catalog"
	"github.com/fadehouse/booking-service/internal/integrations/userservice"
	createBooking "github.com/fadehouse/booking-service/internal/usecase/create_booking"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) FindConflict(ctx context.Context, barberID uuid.UUID, date time.Time, slotTime string) (*domain.Booking, error) {
	args := m.Called(ctx, barberID, date, slotTime)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCatalogRepo struct {
	mock.Mock
}

func (m *mockCatalogRepo) GetBarberByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*domain.Barber), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*domain.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserClient struct {
	mock.Mock
}

func (m *mockUserClient) GetUserWithGracefulDegradation(ctx context.Context, userID uuid.UUID) (*userservice.User, error) {
	args := m.Called(ctx, userID)
	if u := args.Get(0); u != nil {
		return u.(*userservice.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// fakeTxManager выполняет замыкание напрямую, без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixtures struct {
	bookings *mockBookingRepo
	catalog  *mockCatalogRepo
	users    *mockUserClient
	uc       *createBooking.UseCase

	userID    uuid.UUID
	barberID  uuid.UUID
	serviceID uuid.UUID
	date      time.Time
}

func setup(t *testing.T) *fixtures {
	t.Helper()

	f := &fixtures{
		bookings:  new(mockBookingRepo),
		catalog:   new(mockCatalogRepo),
		users:     new(mockUserClient),
		userID:    uuid.New(),
		barberID:  uuid.New(),
		serviceID: uuid.New(),
		date:      time.Date(2025, 10, 15, 14, 30, 0, 0, time.Local),
	}
	f.uc = createBooking.New(f.bookings, f.catalog, f.users, fakeTxManager{}, nopLogger{})
	return f
}

func (f *fixtures) request() *createBooking.Request {
	return &createBooking.Request{
		UserID:    f.userID,
		BarberID:  f.barberID,
		ServiceID: f.serviceID,
		Date:      f.date,
		SlotTime:  "10:00 AM",
	}
}

func (f *fixtures) expectCatalog() {
	avatar := "https://example.com/james.svg"
	f.catalog.On("GetBarberByID", mock.Anything, f.barberID).
		Return(&domain.Barber{ID: f.barberID, Name: "James Wilson", Avatar: &avatar}, nil)
	f.catalog.On("GetServiceByID", mock.Anything, f.serviceID).
		Return(&domain.Service{ID: f.serviceID, Name: "Haircut", Price: 25, Duration: "30 min"}, nil)
}

func TestExecute_Success(t *testing.T) {
	f := setup(t)
	f.expectCatalog()

	f.users.On("GetUserWithGracefulDegradation", mock.Anything, f.userID).
		Return(&userservice.User{ID: f.userID, Name: "Alex Johnson", Email: "alex@example.com"}, nil)

	normalized := domain.NormalizeDate(f.date)
	f.bookings.On("FindConflict", mock.Anything, f.barberID, normalized, "10:00 AM").
		Return(nil, bookingRepo.ErrBookingNotFound)

	createdID := uuid.New()
	now := time.Now()
	f.bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.UserID == f.userID &&
			b.BarberID == f.barberID &&
			b.BookingDate.Equal(normalized) &&
			b.SlotTime == "10:00 AM" &&
			b.Status == domain.StatusUpcoming
	})).Return(&domain.Booking{
		ID:          createdID,
		UserID:      f.userID,
		BarberID:    f.barberID,
		ServiceID:   f.serviceID,
		BookingDate: normalized,
		SlotTime:    "10:00 AM",
		Status:      domain.StatusUpcoming,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil)

	resp, err := f.uc.Execute(context.Background(), f.request())
	require.NoError(t, err)

	assert.Equal(t, createdID, resp.ID)
	assert.Equal(t, "upcoming", resp.Status)
	assert.Equal(t, "James Wilson", resp.BarberName)
	assert.Equal(t, 25.0, resp.ServicePrice)
	assert.Equal(t, "Alex Johnson", resp.UserName)
	assert.Equal(t, "alex@example.com", resp.UserEmail)

	f.bookings.AssertExpectations(t)
	f.catalog.AssertExpectations(t)
}

func TestExecute_SlotTaken(t *testing.T) {
	f := setup(t)
	f.expectCatalog()

	f.users.On("GetUserWithGracefulDegradation", mock.Anything, f.userID).
		Return(nil, userservice.ErrUserNotFound)

	normalized := domain.NormalizeDate(f.date)
	f.bookings.On("FindConflict", mock.Anything, f.barberID, normalized, "10:00 AM").
		Return(&domain.Booking{ID: uuid.New(), Status: domain.StatusUpcoming}, nil)

	_, err := f.uc.Execute(context.Background(), f.request())
	assert.ErrorIs(t, err, createBooking.ErrSlotTaken)

	f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_UniqueIndexBackstop(t *testing.T) {
	f := setup(t)
	f.expectCatalog()

	f.users.On("GetUserWithGracefulDegradation", mock.Anything, f.userID).
		Return(nil, userservice.ErrUserNotFound)

	normalized := domain.NormalizeDate(f.date)
	f.bookings.On("FindConflict", mock.Anything, f.barberID, normalized, "10:00 AM").
		Return(nil, bookingRepo.ErrBookingNotFound)

	// Проверка конфликта прошла, но конкурентная вставка успела раньше
	f.bookings.On("Create", mock.Anything, mock.Anything).
		Return(nil, bookingRepo.ErrSlotTaken)

	_, err := f.uc.Execute(context.Background(), f.request())
	assert.ErrorIs(t, err, createBooking.ErrSlotTaken)
}

func TestExecute_BarberNotFound(t *testing.T) {
	f := setup(t)

	f.catalog.On("GetBarberByID", mock.Anything, f.barberID).
		Return(nil, catalogRepo.ErrBarberNotFound)

	_, err := f.uc.Execute(context.Background(), f.request())
	assert.ErrorIs(t, err, createBooking.ErrBarberNotFound)

	f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.bookings.AssertNotCalled(t, "FindConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	f := setup(t)

	f.catalog.On("GetBarberByID", mock.Anything, f.barberID).
		Return(&domain.Barber{ID: f.barberID, Name: "James Wilson"}, nil)
	f.catalog.On("GetServiceByID", mock.Anything, f.serviceID).
		Return(nil, catalogRepo.ErrServiceNotFound)

	_, err := f.uc.Execute(context.Background(), f.request())
	assert.ErrorIs(t, err, createBooking.ErrServiceNotFound)
}

func TestExecute_InvalidSlotLabel(t *testing.T) {
	f := setup(t)

	req := f.request()
	req.SlotTime = "10:15 AM"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, createBooking.ErrInvalidInput)

	f.catalog.AssertNotCalled(t, "GetBarberByID", mock.Anything, mock.Anything)
}

func TestExecute_MissingFields(t *testing.T) {
	f := setup(t)

	req := f.request()
	req.BarberID = uuid.Nil

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, createBooking.ErrInvalidInput)
}

func TestExecute_UserServiceDegraded(t *testing.T) {
	f := setup(t)
	f.expectCatalog()

	f.users.On("GetUserWithGracefulDegradation", mock.Anything, f.userID).
		Return(nil, userservice.ErrServiceDegraded)

	normalized := domain.NormalizeDate(f.date)
	f.bookings.On("FindConflict", mock.Anything, f.barberID, normalized, "10:00 AM").
		Return(nil, bookingRepo.ErrBookingNotFound)
	f.bookings.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Booking{
			ID:          uuid.New(),
			UserID:      f.userID,
			BarberID:    f.barberID,
			ServiceID:   f.serviceID,
			BookingDate: normalized,
			SlotTime:    "10:00 AM",
			Status:      domain.StatusUpcoming,
		}, nil)

	// Деградация профильного сервиса не блокирует создание бронирования
	resp, err := f.uc.Execute(context.Background(), f.request())
	require.NoError(t, err)
	assert.Empty(t, resp.UserName)
	assert.Empty(t, resp.UserEmail)
}

func TestExecute_TransactionError(t *testing.T) {
	f := setup(t)
	f.expectCatalog()

	f.users.On("GetUserWithGracefulDegradation", mock.Anything, f.userID).
		Return(nil, userservice.ErrUserNotFound)

	normalized := domain.NormalizeDate(f.date)
	f.bookings.On("FindConflict", mock.Anything, f.barberID, normalized, "10:00 AM").
		Return(nil, errors.New("serialization failure"))

	_, err := f.uc.Execute(context.Background(), f.request())
	assert.ErrorIs(t, err, createBooking.ErrInternal)
}
