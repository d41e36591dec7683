package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fadehouse/booking-service/internal/domain"
	"github.com/fadehouse/booking-service/pkg/dbmetrics"
	"github.com/fadehouse/booking-service/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
// Частичный индекс на (barber_id, booking_date, slot_time) WHERE status <> 'cancelled'
// является последней линией защиты от двойного бронирования
const uniqueViolation = "23505"

// bookingColumns колонки бронирования с display-данными из каталога
var bookingColumns = []string{
	"b.id",
	"b.user_id",
	"b.barber_id",
	"b.service_id",
	"b.booking_date",
	"b.slot_time",
	"b.status",
	"brb.name AS barber_name",
	"brb.avatar AS barber_avatar",
	"srv.name AS service_name",
	"srv.price AS service_price",
	"srv.duration AS service_duration",
	"b.created_at",
	"b.updated_at",
}

// Repository репозиторий для работы с бронированиями (booking ledger)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Проверка конфликта и вставка ДОЛЖНЫ выполняться одной атомарной единицей:
// вызывающий код оборачивает FindConflict + Create в сериализуемую транзакцию.
// Конкурентная вставка, проскочившая мимо проверки, ловится уникальным
// индексом и возвращается как ErrSlotTaken
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"user_id",
			"barber_id",
			"service_id",
			"booking_date",
			"slot_time",
			"status",
		).
		Values(
			booking.ID,
			booking.UserID,
			booking.BarberID,
			booking.ServiceID,
			booking.BookingDate,
			booking.SlotTime,
			booking.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if isUniqueViolation(err) {
		return nil, ErrSlotTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// FindConflict ищет активное (не отмененное) бронирование на тройку
// (barber_id, календарный день, slot_time)
// Границы дня: локальная полночь .. 23:59:59.999
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы конкурентное
// создание на ту же тройку сериализовалось
// Если конфликтов нет, возвращает ErrBookingNotFound
func (r *Repository) FindConflict(ctx context.Context, barberID uuid.UUID, date time.Time, slotTime string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"user_id",
		"barber_id",
		"service_id",
		"booking_date",
		"slot_time",
		"status",
	).
		From("bookings").
		Where(squirrel.GtOrEq{"booking_date": domain.NormalizeDate(date)}).
		Where(squirrel.LtOrEq{"booking_date": domain.EndOfDay(date)}).
		Where(squirrel.Eq{"slot_time": slotTime}).
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindConflict - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.BarberID,
		&booking.ServiceID,
		&booking.BookingDate,
		&booking.SlotTime,
		&booking.Status,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindConflict - scan booking: %v", ErrScanRow, err)
	}

	return &booking, nil
}

// GetByID получает бронирование по ID вместе с display-данными каталога
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		LeftJoin("barbers brb ON brb.id = b.barber_id").
		LeftJoin("services srv ON srv.id = b.service_id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает историю бронирований пользователя (новые даты первыми)
func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		LeftJoin("barbers brb ON brb.id = b.barber_id").
		LeftJoin("services srv ON srv.id = b.service_id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.booking_date DESC, b.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListForDay получает все активные (не отмененные) бронирования на календарный день
// Опциональный фильтр по барберу
// Используется резолвером доступности слотов
func (r *Repository) ListForDay(ctx context.Context, date time.Time, barberID *uuid.UUID) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		LeftJoin("barbers brb ON brb.id = b.barber_id").
		LeftJoin("services srv ON srv.id = b.service_id").
		Where(squirrel.GtOrEq{"b.booking_date": domain.NormalizeDate(date)}).
		Where(squirrel.LtOrEq{"b.booking_date": domain.EndOfDay(date)}).
		Where(squirrel.NotEq{"b.status": domain.StatusCancelled}).
		OrderBy("b.created_at ASC")

	if barberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.barber_id": *barberID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Update применяет частичное обновление бронирования
// nil-поля патча сохраняют прежние значения
// Перенос на занятую тройку ловится уникальным индексом как ErrSlotTaken
func (r *Repository) Update(ctx context.Context, id uuid.UUID, patch domain.BookingPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if patch.Date != nil {
		updateBuilder = updateBuilder.Set("booking_date", domain.NormalizeDate(*patch.Date))
	}
	if patch.SlotTime != nil {
		updateBuilder = updateBuilder.Set("slot_time", *patch.SlotTime)
	}
	if patch.BarberID != nil {
		updateBuilder = updateBuilder.Set("barber_id", *patch.BarberID)
	}
	if patch.ServiceID != nil {
		updateBuilder = updateBuilder.Set("service_id", *patch.ServiceID)
	}
	if patch.Status != nil {
		updateBuilder = updateBuilder.Set("status", *patch.Status)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return ErrSlotTaken
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку с display-колонками каталога
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var barberName, serviceName, serviceDuration sql.NullString
	var barberAvatar sql.NullString
	var servicePrice sql.NullFloat64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.BarberID,
		&booking.ServiceID,
		&booking.BookingDate,
		&booking.SlotTime,
		&booking.Status,
		&barberName,
		&barberAvatar,
		&serviceName,
		&servicePrice,
		&serviceDuration,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.BarberName = barberName.String
	if barberAvatar.Valid {
		booking.BarberAvatar = &barberAvatar.String
	}
	booking.ServiceName = serviceName.String
	booking.ServicePrice = servicePrice.Float64
	booking.ServiceDuration = serviceDuration.String
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
