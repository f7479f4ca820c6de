package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/domain"
	"github.com/courtside/booking-service/pkg/dbmetrics"
	"github.com/courtside/booking-service/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"court_id",
	"coach_id",
	"booking_date",
	"start_time",
	"end_time",
	"status",
	"base_price",
	"equipment_price",
	"coach_price",
	"adjustments_price",
	"total_price",
	"price_breakdown",
	"customer_name",
	"customer_email",
	"customer_phone",
	"notes",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование вместе со строками аренды инвентаря.
// Если в контексте передана активная транзакция, использует её.
// Снапшот цены сериализуется в JSONB и после создания не пересчитывается.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking, equipment []domain.BookingEquipment) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var breakdownJSON []byte
	if booking.PriceBreakdown != nil {
		var err error
		breakdownJSON, err = json.Marshal(booking.PriceBreakdown)
		if err != nil {
			return nil, fmt.Errorf("%w: Create - marshal breakdown: %v", ErrEncodeBreakdown, err)
		}
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"court_id",
			"coach_id",
			"booking_date",
			"start_time",
			"end_time",
			"status",
			"base_price",
			"equipment_price",
			"coach_price",
			"adjustments_price",
			"total_price",
			"price_breakdown",
			"customer_name",
			"customer_email",
			"customer_phone",
			"notes",
		).
		Values(
			booking.UserID,
			booking.CourtID,
			booking.CoachID,
			booking.BookingDate,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.BasePrice,
			booking.EquipmentPrice,
			booking.CoachPrice,
			booking.AdjustmentsPrice,
			booking.TotalPrice,
			breakdownJSON,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	// Строки аренды привязываем к созданному бронированию
	for i := range equipment {
		equipment[i].BookingID = booking.ID
		if err := r.insertEquipmentLine(ctx, executor, &equipment[i]); err != nil {
			return nil, err
		}
	}

	return booking, nil
}

func (r *Repository) insertEquipmentLine(ctx context.Context, executor DBExecutor, line *domain.BookingEquipment) error {
	query, args, err := psqlbuilder.Insert("booking_equipment").
		Columns("booking_id", "equipment_id", "quantity", "price_at_booking").
		Values(line.BookingID, line.EquipmentID, line.Quantity, line.PriceAtBooking).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: insertEquipmentLine - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&line.ID, &createdAt); err != nil {
		return fmt.Errorf("%w: insertEquipmentLine - execute insert: %v", ErrExecQuery, err)
	}
	line.CreatedAt = createdAt.Time

	return nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByFilter получает бронирования с гибкой фильтрацией по корту, тренеру,
// дате и статусу.
//
// Если запрос выполняется внутри транзакции и указана конкретная дата,
// добавляется FOR UPDATE: так проверка занятости слота в usecase создания
// бронирования блокирует конкурирующие вставки до конца транзакции.
func (r *Repository) GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.CourtID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"court_id": *filter.CourtID})
	}
	if filter.CoachID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"coach_id": *filter.CoachID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetRecent получает последние созданные бронирования (для админской панели)
func (r *Repository) GetRecent(ctx context.Context, limit int) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRecent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetEquipmentByBookingID получает строки аренды инвентаря бронирования
func (r *Repository) GetEquipmentByBookingID(ctx context.Context, bookingID uuid.UUID) ([]domain.BookingEquipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"equipment_id",
		"quantity",
		"price_at_booking",
		"created_at",
	).
		From("booking_equipment").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetEquipmentByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetEquipmentByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	lines := make([]domain.BookingEquipment, 0)
	for rows.Next() {
		var line domain.BookingEquipment
		var createdAt sql.NullTime
		if err := rows.Scan(
			&line.ID,
			&line.BookingID,
			&line.EquipmentID,
			&line.Quantity,
			&line.PriceAtBooking,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: GetEquipmentByBookingID - scan line: %v", ErrScanRow, err)
		}
		line.CreatedAt = createdAt.Time
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetEquipmentByBookingID - rows error: %v", ErrScanRow, err)
	}

	return lines, nil
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

// Cancel отменяет бронирование, фиксируя время отмены
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var breakdownJSON []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.CourtID,
		&booking.CoachID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.BasePrice,
		&booking.EquipmentPrice,
		&booking.CoachPrice,
		&booking.AdjustmentsPrice,
		&booking.TotalPrice,
		&breakdownJSON,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.Notes,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(breakdownJSON) > 0 {
		var breakdown domain.PriceBreakdown
		if err := json.Unmarshal(breakdownJSON, &breakdown); err != nil {
			return nil, fmt.Errorf("unmarshal price breakdown: %w", err)
		}
		booking.PriceBreakdown = &breakdown
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
