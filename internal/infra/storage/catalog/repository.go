package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/domain"
	"github.com/courtside/booking-service/pkg/dbmetrics"
	"github.com/courtside/booking-service/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий справочников: корты, ставки, инвентарь, тренеры
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCourtByID получает корт по ID
func (r *Repository) GetCourtByID(ctx context.Context, id uuid.UUID) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"court_type",
		"description",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCourtByID - build select query: %v", ErrBuildQuery, err)
	}

	var court domain.Court
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&court.ID,
		&court.Name,
		&court.CourtType,
		&court.Description,
		&court.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourtByID - scan court: %v", ErrScanRow, err)
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	return &court, nil
}

// ListCourts получает список кортов
// activeOnly ограничивает выборку активными кортами
func (r *Repository) ListCourts(ctx context.Context, activeOnly bool) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"court_type",
		"description",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("courts").
		OrderBy("name ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		var court domain.Court
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(
			&court.ID,
			&court.Name,
			&court.CourtType,
			&court.Description,
			&court.IsActive,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListCourts - scan court: %v", ErrScanRow, err)
		}
		court.CreatedAt = createdAt.Time
		court.UpdatedAt = updatedAt.Time
		courts = append(courts, &court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCourts - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}

// GetBasePriceByCourtID получает базовую почасовую ставку корта
func (r *Repository) GetBasePriceByCourtID(ctx context.Context, courtID uuid.UUID) (*domain.CourtBasePrice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"court_id",
		"base_hourly_rate",
		"created_at",
		"updated_at",
	).
		From("court_base_prices").
		Where(squirrel.Eq{"court_id": courtID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBasePriceByCourtID - build select query: %v", ErrBuildQuery, err)
	}

	var price domain.CourtBasePrice
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&price.ID,
		&price.CourtID,
		&price.BaseHourlyRate,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrPriceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBasePriceByCourtID - scan price: %v", ErrScanRow, err)
	}

	price.CreatedAt = createdAt.Time
	price.UpdatedAt = updatedAt.Time

	return &price, nil
}

// GetEquipmentByIDs получает позиции инвентаря по списку ID
// Отсутствующие ID не считаются ошибкой: вызывающая сторона сверяет длину
func (r *Repository) GetEquipmentByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Equipment, error) {
	if len(ids) == 0 {
		return []*domain.Equipment{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"equipment_type",
		"total_quantity",
		"available_quantity",
		"rental_price",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("equipment").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetEquipmentByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetEquipmentByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEquipmentRows(rows)
}

// ListEquipment получает каталог инвентаря
func (r *Repository) ListEquipment(ctx context.Context, activeOnly bool) ([]*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"equipment_type",
		"total_quantity",
		"available_quantity",
		"rental_price",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("equipment").
		OrderBy("name ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEquipment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEquipment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEquipmentRows(rows)
}

func scanEquipmentRows(rows *sql.Rows) ([]*domain.Equipment, error) {
	items := make([]*domain.Equipment, 0)
	for rows.Next() {
		var item domain.Equipment
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.EquipmentType,
			&item.TotalQuantity,
			&item.AvailableQuantity,
			&item.RentalPrice,
			&item.IsActive,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanEquipmentRows - scan equipment: %v", ErrScanRow, err)
		}
		item.CreatedAt = createdAt.Time
		item.UpdatedAt = updatedAt.Time
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEquipmentRows - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// GetCoachByID получает тренера по ID
func (r *Repository) GetCoachByID(ctx context.Context, id uuid.UUID) (*domain.Coach, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"bio",
		"hourly_rate",
		"specialization",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("coaches").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCoachByID - build select query: %v", ErrBuildQuery, err)
	}

	var coach domain.Coach
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&coach.ID,
		&coach.Name,
		&coach.Bio,
		&coach.HourlyRate,
		&coach.Specialization,
		&coach.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrCoachNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCoachByID - scan coach: %v", ErrScanRow, err)
	}

	coach.CreatedAt = createdAt.Time
	coach.UpdatedAt = updatedAt.Time

	return &coach, nil
}

// GetCoachAvailability получает еженедельные окна доступности тренера
func (r *Repository) GetCoachAvailability(ctx context.Context, coachID uuid.UUID) ([]domain.CoachAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"coach_id",
		"day_of_week",
		"start_time",
		"end_time",
		"created_at",
	).
		From("coach_availability").
		Where(squirrel.Eq{"coach_id": coachID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCoachAvailability - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCoachAvailability - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]domain.CoachAvailability, 0)
	for rows.Next() {
		var window domain.CoachAvailability
		var createdAt sql.NullTime
		if err := rows.Scan(
			&window.ID,
			&window.CoachID,
			&window.DayOfWeek,
			&window.StartTime,
			&window.EndTime,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: GetCoachAvailability - scan window: %v", ErrScanRow, err)
		}
		window.CreatedAt = createdAt.Time
		windows = append(windows, window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCoachAvailability - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
