package pricingrule

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

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var ruleColumns = []string{
	"id",
	"name",
	"description",
	"rule_type",
	"conditions",
	"multiplier",
	"flat_fee",
	"priority",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий правил ценообразования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive получает активные правила, отсортированные по убыванию приоритета.
// Порядок важен: движок цены применяет правила последовательно.
func (r *Repository) ListActive(ctx context.Context) ([]*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("pricing_rules").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("priority DESC, created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRules(rows)
}

// List получает все правила (для админки), включая отключенные
func (r *Repository) List(ctx context.Context) ([]*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("pricing_rules").
		OrderBy("priority DESC, created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRules(rows)
}

// GetByID получает правило по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("pricing_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := r.scanRule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// Create создает новое правило ценообразования
func (r *Repository) Create(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	conditionsJSON, err := json.Marshal(rule.Conditions)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal conditions: %v", ErrEncodeConditions, err)
	}

	query, args, err := psqlbuilder.Insert("pricing_rules").
		Columns(
			"name",
			"description",
			"rule_type",
			"conditions",
			"multiplier",
			"flat_fee",
			"priority",
			"is_active",
		).
		Values(
			rule.Name,
			rule.Description,
			rule.RuleType,
			conditionsJSON,
			rule.Multiplier,
			rule.FlatFee,
			rule.Priority,
			rule.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// Update обновляет правило ценообразования целиком
func (r *Repository) Update(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	conditionsJSON, err := json.Marshal(rule.Conditions)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - marshal conditions: %v", ErrEncodeConditions, err)
	}

	query, args, err := psqlbuilder.Update("pricing_rules").
		Set("name", rule.Name).
		Set("description", rule.Description).
		Set("rule_type", rule.RuleType).
		Set("conditions", conditionsJSON).
		Set("multiplier", rule.Multiplier).
		Set("flat_fee", rule.FlatFee).
		Set("priority", rule.Priority).
		Set("is_active", rule.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rule.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanRule(row rowScanner) (*domain.PricingRule, error) {
	var rule domain.PricingRule
	var conditionsJSON []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rule.ID,
		&rule.Name,
		&rule.Description,
		&rule.RuleType,
		&conditionsJSON,
		&rule.Multiplier,
		&rule.FlatFee,
		&rule.Priority,
		&rule.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(conditionsJSON) > 0 {
		if err := json.Unmarshal(conditionsJSON, &rule.Conditions); err != nil {
			return nil, fmt.Errorf("unmarshal conditions: %w", err)
		}
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}

func (r *Repository) scanRules(rows *sql.Rows) ([]*domain.PricingRule, error) {
	rules := make([]*domain.PricingRule, 0)
	for rows.Next() {
		rule, err := r.scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRules - scan rule: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}
