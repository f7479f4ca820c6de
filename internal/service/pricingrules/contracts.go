package pricingrules

import (
	"context"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/domain"
)

// RuleRepository интерфейс репозитория правил ценообразования
type RuleRepository interface {
	List(ctx context.Context) ([]*domain.PricingRule, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PricingRule, error)
	Create(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error)
	Update(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
