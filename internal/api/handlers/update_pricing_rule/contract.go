package update_pricing_rule

import (
	"context"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/service/pricingrules/models"
)

type PricingRuleService interface {
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateRuleRequest) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
