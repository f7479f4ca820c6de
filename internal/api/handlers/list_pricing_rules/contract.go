package list_pricing_rules

import (
	"context"

	"github.com/courtside/booking-service/internal/service/pricingrules/models"
)

type PricingRuleService interface {
	List(ctx context.Context) (*models.RuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
