package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/domain"
)

var (
	// ErrInvalidRuleType возвращается при неизвестном типе правила
	ErrInvalidRuleType = errors.New("invalid rule type")

	// ErrInvalidMultiplier возвращается при недопустимом множителе
	ErrInvalidMultiplier = errors.New("multiplier must be positive")

	// ErrEmptyName возвращается при пустом имени правила
	ErrEmptyName = errors.New("rule name is required")
)

// Request модели

// CreateRuleRequest запрос на создание правила ценообразования
type CreateRuleRequest struct {
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	RuleType    string         `json:"ruleType"`
	Conditions  map[string]any `json:"conditions"`
	Multiplier  float64        `json:"multiplier"`
	FlatFee     int64          `json:"flatFee"`
	Priority    int            `json:"priority"`
	IsActive    bool           `json:"isActive"`
}

// UpdateRuleRequest запрос на обновление правила
// Nil поля не изменяются
type UpdateRuleRequest struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	RuleType    *string        `json:"ruleType,omitempty"`
	Conditions  map[string]any `json:"conditions,omitempty"`
	Multiplier  *float64       `json:"multiplier,omitempty"`
	FlatFee     *int64         `json:"flatFee,omitempty"`
	Priority    *int           `json:"priority,omitempty"`
	IsActive    *bool          `json:"isActive,omitempty"`
}

// Validate проверяет корректность запроса на создание
func (r *CreateRuleRequest) Validate() error {
	if r.Name == "" {
		return ErrEmptyName
	}
	if _, err := ToDomainRuleType(r.RuleType); err != nil {
		return err
	}
	if r.Multiplier <= 0 {
		return ErrInvalidMultiplier
	}
	return nil
}

// ToDomainRule конвертирует запрос в domain модель
func (r *CreateRuleRequest) ToDomainRule() (*domain.PricingRule, error) {
	ruleType, err := ToDomainRuleType(r.RuleType)
	if err != nil {
		return nil, err
	}

	conditions := r.Conditions
	if conditions == nil {
		conditions = map[string]any{}
	}

	return &domain.PricingRule{
		Name:        r.Name,
		Description: r.Description,
		RuleType:    ruleType,
		Conditions:  conditions,
		Multiplier:  r.Multiplier,
		FlatFee:     domain.Cents(r.FlatFee),
		Priority:    r.Priority,
		IsActive:    r.IsActive,
	}, nil
}

// ApplyTo накладывает частичное обновление на существующее правило
func (r *UpdateRuleRequest) ApplyTo(rule *domain.PricingRule) error {
	if r.Name != nil {
		if *r.Name == "" {
			return ErrEmptyName
		}
		rule.Name = *r.Name
	}
	if r.Description != nil {
		rule.Description = r.Description
	}
	if r.RuleType != nil {
		ruleType, err := ToDomainRuleType(*r.RuleType)
		if err != nil {
			return err
		}
		rule.RuleType = ruleType
	}
	if r.Conditions != nil {
		rule.Conditions = r.Conditions
	}
	if r.Multiplier != nil {
		if *r.Multiplier <= 0 {
			return ErrInvalidMultiplier
		}
		rule.Multiplier = *r.Multiplier
	}
	if r.FlatFee != nil {
		rule.FlatFee = domain.Cents(*r.FlatFee)
	}
	if r.Priority != nil {
		rule.Priority = *r.Priority
	}
	if r.IsActive != nil {
		rule.IsActive = *r.IsActive
	}
	return nil
}

// Response модели

// RuleResponse ответ с данными правила
type RuleResponse struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	RuleType    string         `json:"ruleType"`
	Conditions  map[string]any `json:"conditions"`
	Multiplier  float64        `json:"multiplier"`
	FlatFee     int64          `json:"flatFee"`
	Priority    int            `json:"priority"`
	IsActive    bool           `json:"isActive"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// RuleListResponse ответ со списком правил
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(rule *domain.PricingRule) *RuleResponse {
	if rule == nil {
		return nil
	}
	return &RuleResponse{
		ID:          rule.ID,
		Name:        rule.Name,
		Description: rule.Description,
		RuleType:    string(rule.RuleType),
		Conditions:  rule.Conditions,
		Multiplier:  rule.Multiplier,
		FlatFee:     int64(rule.FlatFee),
		Priority:    rule.Priority,
		IsActive:    rule.IsActive,
		CreatedAt:   rule.CreatedAt,
		UpdatedAt:   rule.UpdatedAt,
	}
}

// FromDomainRuleList конвертирует список domain моделей в DTO
func FromDomainRuleList(rules []*domain.PricingRule) *RuleListResponse {
	items := make([]RuleResponse, 0, len(rules))
	for _, rule := range rules {
		items = append(items, *FromDomainRule(rule))
	}
	return &RuleListResponse{Rules: items}
}

// ToDomainRuleType конвертирует строку в domain тип правила
func ToDomainRuleType(s string) (domain.RuleType, error) {
	switch domain.RuleType(s) {
	case domain.RuleTypeTimeBased, domain.RuleTypeDayBased, domain.RuleTypeCourtType, domain.RuleTypeCustom:
		return domain.RuleType(s), nil
	default:
		return "", ErrInvalidRuleType
	}
}
