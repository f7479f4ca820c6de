package domain

import (
	"time"

	"github.com/google/uuid"
)

// RuleType determines which condition predicate a pricing rule uses
type RuleType string

const (
	RuleTypeTimeBased RuleType = "time_based"
	RuleTypeDayBased  RuleType = "day_based"
	RuleTypeCourtType RuleType = "court_type"
	RuleTypeCustom    RuleType = "custom"
)

// PricingRule an externally authored price adjustment.
// Conditions is the raw JSONB payload; its shape depends on RuleType:
//   - time_based: {"start_hour": 18, "end_hour": 21}
//   - day_based:  {"days": [0, 6]}
//   - court_type: {"court_type": "indoor"}
//   - custom:     произвольный payload, движком не читается
type PricingRule struct {
	ID          uuid.UUID
	Name        string
	Description *string
	RuleType    RuleType
	Conditions  map[string]any
	Multiplier  float64
	FlatFee     Cents
	Priority    int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Adjustment a named, signed price delta produced by one applied rule
type Adjustment struct {
	Name   string `json:"name"`
	Amount Cents  `json:"amount"`
}

// PriceBreakdown the itemized result of a price computation.
// Ephemeral in the engine; persisted verbatim by the booking workflow as an
// immutable audit snapshot, so historical bookings stay priced correctly
// even if rules change later.
type PriceBreakdown struct {
	BasePrice        Cents        `json:"basePrice"`
	CourtAdjustments []Adjustment `json:"courtAdjustments"`
	EquipmentTotal   Cents        `json:"equipmentTotal"`
	CoachTotal       Cents        `json:"coachTotal"`
	TotalPrice       Cents        `json:"totalPrice"`
}

// AdjustedBase returns the court price after all adjustments,
// replaying the adjustment lines over the base price.
func (b *PriceBreakdown) AdjustedBase() Cents {
	adjusted := b.BasePrice
	for _, adj := range b.CourtAdjustments {
		adjusted += adj.Amount
	}
	return adjusted
}
