package pricing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/booking-service/internal/domain"
	"github.com/courtside/booking-service/pkg/types"
)

// saturday 2025-10-18 (weekday 6)
var saturday = time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)

// monday 2025-10-20 (weekday 1)
var monday = time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

func slot(start, end string) domain.TimeRange {
	return domain.TimeRange{
		Start: types.TimeString(start),
		End:   types.TimeString(end),
	}
}

func indoorCourt() *domain.Court {
	return &domain.Court{
		ID:        uuid.New(),
		Name:      "Court 1",
		CourtType: domain.CourtTypeIndoor,
		IsActive:  true,
	}
}

func baseContext() Context {
	return Context{
		Court:          indoorCourt(),
		BaseHourlyRate: 2000,
		Date:           monday,
		Slot:           slot("10:00", "12:00"),
	}
}

func TestCalculatePrice_NoRules(t *testing.T) {
	tests := []struct {
		name     string
		rate     domain.Cents
		start    string
		end      string
		expected domain.Cents
	}{
		{"one hour", 2000, "10:00", "11:00", 2000},
		{"two hours", 2000, "10:00", "12:00", 4000},
		{"full day window", 1500, "06:00", "22:00", 24000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := baseContext()
			ctx.BaseHourlyRate = tt.rate
			ctx.Slot = slot(tt.start, tt.end)

			breakdown, err := CalculatePrice(ctx)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, breakdown.BasePrice)
			assert.Equal(t, tt.expected, breakdown.TotalPrice)
			assert.Empty(t, breakdown.CourtAdjustments)
		})
	}
}

func TestCalculatePrice_NegativeBaseRate(t *testing.T) {
	ctx := baseContext()
	ctx.BaseHourlyRate = -100

	_, err := CalculatePrice(ctx)
	require.ErrorIs(t, err, ErrPriceUnavailable)
}

// Бесплатный корт: нулевая ставка валидна, платными остаются
// только инвентарь и тренер.
func TestCalculatePrice_ZeroBaseRate(t *testing.T) {
	ctx := baseContext() // 2 hours
	ctx.BaseHourlyRate = 0
	ctx.Equipment = []domain.EquipmentLine{
		{Equipment: domain.Equipment{ID: uuid.New(), Name: "Racket", RentalPrice: 500}, Quantity: 1},
	}
	ctx.Coach = &domain.Coach{ID: uuid.New(), Name: "Anna", HourlyRate: 3000, IsActive: true}

	breakdown, err := CalculatePrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(0), breakdown.BasePrice)
	assert.Equal(t, domain.Cents(500), breakdown.EquipmentTotal)
	assert.Equal(t, domain.Cents(6000), breakdown.CoachTotal)
	assert.Equal(t, domain.Cents(6500), breakdown.TotalPrice)
}

func TestCalculatePrice_InvalidRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"end before start", "12:00", "10:00"},
		{"zero duration", "10:00", "10:00"},
		{"not hour aligned", "10:30", "11:30"},
		{"garbage time", "banana", "11:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := baseContext()
			ctx.Slot = slot(tt.start, tt.end)

			_, err := CalculatePrice(ctx)
			require.ErrorIs(t, err, ErrInvalidTimeRange)
		})
	}
}

func TestCalculatePrice_RuleStackingIsOrderDependent(t *testing.T) {
	multiply := &domain.PricingRule{
		Name:       "peak multiplier",
		RuleType:   domain.RuleTypeCustom,
		Multiplier: 1.5,
		IsActive:   true,
		Priority:   10,
	}
	flat := &domain.PricingRule{
		Name:       "surcharge",
		RuleType:   domain.RuleTypeCustom,
		Multiplier: 1,
		FlatFee:    500,
		IsActive:   true,
		Priority:   5,
	}

	ctx := baseContext() // base 4000

	// multiplier первым (priority 10 > 5): 4000*1.5=6000, +500=6500
	ctx.Rules = []*domain.PricingRule{flat, multiply}
	breakdown, err := CalculatePrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(6500), breakdown.TotalPrice)
	require.Len(t, breakdown.CourtAdjustments, 2)
	assert.Equal(t, "peak multiplier", breakdown.CourtAdjustments[0].Name)
	assert.Equal(t, domain.Cents(2000), breakdown.CourtAdjustments[0].Amount)
	assert.Equal(t, domain.Cents(500), breakdown.CourtAdjustments[1].Amount)

	// flat fee первым: (4000+500)*1.5=6750 - другой результат
	flat.Priority = 20
	swapped, err := CalculatePrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(6750), swapped.TotalPrice)
	assert.NotEqual(t, breakdown.TotalPrice, swapped.TotalPrice)
}

func TestCalculatePrice_EqualPriorityKeepsInputOrder(t *testing.T) {
	first := &domain.PricingRule{
		Name:       "first",
		RuleType:   domain.RuleTypeCustom,
		Multiplier: 2,
		IsActive:   true,
		Priority:   5,
	}
	second := &domain.PricingRule{
		Name:       "second",
		RuleType:   domain.RuleTypeCustom,
		Multiplier: 1,
		FlatFee:    100,
		IsActive:   true,
		Priority:   5,
	}

	ctx := baseContext() // base 4000
	ctx.Rules = []*domain.PricingRule{first, second}

	breakdown, err := CalculatePrice(ctx)
	require.NoError(t, err)

	// 4000*2=8000, затем +100: стабильный порядок входа
	require.Len(t, breakdown.CourtAdjustments, 2)
	assert.Equal(t, "first", breakdown.CourtAdjustments[0].Name)
	assert.Equal(t, "second", breakdown.CourtAdjustments[1].Name)
	assert.Equal(t, domain.Cents(8100), breakdown.TotalPrice)
}

func TestCalculatePrice_NoOpRuleProducesNoLine(t *testing.T) {
	noop := &domain.PricingRule{
		Name:       "marker",
		RuleType:   domain.RuleTypeCustom,
		Multiplier: 1,
		FlatFee:    0,
		IsActive:   true,
		Priority:   100,
	}

	ctx := baseContext()
	ctx.Rules = []*domain.PricingRule{noop}

	breakdown, err := CalculatePrice(ctx)
	require.NoError(t, err)
	assert.Empty(t, breakdown.CourtAdjustments)
	assert.Equal(t, breakdown.BasePrice, breakdown.TotalPrice)
}

func TestCalculatePrice_InactiveRuleIgnored(t *testing.T) {
	rule := &domain.PricingRule{
		Name:       "disabled",
		RuleType:   domain.RuleTypeCustom,
		Multiplier: 3,
		IsActive:   false,
		Priority:   1,
	}

	ctx := baseContext()
	ctx.Rules = []*domain.PricingRule{rule}

	breakdown, err := CalculatePrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, breakdown.BasePrice, breakdown.TotalPrice)
}

func TestRulePredicates(t *testing.T) {
	tests := []struct {
		name    string
		rule    *domain.PricingRule
		date    time.Time
		slot    domain.TimeRange
		applies bool
	}{
		{
			name: "time_based inside window",
			rule: &domain.PricingRule{
				RuleType:   domain.RuleTypeTimeBased,
				Conditions: map[string]any{"start_hour": 18, "end_hour": 21},
			},
			date: monday, slot: slot("18:00", "20:00"), applies: true,
		},
		{
			name: "time_based start at end bound",
			rule: &domain.PricingRule{
				RuleType:   domain.RuleTypeTimeBased,
				Conditions: map[string]any{"start_hour": 18, "end_hour": 21},
			},
			date: monday, slot: slot("21:00", "22:00"), applies: false,
		},
		{
			name: "time_based missing bound never matches",
			rule: &domain.PricingRule{
				RuleType:   domain.RuleTypeTimeBased,
				Conditions: map[string]any{"start_hour": 18},
			},
			date: monday, slot: slot("18:00", "20:00"), applies: false,
		},
		{
			name: "day_based saturday",
			rule: &domain.PricingRule{
				RuleType:   domain.RuleTypeDayBased,
				Conditions: map[string]any{"days": []any{float64(0), float64(6)}},
			},
			date: saturday, slot: slot("10:00", "11:00"), applies: true,
		},
		{
			name: "day_based monday not in weekend list",
			rule: &domain.PricingRule{
				RuleType:   domain.RuleTypeDayBased,
				Conditions: map[string]any{"days": []any{float64(0), float64(6)}},
			},
			date: monday, slot: slot("10:00", "11:00"), applies: false,
		},
		{
			name: "day_based non-list never matches",
			rule: &domain.PricingRule{
				RuleType:   domain.RuleTypeDayBased,
				Conditions: map[string]any{"days": "saturday"},
			},
			date: saturday, slot: slot("10:00", "11:00"), applies: false,
		},
		{
			name: "court_type match",
			rule: &domain.PricingRule{
				RuleType:   domain.RuleTypeCourtType,
				Conditions: map[string]any{"court_type": "indoor"},
			},
			date: monday, slot: slot("10:00", "11:00"), applies: true,
		},
		{
			name: "court_type mismatch",
			rule: &domain.PricingRule{
				RuleType:   domain.RuleTypeCourtType,
				Conditions: map[string]any{"court_type": "outdoor"},
			},
			date: monday, slot: slot("10:00", "11:00"), applies: false,
		},
		{
			name: "court_type missing condition never matches",
			rule: &domain.PricingRule{
				RuleType:   domain.RuleTypeCourtType,
				Conditions: map[string]any{},
			},
			date: monday, slot: slot("10:00", "11:00"), applies: false,
		},
		{
			name: "custom always matches",
			rule: &domain.PricingRule{
				RuleType:   domain.RuleTypeCustom,
				Conditions: map[string]any{"anything": "at all"},
			},
			date: monday, slot: slot("10:00", "11:00"), applies: true,
		},
		{
			name:    "unknown rule type never matches",
			rule:    &domain.PricingRule{RuleType: "seasonal"},
			date:    monday,
			slot:    slot("10:00", "11:00"),
			applies: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := tt.applies

			ctx := baseContext()
			ctx.Date = tt.date
			ctx.Slot = tt.slot
			tt.rule.Name = tt.name
			tt.rule.Multiplier = 2
			tt.rule.IsActive = true
			ctx.Rules = []*domain.PricingRule{tt.rule}

			breakdown, err := CalculatePrice(ctx)
			require.NoError(t, err)

			if expected {
				assert.NotEmpty(t, breakdown.CourtAdjustments, "rule should have applied")
			} else {
				assert.Empty(t, breakdown.CourtAdjustments, "rule should not have applied")
			}
		})
	}
}

func TestCalculatePrice_EquipmentScalesLinearly(t *testing.T) {
	racket := domain.Equipment{
		ID:            uuid.New(),
		Name:          "Racket",
		EquipmentType: domain.EquipmentTypeRacket,
		RentalPrice:   500,
	}
	shoes := domain.Equipment{
		ID:            uuid.New(),
		Name:          "Shoes",
		EquipmentType: domain.EquipmentTypeShoes,
		RentalPrice:   300,
	}

	ctx := baseContext()
	ctx.Equipment = []domain.EquipmentLine{
		{Equipment: racket, Quantity: 2},
		{Equipment: shoes, Quantity: 1},
	}

	single, err := CalculatePrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(1300), single.EquipmentTotal)

	ctx.Equipment = []domain.EquipmentLine{
		{Equipment: racket, Quantity: 4},
		{Equipment: shoes, Quantity: 2},
	}
	doubled, err := CalculatePrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, single.EquipmentTotal*2, doubled.EquipmentTotal)
}

func TestCalculatePrice_CoachTotal(t *testing.T) {
	coach := &domain.Coach{
		ID:         uuid.New(),
		Name:       "Anna",
		HourlyRate: 3000,
		IsActive:   true,
	}

	ctx := baseContext() // 2 hours
	ctx.Coach = coach

	breakdown, err := CalculatePrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(6000), breakdown.CoachTotal)
	assert.Equal(t, breakdown.BasePrice+breakdown.CoachTotal, breakdown.TotalPrice)
}

// Сквозной сценарий: ставка $20/час, слот 2 часа, time_based правило
// 18-21 x1.2 (приоритет 10), day_based суббота +$5 (приоритет 5),
// 1 ракетка по $5, без тренера.
func TestCalculatePrice_EndToEnd(t *testing.T) {
	peakRule := &domain.PricingRule{
		Name:       "Evening peak",
		RuleType:   domain.RuleTypeTimeBased,
		Conditions: map[string]any{"start_hour": float64(18), "end_hour": float64(21)},
		Multiplier: 1.2,
		FlatFee:    0,
		Priority:   10,
		IsActive:   true,
	}
	weekendRule := &domain.PricingRule{
		Name:       "Saturday fee",
		RuleType:   domain.RuleTypeDayBased,
		Conditions: map[string]any{"days": []any{float64(6)}},
		Multiplier: 1,
		FlatFee:    500,
		Priority:   5,
		IsActive:   true,
	}

	ctx := Context{
		Court:          indoorCourt(),
		BaseHourlyRate: 2000,
		Date:           saturday,
		Slot:           slot("18:00", "20:00"),
		Equipment: []domain.EquipmentLine{
			{
				Equipment: domain.Equipment{
					ID:            uuid.New(),
					Name:          "Racket",
					EquipmentType: domain.EquipmentTypeRacket,
					RentalPrice:   500,
				},
				Quantity: 1,
			},
		},
		Rules: []*domain.PricingRule{weekendRule, peakRule},
	}

	breakdown, err := CalculatePrice(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.Cents(4000), breakdown.BasePrice)
	require.Len(t, breakdown.CourtAdjustments, 2)
	assert.Equal(t, "Evening peak", breakdown.CourtAdjustments[0].Name)
	assert.Equal(t, domain.Cents(800), breakdown.CourtAdjustments[0].Amount)
	assert.Equal(t, "Saturday fee", breakdown.CourtAdjustments[1].Name)
	assert.Equal(t, domain.Cents(500), breakdown.CourtAdjustments[1].Amount)
	assert.Equal(t, domain.Cents(500), breakdown.EquipmentTotal)
	assert.Equal(t, domain.Cents(0), breakdown.CoachTotal)
	assert.Equal(t, domain.Cents(5800), breakdown.TotalPrice)

	// корректировки воспроизводимы повтором поверх базы
	assert.Equal(t, domain.Cents(5300), breakdown.AdjustedBase())
	assert.Equal(t, breakdown.AdjustedBase()+breakdown.EquipmentTotal+breakdown.CoachTotal, breakdown.TotalPrice)
}
