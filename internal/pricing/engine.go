// Package pricing computes deterministic, itemized prices for a court
// booking selection. The engine is a pure function over caller-supplied
// snapshots: no I/O, no caching, no shared state.
package pricing

import (
	"fmt"
	"sort"
	"time"

	"github.com/courtside/booking-service/internal/domain"
)

// Context контекст расчета цены: выбор клиента плюс снапшот активных правил
type Context struct {
	Court          *domain.Court
	BaseHourlyRate domain.Cents
	Date           time.Time
	Slot           domain.TimeRange
	Equipment      []domain.EquipmentLine
	Coach          *domain.Coach
	Rules          []*domain.PricingRule
}

// CalculatePrice вычисляет итоговую цену с разбивкой по компонентам.
//
// Алгоритм:
//  1. Длительность в целых часах, базовая цена = ставка * длительность.
//  2. Отбор правил: is_active и совпадение предиката типа; сортировка по
//     priority по убыванию, при равенстве сохраняется исходный порядок
//     (явная стабильная сортировка).
//  3. Последовательное применение: каждое правило видит результат
//     предыдущего, а не исходную базу. Сначала множитель (если != 1),
//     затем фиксированная надбавка (если != 0). Ненулевая дельта
//     записывается как именованная строка корректировки; правило с нулевой
//     дельтой строки не создает, даже если предикат совпал.
//  4. Оборудование и тренер считаются отдельно и правилами не корректируются.
func CalculatePrice(ctx Context) (*domain.PriceBreakdown, error) {
	if err := validate(ctx); err != nil {
		return nil, err
	}

	duration := domain.Cents(ctx.Slot.DurationHours())
	basePrice := ctx.BaseHourlyRate * duration

	applicable := applicableRules(ctx)

	adjustedPrice := basePrice
	adjustments := make([]domain.Adjustment, 0)

	for _, rule := range applicable {
		previousPrice := adjustedPrice

		if rule.Multiplier != 1 {
			adjustedPrice = adjustedPrice.MulRound(rule.Multiplier)
		}
		if rule.FlatFee != 0 {
			adjustedPrice += rule.FlatFee
		}

		if delta := adjustedPrice - previousPrice; delta != 0 {
			adjustments = append(adjustments, domain.Adjustment{
				Name:   rule.Name,
				Amount: delta,
			})
		}
	}

	var equipmentTotal domain.Cents
	for _, line := range ctx.Equipment {
		equipmentTotal += line.Equipment.RentalPrice * domain.Cents(line.Quantity)
	}

	var coachTotal domain.Cents
	if ctx.Coach != nil {
		coachTotal = ctx.Coach.HourlyRate * duration
	}

	return &domain.PriceBreakdown{
		BasePrice:        basePrice,
		CourtAdjustments: adjustments,
		EquipmentTotal:   equipmentTotal,
		CoachTotal:       coachTotal,
		TotalPrice:       adjustedPrice + equipmentTotal + coachTotal,
	}, nil
}

// applicableRules отбирает активные правила с совпавшим предикатом и
// сортирует их по приоритету по убыванию; равные приоритеты сохраняют
// исходный порядок следования
func applicableRules(ctx Context) []*domain.PricingRule {
	startHour := ctx.Slot.Start.Hour()
	weekday := int(ctx.Date.Weekday())

	matched := make([]*domain.PricingRule, 0, len(ctx.Rules))
	for _, rule := range ctx.Rules {
		if rule == nil || !rule.IsActive {
			continue
		}
		if ruleApplies(rule, startHour, weekday, ctx.Court) {
			matched = append(matched, rule)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority > matched[j].Priority
	})

	return matched
}

// validate проверяет форму входных данных
// Движок требует валидированный, выровненный по часу интервал;
// нулевая ставка допустима (бесплатный корт), отрицательная — нет
func validate(ctx Context) error {
	if ctx.BaseHourlyRate < 0 {
		return ErrPriceUnavailable
	}

	if ctx.Slot.Start.IsZero() || ctx.Slot.End.IsZero() {
		return fmt.Errorf("%w: time range is required", ErrInvalidTimeRange)
	}
	if err := ctx.Slot.Start.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if err := ctx.Slot.End.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if !ctx.Slot.IsValid() {
		return fmt.Errorf("%w: start must be before end", ErrInvalidTimeRange)
	}

	startMinutes, _ := ctx.Slot.Start.TotalMinutes()
	endMinutes, _ := ctx.Slot.End.TotalMinutes()
	if startMinutes%60 != 0 || endMinutes%60 != 0 {
		return fmt.Errorf("%w: times must be hour-aligned", ErrInvalidTimeRange)
	}

	return nil
}
