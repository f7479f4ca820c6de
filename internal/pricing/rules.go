package pricing

import "github.com/courtside/booking-service/internal/domain"

// ruleApplies проверяет предикат правила для контекста.
// Неизвестный тип правила или отсутствующие условия означают "не применяется"
// (тихий no-op, не ошибка - это сохраняет совместимость с существующими
// данными правил).
func ruleApplies(rule *domain.PricingRule, startHour, weekday int, court *domain.Court) bool {
	switch rule.RuleType {
	case domain.RuleTypeTimeBased:
		startBound, okStart := conditionInt(rule.Conditions, "start_hour")
		endBound, okEnd := conditionInt(rule.Conditions, "end_hour")
		if !okStart || !okEnd {
			return false
		}
		return startHour >= startBound && startHour < endBound

	case domain.RuleTypeDayBased:
		days, ok := conditionIntList(rule.Conditions, "days")
		if !ok {
			return false
		}
		for _, d := range days {
			if d == weekday {
				return true
			}
		}
		return false

	case domain.RuleTypeCourtType:
		courtType, ok := conditionString(rule.Conditions, "court_type")
		if !ok || court == nil {
			return false
		}
		return domain.CourtType(courtType) == court.CourtType

	case domain.RuleTypeCustom:
		// custom всегда применяется; payload условий не читается.
		// Унаследованное разрешающее поведение - любое ограничение
		// задается только через multiplier/flat_fee.
		return true

	default:
		return false
	}
}

// conditionInt достает целочисленное условие
// JSONB-числа декодируются как float64, но принимаем и int для удобства
func conditionInt(conditions map[string]any, key string) (int, bool) {
	if conditions == nil {
		return 0, false
	}
	switch v := conditions[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

// conditionIntList достает список целых; не-список означает "нет условия"
func conditionIntList(conditions map[string]any, key string) ([]int, bool) {
	if conditions == nil {
		return nil, false
	}

	switch v := conditions[key].(type) {
	case []int:
		return v, true
	case []any:
		result := make([]int, 0, len(v))
		for _, item := range v {
			switch n := item.(type) {
			case float64:
				result = append(result, int(n))
			case int:
				result = append(result, n)
			default:
				return nil, false
			}
		}
		return result, true
	default:
		return nil, false
	}
}

// conditionString достает строковое условие
func conditionString(conditions map[string]any, key string) (string, bool) {
	if conditions == nil {
		return "", false
	}
	s, ok := conditions[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
