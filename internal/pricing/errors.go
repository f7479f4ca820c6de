package pricing

import "errors"

var (
	// ErrPriceUnavailable возвращается, когда у корта нет базовой ставки
	ErrPriceUnavailable = errors.New("pricing: base rate unavailable")

	// ErrInvalidTimeRange возвращается при некорректном интервале
	// (конец не позже начала или время не выровнено по часу)
	ErrInvalidTimeRange = errors.New("pricing: invalid time range")
)
