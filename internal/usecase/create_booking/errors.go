package create_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("court not found")

	// ErrCourtInactive возвращается, когда корт выведен из эксплуатации
	ErrCourtInactive = errors.New("court is not active")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с существующим бронированием
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrPriceUnavailable возвращается, когда для корта не задана базовая ставка
	ErrPriceUnavailable = errors.New("price unavailable for court")

	// ErrEquipmentNotFound возвращается, когда позиция инвентаря не найдена
	ErrEquipmentNotFound = errors.New("equipment not found")

	// ErrEquipmentUnavailable возвращается, когда запрошено больше, чем доступно
	ErrEquipmentUnavailable = errors.New("equipment quantity unavailable")

	// ErrCoachNotFound возвращается, когда тренер не найден
	ErrCoachNotFound = errors.New("coach not found")

	// ErrCoachNotAvailable возвращается, когда слот не покрыт окном доступности тренера
	ErrCoachNotAvailable = errors.New("coach is not available for this slot")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrOutsideWorkingHours возвращается, когда слот выходит за рабочие часы корта
	ErrOutsideWorkingHours = errors.New("slot is outside working hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
