package get_coach_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/pkg/types"
)

// Request модель запроса доступности тренера
// StartTime/EndTime опциональны: без них возвращаются только окна дня
type Request struct {
	CoachID   uuid.UUID        // ID тренера
	Date      time.Time        // Дата (без времени)
	StartTime types.TimeString // Начало запрашиваемого диапазона (опционально)
	EndTime   types.TimeString // Конец запрашиваемого диапазона (опционально)
}

// Window окно доступности тренера в течение дня
type Window struct {
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// Response модель ответа с доступностью тренера на дату
type Response struct {
	CoachID   uuid.UUID `json:"coachId"`
	CoachName string    `json:"coachName"`
	Date      string    `json:"date"`
	Windows   []Window  `json:"windows"`
	Available *bool     `json:"available,omitempty"` // Заполняется, если запрошен диапазон
}
