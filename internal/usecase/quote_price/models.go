package quote_price

import (
	"time"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/domain"
	"github.com/courtside/booking-service/pkg/types"
)

// EquipmentSelection выбранная позиция инвентаря
type EquipmentSelection struct {
	EquipmentID uuid.UUID
	Quantity    int
}

// Request модель запроса на расчет цены
type Request struct {
	CourtID   uuid.UUID            // ID корта
	Date      time.Time            // Дата бронирования (без времени)
	StartTime types.TimeString     // Время начала, например "18:00"
	EndTime   types.TimeString     // Время конца, например "20:00"
	Equipment []EquipmentSelection // Выбранный инвентарь (опционально)
	CoachID   *uuid.UUID           // Тренер (опционально)
}

// Adjustment строка корректировки цены
type Adjustment struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// Response модель ответа с детализацией цены
// Все суммы в центах
type Response struct {
	CourtID          uuid.UUID    `json:"courtId"`
	Date             string       `json:"date"`
	StartTime        string       `json:"startTime"`
	EndTime          string       `json:"endTime"`
	DurationHours    int          `json:"durationHours"`
	BasePrice        int64        `json:"basePrice"`
	CourtAdjustments []Adjustment `json:"courtAdjustments"`
	EquipmentTotal   int64        `json:"equipmentTotal"`
	CoachTotal       int64        `json:"coachTotal"`
	TotalPrice       int64        `json:"totalPrice"`
	TotalFormatted   string       `json:"totalFormatted"`
}

// FromBreakdown конвертирует результат движка цены в ответ usecase
func FromBreakdown(req *Request, breakdown *domain.PriceBreakdown) *Response {
	adjustments := make([]Adjustment, 0, len(breakdown.CourtAdjustments))
	for _, adj := range breakdown.CourtAdjustments {
		adjustments = append(adjustments, Adjustment{
			Name:   adj.Name,
			Amount: int64(adj.Amount),
		})
	}

	return &Response{
		CourtID:          req.CourtID,
		Date:             req.Date.Format(domain.DateFormat),
		StartTime:        req.StartTime.String(),
		EndTime:          req.EndTime.String(),
		DurationHours:    domain.TimeRange{Start: req.StartTime, End: req.EndTime}.DurationHours(),
		BasePrice:        int64(breakdown.BasePrice),
		CourtAdjustments: adjustments,
		EquipmentTotal:   int64(breakdown.EquipmentTotal),
		CoachTotal:       int64(breakdown.CoachTotal),
		TotalPrice:       int64(breakdown.TotalPrice),
		TotalFormatted:   breakdown.TotalPrice.Format(),
	}
}
