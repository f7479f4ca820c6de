package get_available_slots

import (
	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/domain"
	getAvailableSlots "github.com/courtside/booking-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель часового слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "14:00"
	EndTime   string `json:"endTime"`   // "15:00"
	Available bool   `json:"available"`
}

// AvailableSlotsResponse HTTP модель ответа с сеткой слотов
type AvailableSlotsResponse struct {
	CourtID uuid.UUID      `json:"courtId"`
	Date    string         `json:"date"` // "2025-10-15"
	Slots   []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Available: s.Available,
		})
	}

	return &AvailableSlotsResponse{
		CourtID: resp.CourtID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}
