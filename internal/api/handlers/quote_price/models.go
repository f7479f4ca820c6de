package quote_price

import (
	"time"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/domain"
	quotePrice "github.com/courtside/booking-service/internal/usecase/quote_price"
	"github.com/courtside/booking-service/pkg/types"
)

// EquipmentSelectionRequest HTTP модель выбранной позиции инвентаря
type EquipmentSelectionRequest struct {
	EquipmentID uuid.UUID `json:"equipmentId"`
	Quantity    int       `json:"quantity"`
}

// QuotePriceRequest HTTP request model
type QuotePriceRequest struct {
	CourtID   uuid.UUID                   `json:"courtId"`
	Date      string                      `json:"date"`      // "2025-10-15"
	StartTime string                      `json:"startTime"` // "18:00"
	EndTime   string                      `json:"endTime"`   // "20:00"
	Equipment []EquipmentSelectionRequest `json:"equipment,omitempty"`
	CoachID   *uuid.UUID                  `json:"coachId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuotePriceRequest) ToUseCaseRequest() (*quotePrice.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	equipment := make([]quotePrice.EquipmentSelection, 0, len(r.Equipment))
	for _, sel := range r.Equipment {
		equipment = append(equipment, quotePrice.EquipmentSelection{
			EquipmentID: sel.EquipmentID,
			Quantity:    sel.Quantity,
		})
	}

	return &quotePrice.Request{
		CourtID:   r.CourtID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Equipment: equipment,
		CoachID:   r.CoachID,
	}, nil
}
