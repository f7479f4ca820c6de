package quote_price

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID == uuid.Nil {
		return fmt.Errorf("%w: courtID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time", ErrInvalidTimeRange)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time", ErrInvalidTimeRange)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidTimeRange)
	}

	for _, sel := range req.Equipment {
		if sel.EquipmentID == uuid.Nil {
			return fmt.Errorf("%w: equipmentID is required", ErrInvalidInput)
		}
		if sel.Quantity <= 0 {
			return fmt.Errorf("%w: equipment quantity must be positive", ErrInvalidInput)
		}
	}

	return nil
}

// resolveEquipment сопоставляет выбранные позиции с каталогом и
// проверяет активность и доступное количество
func resolveEquipment(selections []EquipmentSelection, catalog []*domain.Equipment) ([]domain.EquipmentLine, error) {
	byID := make(map[uuid.UUID]*domain.Equipment, len(catalog))
	for _, item := range catalog {
		byID[item.ID] = item
	}

	lines := make([]domain.EquipmentLine, 0, len(selections))
	for _, sel := range selections {
		item, ok := byID[sel.EquipmentID]
		if !ok || !item.IsActive {
			return nil, fmt.Errorf("%w: equipment id=%s", ErrEquipmentNotFound, sel.EquipmentID)
		}
		if sel.Quantity > item.AvailableQuantity {
			return nil, fmt.Errorf("%w: equipment id=%s, requested=%d, available=%d",
				ErrEquipmentUnavailable, sel.EquipmentID, sel.Quantity, item.AvailableQuantity)
		}
		lines = append(lines, domain.EquipmentLine{
			Equipment: *item,
			Quantity:  sel.Quantity,
		})
	}

	return lines, nil
}
