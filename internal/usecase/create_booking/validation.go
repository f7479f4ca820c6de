package create_booking

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

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

	// Бронирование должно укладываться в рабочие часы клуба
	if req.StartTime.Hour() < domain.OpeningHour || req.EndTime.Hour() > domain.ClosingHour {
		return fmt.Errorf("%w: bookings are accepted between %02d:00 and %02d:00",
			ErrOutsideWorkingHours, domain.OpeningHour, domain.ClosingHour)
	}

	for _, sel := range req.Equipment {
		if sel.EquipmentID == uuid.Nil {
			return fmt.Errorf("%w: equipmentID is required", ErrInvalidInput)
		}
		if sel.Quantity <= 0 {
			return fmt.Errorf("%w: equipment quantity must be positive", ErrInvalidInput)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	if req.CustomerName != nil && len(*req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	return nil
}

// hasConflict проверяет пересечение запрошенного диапазона с существующими
// бронированиями. Диапазоны полуоткрытые, поэтому стык "конец одного равен
// началу другого" конфликтом не считается.
func hasConflict(requested domain.TimeRange, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if !b.OccupiesSlot() {
			continue
		}
		if b.StartTime.IsBefore(requested.End) && requested.Start.IsBefore(b.EndTime) {
			return true
		}
	}
	return false
}

// resolveEquipment сопоставляет выбранные позиции с каталогом,
// проверяя активность и доступное количество
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
