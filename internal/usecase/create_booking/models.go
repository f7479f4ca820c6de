package create_booking

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

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64                // ID пользователя из заголовка аутентификации
	CourtID   uuid.UUID            // ID корта
	Date      time.Time            // Дата бронирования (без времени)
	StartTime types.TimeString     // Время начала, например "18:00"
	EndTime   types.TimeString     // Время конца, например "20:00"
	Equipment []EquipmentSelection // Выбранный инвентарь (опционально)
	CoachID   *uuid.UUID           // Тренер (опционально)

	CustomerName  *string // Имя клиента (опционально)
	CustomerEmail *string // Email клиента (опционально)
	CustomerPhone *string // Телефон клиента (опционально)
	Notes         *string // Комментарий (опционально)
}

// Response модель ответа с созданным бронированием
// Все суммы в центах
type Response struct {
	ID          uuid.UUID
	UserID      int64
	CourtID     uuid.UUID
	CoachID     *uuid.UUID
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      string

	BasePrice        int64
	EquipmentPrice   int64
	CoachPrice       int64
	AdjustmentsPrice int64
	TotalPrice       int64
	PriceBreakdown   *domain.PriceBreakdown

	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomainBooking конвертирует созданное бронирование в ответ usecase
func FromDomainBooking(b *domain.Booking) *Response {
	return &Response{
		ID:               b.ID,
		UserID:           b.UserID,
		CourtID:          b.CourtID,
		CoachID:          b.CoachID,
		BookingDate:      b.BookingDate,
		StartTime:        b.StartTime,
		EndTime:          b.EndTime,
		Status:           string(b.Status),
		BasePrice:        int64(b.BasePrice),
		EquipmentPrice:   int64(b.EquipmentPrice),
		CoachPrice:       int64(b.CoachPrice),
		AdjustmentsPrice: int64(b.AdjustmentsPrice),
		TotalPrice:       int64(b.TotalPrice),
		PriceBreakdown:   b.PriceBreakdown,
		Notes:            b.Notes,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
