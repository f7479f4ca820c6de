package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID int64 `json:"userId"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// AdjustmentResponse строка корректировки цены
type AdjustmentResponse struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// PriceBreakdownResponse снапшот расчета цены бронирования
type PriceBreakdownResponse struct {
	BasePrice        int64                `json:"basePrice"`
	CourtAdjustments []AdjustmentResponse `json:"courtAdjustments"`
	EquipmentTotal   int64                `json:"equipmentTotal"`
	CoachTotal       int64                `json:"coachTotal"`
	TotalPrice       int64                `json:"totalPrice"`
}

// BookingResponse ответ с данными бронирования
// Все денежные суммы в центах
type BookingResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      int64      `json:"userId"`
	CourtID     uuid.UUID  `json:"courtId"`
	CoachID     *uuid.UUID `json:"coachId,omitempty"`
	BookingDate string     `json:"bookingDate"` // "2025-10-15"
	StartTime   string     `json:"startTime"`   // "10:00"
	EndTime     string     `json:"endTime"`     // "12:00"
	Status      string     `json:"status"`

	// Ценовой снапшот, зафиксированный при создании
	BasePrice        int64                   `json:"basePrice"`
	EquipmentPrice   int64                   `json:"equipmentPrice"`
	CoachPrice       int64                   `json:"coachPrice"`
	AdjustmentsPrice int64                   `json:"adjustmentsPrice"`
	TotalPrice       int64                   `json:"totalPrice"`
	TotalFormatted   string                  `json:"totalFormatted"`
	PriceBreakdown   *PriceBreakdownResponse `json:"priceBreakdown,omitempty"`

	CustomerName  *string `json:"customerName,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	// Заполняется только в детальном ответе
	Equipment []EquipmentLineResponse `json:"equipment,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EquipmentLineResponse строка аренды инвентаря
// PriceAtBooking зафиксирована на момент создания бронирования
type EquipmentLineResponse struct {
	EquipmentID    uuid.UUID `json:"equipmentId"`
	Quantity       int       `json:"quantity"`
	PriceAtBooking int64     `json:"priceAtBooking"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:               b.ID,
		UserID:           b.UserID,
		CourtID:          b.CourtID,
		CoachID:          b.CoachID,
		BookingDate:      b.BookingDate.Format(domain.DateFormat),
		StartTime:        b.StartTime.String(),
		EndTime:          b.EndTime.String(),
		Status:           string(b.Status),
		BasePrice:        int64(b.BasePrice),
		EquipmentPrice:   int64(b.EquipmentPrice),
		CoachPrice:       int64(b.CoachPrice),
		AdjustmentsPrice: int64(b.AdjustmentsPrice),
		TotalPrice:       int64(b.TotalPrice),
		TotalFormatted:   b.TotalPrice.Format(),
		PriceBreakdown:   FromDomainBreakdown(b.PriceBreakdown),
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		CustomerPhone:    b.CustomerPhone,
		Notes:            b.Notes,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelled := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// FromDomainEquipmentLines конвертирует строки аренды инвентаря в DTO
func FromDomainEquipmentLines(lines []domain.BookingEquipment) []EquipmentLineResponse {
	if len(lines) == 0 {
		return nil
	}
	items := make([]EquipmentLineResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, EquipmentLineResponse{
			EquipmentID:    line.EquipmentID,
			Quantity:       line.Quantity,
			PriceAtBooking: int64(line.PriceAtBooking),
		})
	}
	return items
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	items := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: items}
}

// FromDomainBreakdown конвертирует снапшот цены в DTO
func FromDomainBreakdown(b *domain.PriceBreakdown) *PriceBreakdownResponse {
	if b == nil {
		return nil
	}

	adjustments := make([]AdjustmentResponse, 0, len(b.CourtAdjustments))
	for _, adj := range b.CourtAdjustments {
		adjustments = append(adjustments, AdjustmentResponse{
			Name:   adj.Name,
			Amount: int64(adj.Amount),
		})
	}

	return &PriceBreakdownResponse{
		BasePrice:        int64(b.BasePrice),
		CourtAdjustments: adjustments,
		EquipmentTotal:   int64(b.EquipmentTotal),
		CoachTotal:       int64(b.CoachTotal),
		TotalPrice:       int64(b.TotalPrice),
	}
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
