package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/domain"
	createBooking "github.com/courtside/booking-service/internal/usecase/create_booking"
	"github.com/courtside/booking-service/pkg/types"
)

// EquipmentSelectionRequest HTTP модель выбранной позиции инвентаря
type EquipmentSelectionRequest struct {
	EquipmentID uuid.UUID `json:"equipmentId"`
	Quantity    int       `json:"quantity"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID   uuid.UUID                   `json:"courtId"`
	Date      string                      `json:"date"`      // "2025-10-15"
	StartTime string                      `json:"startTime"` // "18:00"
	EndTime   string                      `json:"endTime"`   // "20:00"
	Equipment []EquipmentSelectionRequest `json:"equipment,omitempty"`
	CoachID   *uuid.UUID                  `json:"coachId,omitempty"`

	CustomerName  *string `json:"customerName,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// AdjustmentResponse строка корректировки цены
type AdjustmentResponse struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// PriceBreakdownResponse снапшот расчета цены
type PriceBreakdownResponse struct {
	BasePrice        int64                `json:"basePrice"`
	CourtAdjustments []AdjustmentResponse `json:"courtAdjustments"`
	EquipmentTotal   int64                `json:"equipmentTotal"`
	CoachTotal       int64                `json:"coachTotal"`
	TotalPrice       int64                `json:"totalPrice"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      int64      `json:"userId"`
	CourtID     uuid.UUID  `json:"courtId"`
	CoachID     *uuid.UUID `json:"coachId,omitempty"`
	BookingDate string     `json:"bookingDate"`
	StartTime   string     `json:"startTime"`
	EndTime     string     `json:"endTime"`
	Status      string     `json:"status"`

	BasePrice        int64                   `json:"basePrice"`
	EquipmentPrice   int64                   `json:"equipmentPrice"`
	CoachPrice       int64                   `json:"coachPrice"`
	AdjustmentsPrice int64                   `json:"adjustmentsPrice"`
	TotalPrice       int64                   `json:"totalPrice"`
	PriceBreakdown   *PriceBreakdownResponse `json:"priceBreakdown,omitempty"`

	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
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

	equipment := make([]createBooking.EquipmentSelection, 0, len(r.Equipment))
	for _, sel := range r.Equipment {
		equipment = append(equipment, createBooking.EquipmentSelection{
			EquipmentID: sel.EquipmentID,
			Quantity:    sel.Quantity,
		})
	}

	return &createBooking.Request{
		UserID:        userID,
		CourtID:       r.CourtID,
		Date:          date,
		StartTime:     startTime,
		EndTime:       endTime,
		Equipment:     equipment,
		CoachID:       r.CoachID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:               resp.ID,
		UserID:           resp.UserID,
		CourtID:          resp.CourtID,
		CoachID:          resp.CoachID,
		BookingDate:      resp.BookingDate.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		Status:           resp.Status,
		BasePrice:        resp.BasePrice,
		EquipmentPrice:   resp.EquipmentPrice,
		CoachPrice:       resp.CoachPrice,
		AdjustmentsPrice: resp.AdjustmentsPrice,
		TotalPrice:       resp.TotalPrice,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.PriceBreakdown != nil {
		adjustments := make([]AdjustmentResponse, 0, len(resp.PriceBreakdown.CourtAdjustments))
		for _, adj := range resp.PriceBreakdown.CourtAdjustments {
			adjustments = append(adjustments, AdjustmentResponse{
				Name:   adj.Name,
				Amount: int64(adj.Amount),
			})
		}
		out.PriceBreakdown = &PriceBreakdownResponse{
			BasePrice:        int64(resp.PriceBreakdown.BasePrice),
			CourtAdjustments: adjustments,
			EquipmentTotal:   int64(resp.PriceBreakdown.EquipmentTotal),
			CoachTotal:       int64(resp.PriceBreakdown.CoachTotal),
			TotalPrice:       int64(resp.PriceBreakdown.TotalPrice),
		}
	}

	return out
}
