package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/domain"
)

// CourtResponse корт в каталоге
type CourtResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	CourtType   string    `json:"courtType"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CourtListResponse ответ со списком кортов
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// EquipmentResponse позиция инвентаря в каталоге
// RentalPrice в центах за бронирование
type EquipmentResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	EquipmentType     string    `json:"equipmentType"`
	RentalPrice       int64     `json:"rentalPrice"`
	AvailableQuantity int       `json:"availableQuantity"`
	IsActive          bool      `json:"isActive"`
}

// EquipmentListResponse ответ со списком инвентаря
type EquipmentListResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
}

// FromDomainCourtList конвертирует список кортов в ответ сервиса
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	items := make([]CourtResponse, 0, len(courts))
	for _, c := range courts {
		items = append(items, CourtResponse{
			ID:          c.ID,
			Name:        c.Name,
			CourtType:   string(c.CourtType),
			Description: c.Description,
			IsActive:    c.IsActive,
			CreatedAt:   c.CreatedAt,
		})
	}
	return &CourtListResponse{Courts: items}
}

// FromDomainEquipmentList конвертирует список инвентаря в ответ сервиса
func FromDomainEquipmentList(equipment []*domain.Equipment) *EquipmentListResponse {
	items := make([]EquipmentResponse, 0, len(equipment))
	for _, e := range equipment {
		items = append(items, EquipmentResponse{
			ID:                e.ID,
			Name:              e.Name,
			EquipmentType:     string(e.EquipmentType),
			RentalPrice:       int64(e.RentalPrice),
			AvailableQuantity: e.AvailableQuantity,
			IsActive:          e.IsActive,
		})
	}
	return &EquipmentListResponse{Equipment: items}
}
