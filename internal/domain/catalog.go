package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/pkg/types"
)

// CourtType represents the category of a court
type CourtType string

const (
	CourtTypeIndoor  CourtType = "indoor"
	CourtTypeOutdoor CourtType = "outdoor"
)

// Court represents a bookable court
type Court struct {
	ID          uuid.UUID
	Name        string
	CourtType   CourtType
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CourtBasePrice base hourly rate for a court
type CourtBasePrice struct {
	ID             uuid.UUID
	CourtID        uuid.UUID
	BaseHourlyRate Cents
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EquipmentType represents the category of a rental item
type EquipmentType string

const (
	EquipmentTypeRacket EquipmentType = "racket"
	EquipmentTypeShoes  EquipmentType = "shoes"
)

// Equipment represents a rental catalog item
type Equipment struct {
	ID                uuid.UUID
	Name              string
	EquipmentType     EquipmentType
	TotalQuantity     int
	AvailableQuantity int
	RentalPrice       Cents
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EquipmentLine a selected catalog item with a requested quantity
type EquipmentLine struct {
	Equipment Equipment
	Quantity  int
}

// Coach represents a coach available for hire alongside a court
type Coach struct {
	ID             uuid.UUID
	Name           string
	Bio            *string
	HourlyRate     Cents
	Specialization *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CoachAvailability a recurring weekly availability window for a coach.
// DayOfWeek uses the 0=Sunday..6=Saturday index.
type CoachAvailability struct {
	ID        uuid.UUID
	CoachID   uuid.UUID
	DayOfWeek int
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
}
