package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a court reservation in the system
type Booking struct {
	ID          uuid.UUID
	UserID      int64
	CourtID     uuid.UUID
	CoachID     *uuid.UUID
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      BookingStatus

	// Immutable price snapshot taken at booking time
	BasePrice        Cents
	EquipmentPrice   Cents
	CoachPrice       Cents
	AdjustmentsPrice Cents
	TotalPrice       Cents
	PriceBreakdown   *PriceBreakdown

	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
	Notes         *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the booking counts against court capacity.
// Only cancelled bookings release their slot.
func (b *Booking) OccupiesSlot() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BookingEquipment a rented item line attached to a booking.
// PriceAtBooking denormalizes the unit rental price at booking time.
type BookingEquipment struct {
	ID             uuid.UUID
	BookingID      uuid.UUID
	EquipmentID    uuid.UUID
	Quantity       int
	PriceAtBooking Cents
	CreatedAt      time.Time
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	CourtID          *uuid.UUID     // Фильтр по корту (опционально)
	CoachID          *uuid.UUID     // Фильтр по тренеру (опционально)
	Date             *time.Time     // Конкретная дата (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отмененные бронирования
}
