package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetEquipmentByBookingID(ctx context.Context, bookingID uuid.UUID) ([]domain.BookingEquipment, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetRecent(ctx context.Context, limit int) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
	Cancel(ctx context.Context, id uuid.UUID) error
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	BookingCancelled(ctx context.Context, booking *domain.Booking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
