package create_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking, equipment []domain.BookingEquipment) (*domain.Booking, error)
	GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	GetCourtByID(ctx context.Context, id uuid.UUID) (*domain.Court, error)
	GetBasePriceByCourtID(ctx context.Context, courtID uuid.UUID) (*domain.CourtBasePrice, error)
	GetEquipmentByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Equipment, error)
	GetCoachByID(ctx context.Context, id uuid.UUID) (*domain.Coach, error)
	GetCoachAvailability(ctx context.Context, coachID uuid.UUID) ([]domain.CoachAvailability, error)
}

// RuleRepository интерфейс репозитория правил ценообразования
type RuleRepository interface {
	ListActive(ctx context.Context) ([]*domain.PricingRule, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	BookingCreated(ctx context.Context, booking *domain.Booking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
