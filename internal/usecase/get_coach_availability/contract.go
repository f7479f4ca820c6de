package get_coach_availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/domain"
)

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	GetCoachByID(ctx context.Context, id uuid.UUID) (*domain.Coach, error)
	GetCoachAvailability(ctx context.Context, coachID uuid.UUID) ([]domain.CoachAvailability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
