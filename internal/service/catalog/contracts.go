package catalog

import (
	"context"

	"github.com/courtside/booking-service/internal/domain"
)

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	ListCourts(ctx context.Context, activeOnly bool) ([]*domain.Court, error)
	ListEquipment(ctx context.Context, activeOnly bool) ([]*domain.Equipment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
