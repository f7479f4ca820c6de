package list_courts

import (
	"context"

	"github.com/courtside/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListCourts(ctx context.Context, includeInactive bool) (*models.CourtListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
