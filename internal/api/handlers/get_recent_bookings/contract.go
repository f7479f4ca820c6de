package get_recent_bookings

import (
	"context"

	"github.com/courtside/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetRecent(ctx context.Context, limit int) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
