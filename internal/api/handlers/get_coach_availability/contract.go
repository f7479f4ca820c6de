package get_coach_availability

import (
	"context"

	getCoachAvailability "github.com/courtside/booking-service/internal/usecase/get_coach_availability"
)

type GetCoachAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getCoachAvailability.Request) (*getCoachAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
