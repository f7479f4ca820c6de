package get_coach_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/availability"
	"github.com/courtside/booking-service/internal/domain"
	catalogRepo "github.com/courtside/booking-service/internal/infra/storage/catalog"
	"github.com/courtside/booking-service/pkg/ptr"
)

// UseCase use case получения доступности тренера на дату
type UseCase struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalogRepo CatalogRepository, logger Logger) *UseCase {
	return &UseCase{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCoachAvailability: coach=%s, date=%s",
		req.CoachID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCoachAvailability: validation failed: %v", err)
		return nil, err
	}

	coach, err := uc.catalogRepo.GetCoachByID(ctx, req.CoachID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCoachNotFound) {
			uc.logger.Warn("GetCoachAvailability: coach id=%s not found", req.CoachID)
			return nil, ErrCoachNotFound
		}
		uc.logger.Error("GetCoachAvailability: failed to get coach id=%s: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
	}
	if !coach.IsActive {
		uc.logger.Warn("GetCoachAvailability: coach id=%s is inactive", req.CoachID)
		return nil, ErrCoachNotFound
	}

	windows, err := uc.catalogRepo.GetCoachAvailability(ctx, coach.ID)
	if err != nil {
		uc.logger.Error("GetCoachAvailability: failed to get windows for coach id=%s: %v", coach.ID, err)
		return nil, fmt.Errorf("%w: failed to get coach availability: %v", ErrInternal, err)
	}

	response := &Response{
		CoachID:   coach.ID,
		CoachName: coach.Name,
		Date:      req.Date.Format(domain.DateFormat),
		Windows:   make([]Window, 0),
	}

	for _, w := range availability.WindowsForDay(coach.ID, windows, req.Date) {
		response.Windows = append(response.Windows, Window{
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		})
	}

	// Если запрошен конкретный диапазон, отвечаем и на вопрос "свободен ли"
	if !req.StartTime.IsZero() && !req.EndTime.IsZero() {
		slot := domain.TimeRange{Start: req.StartTime, End: req.EndTime}
		response.Available = ptr.Ptr(availability.IsCoachAvailable(coach.ID, windows, req.Date, slot))
	}

	uc.logger.Info("GetCoachAvailability: coach=%s, date=%s, %d windows",
		coach.ID, response.Date, len(response.Windows))
	return response, nil
}

func validateRequest(req *Request) error {
	if req.CoachID == uuid.Nil {
		return fmt.Errorf("%w: coachID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Диапазон либо не указан вовсе, либо указан полностью и корректно
	if req.StartTime.IsZero() != req.EndTime.IsZero() {
		return fmt.Errorf("%w: both start and end time must be provided", ErrInvalidInput)
	}
	if !req.StartTime.IsZero() {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid start time", ErrInvalidTimeRange)
		}
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid end time", ErrInvalidTimeRange)
		}
		if !req.StartTime.IsBefore(req.EndTime) {
			return fmt.Errorf("%w: start time must be before end time", ErrInvalidTimeRange)
		}
	}

	return nil
}
