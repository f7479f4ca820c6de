package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtside/booking-service/internal/availability"
	"github.com/courtside/booking-service/internal/domain"
	catalogRepo "github.com/courtside/booking-service/internal/infra/storage/catalog"
	"github.com/courtside/booking-service/pkg/ptr"
)

// UseCase use case для получения сетки доступности корта на дату
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: court=%s, date=%s",
		req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование корта
	court, err := uc.catalogRepo.GetCourtByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailableSlots: court id=%s not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get court id=%s: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.IsActive {
		uc.logger.Warn("GetAvailableSlots: court id=%s is inactive", req.CourtID)
		return nil, ErrCourtInactive
	}

	// 3. Загружаем бронирования корта на дату (отмененные слот не занимают)
	bookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		CourtID: ptr.Ptr(req.CourtID),
		Date:    ptr.Ptr(req.Date),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for court id=%s: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Строим сетку рабочего дня
	slots := availability.ComputeCourtSlots(req.CourtID, req.Date, bookings)

	response := &Response{
		CourtID: req.CourtID,
		Date:    req.Date,
		Slots:   make([]Slot, 0, len(slots)),
	}
	for _, s := range slots {
		response.Slots = append(response.Slots, Slot{
			StartTime: s.Range.Start,
			EndTime:   s.Range.End,
			Available: s.Available,
		})
	}

	uc.logger.Info("GetAvailableSlots: court=%s, date=%s, %d slots computed",
		req.CourtID, req.Date.Format(domain.DateFormat), len(response.Slots))
	return response, nil
}
