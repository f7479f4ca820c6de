package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/availability"
	"github.com/courtside/booking-service/internal/domain"
	catalogRepo "github.com/courtside/booking-service/internal/infra/storage/catalog"
	"github.com/courtside/booking-service/internal/pricing"
	"github.com/courtside/booking-service/pkg/ptr"
)

// UseCase use case создания бронирования.
//
// Проверка занятости слота и вставка выполняются в одной serializable
// транзакции: выборка бронирований корта на дату блокирует строки
// (FOR UPDATE), поэтому два конкурирующих запроса на один слот не могут
// зафиксироваться оба. Цена фиксируется снапшотом на момент создания и
// дальнейшими изменениями правил не пересчитывается.
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	ruleRepo    RuleRepository
	txManager   TransactionManager
	events      EventPublisher
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	ruleRepo RuleRepository,
	txManager TransactionManager,
	events EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		ruleRepo:    ruleRepo,
		txManager:   txManager,
		events:      events,
		logger:      logger,
	}
}

// Execute выполняет создание бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, court=%s, date=%s, slot=%s-%s",
		req.UserID, req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Справочники читаем вне транзакции: корт, ставка, инвентарь,
	// тренер и правила меняются редко, держать их под блокировкой не нужно
	court, basePrice, err := uc.loadCourt(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}

	equipment, err := uc.loadEquipment(ctx, req)
	if err != nil {
		return nil, err
	}

	coach, err := uc.loadCoach(ctx, req)
	if err != nil {
		return nil, err
	}

	rules, err := uc.ruleRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list pricing rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list pricing rules: %v", ErrInternal, err)
	}

	requested := domain.TimeRange{Start: req.StartTime, End: req.EndTime}

	// 3. Считаем цену по снапшоту входных данных
	breakdown, err := pricing.CalculatePrice(pricing.Context{
		Court:          court,
		BaseHourlyRate: basePrice.BaseHourlyRate,
		Date:           req.Date,
		Slot:           requested,
		Equipment:      equipment,
		Coach:          coach,
		Rules:          rules,
	})
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidTimeRange):
			uc.logger.Warn("CreateBooking: invalid time range: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
		case errors.Is(err, pricing.ErrPriceUnavailable):
			uc.logger.Warn("CreateBooking: price unavailable for court=%s", req.CourtID)
			return nil, ErrPriceUnavailable
		default:
			uc.logger.Error("CreateBooking: engine error for court=%s: %v", req.CourtID, err)
			return nil, fmt.Errorf("%w: pricing engine: %v", ErrInternal, err)
		}
	}

	booking := buildBooking(req, breakdown)
	lines := buildEquipmentLines(equipment)

	// 4. Проверка занятости и вставка в одной serializable транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetByFilter(txCtx, domain.BookingsFilter{
			CourtID: ptr.Ptr(req.CourtID),
			Date:    ptr.Ptr(req.Date),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if hasConflict(requested, existing) {
			return ErrSlotNotAvailable
		}

		if _, err := uc.bookingRepo.Create(txCtx, booking, lines); err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateBooking: slot not available: court=%s, date=%s, slot=%s-%s",
				req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: transaction failed for user=%d, court=%s: %v",
			req.UserID, req.CourtID, err)
		return nil, err
	}

	// 5. Событие публикуем после фиксации транзакции
	if err := uc.events.BookingCreated(ctx, booking); err != nil {
		uc.logger.Error("CreateBooking: failed to publish event for booking id=%s: %v", booking.ID, err)
	}

	uc.logger.Info("CreateBooking: booking created: id=%s, user=%d, total=%s",
		booking.ID, req.UserID, booking.TotalPrice.Format())
	return FromDomainBooking(booking), nil
}

func (uc *UseCase) loadCourt(ctx context.Context, courtID uuid.UUID) (*domain.Court, *domain.CourtBasePrice, error) {
	court, err := uc.catalogRepo.GetCourtByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%s not found", courtID)
			return nil, nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%s: %v", courtID, err)
		return nil, nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}
	if !court.IsActive {
		uc.logger.Warn("CreateBooking: court id=%s is inactive", courtID)
		return nil, nil, ErrCourtInactive
	}

	basePrice, err := uc.catalogRepo.GetBasePriceByCourtID(ctx, courtID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrPriceNotFound) {
			uc.logger.Warn("CreateBooking: no base price for court id=%s", courtID)
			return nil, nil, ErrPriceUnavailable
		}
		uc.logger.Error("CreateBooking: failed to get base price for court id=%s: %v", courtID, err)
		return nil, nil, fmt.Errorf("%w: failed to get base price: %v", ErrInternal, err)
	}

	return court, basePrice, nil
}

func (uc *UseCase) loadEquipment(ctx context.Context, req *Request) ([]domain.EquipmentLine, error) {
	if len(req.Equipment) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(req.Equipment))
	for _, sel := range req.Equipment {
		ids = append(ids, sel.EquipmentID)
	}

	catalog, err := uc.catalogRepo.GetEquipmentByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get equipment: %v", err)
		return nil, fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
	}

	lines, err := resolveEquipment(req.Equipment, catalog)
	if err != nil {
		uc.logger.Warn("CreateBooking: equipment selection rejected: %v", err)
		return nil, err
	}

	return lines, nil
}

func (uc *UseCase) loadCoach(ctx context.Context, req *Request) (*domain.Coach, error) {
	if req.CoachID == nil {
		return nil, nil
	}

	coach, err := uc.catalogRepo.GetCoachByID(ctx, *req.CoachID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCoachNotFound) {
			uc.logger.Warn("CreateBooking: coach id=%s not found", *req.CoachID)
			return nil, ErrCoachNotFound
		}
		uc.logger.Error("CreateBooking: failed to get coach id=%s: %v", *req.CoachID, err)
		return nil, fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
	}
	if !coach.IsActive {
		uc.logger.Warn("CreateBooking: coach id=%s is inactive", *req.CoachID)
		return nil, ErrCoachNotFound
	}

	windows, err := uc.catalogRepo.GetCoachAvailability(ctx, coach.ID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get coach availability id=%s: %v", coach.ID, err)
		return nil, fmt.Errorf("%w: failed to get coach availability: %v", ErrInternal, err)
	}

	// Проверяются только недельные окна тренера. Пересечение с его
	// другими бронированиями здесь не проверяется: при необходимости
	// добавить выборку bookingRepo.GetByFilter по coach_id внутри транзакции.
	slot := domain.TimeRange{Start: req.StartTime, End: req.EndTime}
	if !availability.IsCoachAvailable(coach.ID, windows, req.Date, slot) {
		uc.logger.Warn("CreateBooking: coach id=%s not available on %s %s-%s",
			coach.ID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
		return nil, ErrCoachNotAvailable
	}

	return coach, nil
}

// buildBooking собирает бронирование с ценовым снапшотом
func buildBooking(req *Request, breakdown *domain.PriceBreakdown) *domain.Booking {
	var adjustmentsTotal domain.Cents
	for _, adj := range breakdown.CourtAdjustments {
		adjustmentsTotal += adj.Amount
	}

	return &domain.Booking{
		UserID:           req.UserID,
		CourtID:          req.CourtID,
		CoachID:          req.CoachID,
		BookingDate:      req.Date,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		Status:           domain.StatusPending,
		BasePrice:        breakdown.BasePrice,
		EquipmentPrice:   breakdown.EquipmentTotal,
		CoachPrice:       breakdown.CoachTotal,
		AdjustmentsPrice: adjustmentsTotal,
		TotalPrice:       breakdown.TotalPrice,
		PriceBreakdown:   breakdown,
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		CustomerPhone:    req.CustomerPhone,
		Notes:            req.Notes,
	}
}

// buildEquipmentLines фиксирует цену аренды каждой позиции на момент бронирования
func buildEquipmentLines(equipment []domain.EquipmentLine) []domain.BookingEquipment {
	lines := make([]domain.BookingEquipment, 0, len(equipment))
	for _, line := range equipment {
		lines = append(lines, domain.BookingEquipment{
			EquipmentID:    line.Equipment.ID,
			Quantity:       line.Quantity,
			PriceAtBooking: line.Equipment.RentalPrice,
		})
	}
	return lines
}
