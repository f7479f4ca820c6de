package quote_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/availability"
	"github.com/courtside/booking-service/internal/domain"
	catalogRepo "github.com/courtside/booking-service/internal/infra/storage/catalog"
	"github.com/courtside/booking-service/internal/pricing"
)

// UseCase use case расчета цены бронирования без его создания.
// Возвращает ту же детализацию, что будет зафиксирована при создании.
type UseCase struct {
	catalogRepo CatalogRepository
	ruleRepo    RuleRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	ruleRepo RuleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo: catalogRepo,
		ruleRepo:    ruleRepo,
		logger:      logger,
	}
}

// Execute выполняет расчет цены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePrice: court=%s, date=%s, slot=%s-%s",
		req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем снапшоты входных данных для движка цены
	priceCtx, err := uc.buildPricingContext(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Считаем цену
	breakdown, err := pricing.CalculatePrice(*priceCtx)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidTimeRange):
			uc.logger.Warn("QuotePrice: invalid time range: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
		case errors.Is(err, pricing.ErrPriceUnavailable):
			uc.logger.Warn("QuotePrice: price unavailable for court=%s", req.CourtID)
			return nil, ErrPriceUnavailable
		default:
			uc.logger.Error("QuotePrice: engine error for court=%s: %v", req.CourtID, err)
			return nil, fmt.Errorf("%w: pricing engine: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("QuotePrice: court=%s, total=%s", req.CourtID, breakdown.TotalPrice.Format())
	return FromBreakdown(req, breakdown), nil
}

// buildPricingContext загружает корт, ставку, инвентарь, тренера и активные
// правила. Тренер должен покрывать запрошенный слот своим недельным окном.
func (uc *UseCase) buildPricingContext(ctx context.Context, req *Request) (*pricing.Context, error) {
	court, err := uc.catalogRepo.GetCourtByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCourtNotFound) {
			uc.logger.Warn("QuotePrice: court id=%s not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("QuotePrice: failed to get court id=%s: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}
	if !court.IsActive {
		uc.logger.Warn("QuotePrice: court id=%s is inactive", req.CourtID)
		return nil, ErrCourtInactive
	}

	basePrice, err := uc.catalogRepo.GetBasePriceByCourtID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrPriceNotFound) {
			uc.logger.Warn("QuotePrice: no base price for court id=%s", req.CourtID)
			return nil, ErrPriceUnavailable
		}
		uc.logger.Error("QuotePrice: failed to get base price for court id=%s: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get base price: %v", ErrInternal, err)
	}

	priceCtx := &pricing.Context{
		Court:          court,
		BaseHourlyRate: basePrice.BaseHourlyRate,
		Date:           req.Date,
		Slot: domain.TimeRange{
			Start: req.StartTime,
			End:   req.EndTime,
		},
	}

	// Инвентарь
	if len(req.Equipment) > 0 {
		lines, err := uc.loadEquipment(ctx, req)
		if err != nil {
			return nil, err
		}
		priceCtx.Equipment = lines
	}

	// Тренер
	if req.CoachID != nil {
		coach, err := uc.loadCoach(ctx, req)
		if err != nil {
			return nil, err
		}
		priceCtx.Coach = coach
	}

	// Активные правила ценообразования
	rules, err := uc.ruleRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("QuotePrice: failed to list pricing rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list pricing rules: %v", ErrInternal, err)
	}
	priceCtx.Rules = rules

	return priceCtx, nil
}

func (uc *UseCase) loadEquipment(ctx context.Context, req *Request) ([]domain.EquipmentLine, error) {
	ids := make([]uuid.UUID, 0, len(req.Equipment))
	for _, sel := range req.Equipment {
		ids = append(ids, sel.EquipmentID)
	}

	catalog, err := uc.catalogRepo.GetEquipmentByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("QuotePrice: failed to get equipment: %v", err)
		return nil, fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
	}

	lines, err := resolveEquipment(req.Equipment, catalog)
	if err != nil {
		uc.logger.Warn("QuotePrice: equipment selection rejected: %v", err)
		return nil, err
	}

	return lines, nil
}

func (uc *UseCase) loadCoach(ctx context.Context, req *Request) (*domain.Coach, error) {
	coach, err := uc.catalogRepo.GetCoachByID(ctx, *req.CoachID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCoachNotFound) {
			uc.logger.Warn("QuotePrice: coach id=%s not found", *req.CoachID)
			return nil, ErrCoachNotFound
		}
		uc.logger.Error("QuotePrice: failed to get coach id=%s: %v", *req.CoachID, err)
		return nil, fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
	}
	if !coach.IsActive {
		uc.logger.Warn("QuotePrice: coach id=%s is inactive", *req.CoachID)
		return nil, ErrCoachNotFound
	}

	windows, err := uc.catalogRepo.GetCoachAvailability(ctx, coach.ID)
	if err != nil {
		uc.logger.Error("QuotePrice: failed to get coach availability id=%s: %v", coach.ID, err)
		return nil, fmt.Errorf("%w: failed to get coach availability: %v", ErrInternal, err)
	}

	slot := domain.TimeRange{Start: req.StartTime, End: req.EndTime}
	if !availability.IsCoachAvailable(coach.ID, windows, req.Date, slot) {
		uc.logger.Warn("QuotePrice: coach id=%s not available on %s %s-%s",
			coach.ID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
		return nil, ErrCoachNotAvailable
	}

	return coach, nil
}
