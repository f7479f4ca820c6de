package quote_price

import (
	"errors"
	"net/http"

	"github.com/courtside/booking-service/internal/api/handlers"
	quotePrice "github.com/courtside/booking-service/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени"
	msgCourtNotFound        = "корт не найден"
	msgCourtInactive        = "корт недоступен для бронирования"
	msgPriceUnavailable     = "для корта не задана базовая ставка"
	msgEquipmentNotFound    = "инвентарь не найден"
	msgEquipmentUnavailable = "запрошенное количество инвентаря недоступно"
	msgCoachNotFound        = "тренер не найден"
	msgCoachNotAvailable    = "тренер недоступен в выбранное время"
	msgInvalidTimeRange     = "некорректный временной диапазон"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/price-quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuotePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /price-quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /price-quote - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrCourtNotFound):
			h.logger.Warn("POST /price-quote - Court not found: court_id=%s", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, quotePrice.ErrCourtInactive):
			h.logger.Warn("POST /price-quote - Court inactive: court_id=%s", req.CourtID)
			handlers.RespondBadRequest(w, msgCourtInactive)

		case errors.Is(err, quotePrice.ErrPriceUnavailable):
			h.logger.Warn("POST /price-quote - Price unavailable: court_id=%s", req.CourtID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPriceUnavailable)

		case errors.Is(err, quotePrice.ErrEquipmentNotFound):
			h.logger.Warn("POST /price-quote - Equipment not found: court_id=%s", req.CourtID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, quotePrice.ErrEquipmentUnavailable):
			h.logger.Warn("POST /price-quote - Equipment unavailable: court_id=%s", req.CourtID)
			handlers.RespondError(w, http.StatusConflict, msgEquipmentUnavailable)

		case errors.Is(err, quotePrice.ErrCoachNotFound):
			h.logger.Warn("POST /price-quote - Coach not found: court_id=%s", req.CourtID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, quotePrice.ErrCoachNotAvailable):
			h.logger.Warn("POST /price-quote - Coach not available: court_id=%s", req.CourtID)
			handlers.RespondError(w, http.StatusConflict, msgCoachNotAvailable)

		case errors.Is(err, quotePrice.ErrInvalidTimeRange), errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("POST /price-quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("POST /price-quote - Failed: court_id=%s, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /price-quote - Success: court_id=%s, total=%d", req.CourtID, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, result)
}
