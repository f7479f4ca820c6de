package create_pricing_rule

import (
	"errors"
	"net/http"

	"github.com/courtside/booking-service/internal/api/handlers"
	"github.com/courtside/booking-service/internal/service/pricingrules"
	"github.com/courtside/booking-service/internal/service/pricingrules/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRule        = "некорректные параметры правила"
)

type Handler struct {
	service PricingRuleService
	logger  Logger
}

func NewHandler(service PricingRuleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/pricing-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/pricing-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, pricingrules.ErrInvalidInput):
			h.logger.Warn("POST /admin/pricing-rules - Invalid rule: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("POST /admin/pricing-rules - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/pricing-rules - Rule created: rule_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
