package update_pricing_rule

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/courtside/booking-service/internal/api/handlers"
	"github.com/courtside/booking-service/internal/service/pricingrules"
	"github.com/courtside/booking-service/internal/service/pricingrules/models"
)

const (
	msgInvalidRuleID      = "некорректный ID правила"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRule        = "некорректные параметры правила"
	msgRuleNotFound       = "правило не найдено"
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

// Handle PATCH /api/v1/admin/pricing-rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	ruleID, err := uuid.Parse(vars["ruleId"])
	if err != nil {
		h.logger.Warn("PATCH /admin/pricing-rules/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	var req models.UpdateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/pricing-rules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), ruleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, pricingrules.ErrRuleNotFound):
			h.logger.Warn("PATCH /admin/pricing-rules/{id} - Rule not found: rule_id=%s", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		case errors.Is(err, pricingrules.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/pricing-rules/{id} - Invalid rule: rule_id=%s, %v", ruleID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("PATCH /admin/pricing-rules/{id} - Failed: rule_id=%s, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/pricing-rules/{id} - Rule updated: rule_id=%s", ruleID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
