package list_pricing_rules

import (
	"net/http"

	"github.com/courtside/booking-service/internal/api/handlers"
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

// Handle GET /api/v1/admin/pricing-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/pricing-rules - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/pricing-rules - Success: count=%d", len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
