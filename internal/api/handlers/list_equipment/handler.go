package list_equipment

import (
	"net/http"

	"github.com/courtside/booking-service/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/equipment?includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	result, err := h.service.ListEquipment(r.Context(), includeInactive)
	if err != nil {
		h.logger.Error("GET /equipment - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /equipment - Success: count=%d", len(result.Equipment))
	handlers.RespondJSON(w, http.StatusOK, result)
}
