package list_courts

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

// Handle GET /api/v1/courts?includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	result, err := h.service.ListCourts(r.Context(), includeInactive)
	if err != nil {
		h.logger.Error("GET /courts - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /courts - Success: count=%d", len(result.Courts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
