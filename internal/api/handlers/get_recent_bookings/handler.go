package get_recent_bookings

import (
	"net/http"
	"strconv"

	"github.com/courtside/booking-service/internal/api/handlers"
)

const msgInvalidLimit = "некорректное значение limit"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings/recent?limit=50
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /admin/bookings/recent - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.GetRecent(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /admin/bookings/recent - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings/recent - Success: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
