package get_coach_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/courtside/booking-service/internal/api/handlers"
	"github.com/courtside/booking-service/internal/domain"
	getCoachAvailability "github.com/courtside/booking-service/internal/usecase/get_coach_availability"
	"github.com/courtside/booking-service/pkg/types"
)

const (
	msgInvalidCoachID   = "некорректный ID тренера"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime      = "некорректный формат времени, ожидается HH:MM"
	msgCoachNotFound    = "тренер не найден"
	msgInvalidTimeRange = "некорректный временной диапазон"
)

type Handler struct {
	useCase GetCoachAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetCoachAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/coaches/{coachId}/availability?date=YYYY-MM-DD&startTime=10:00&endTime=12:00
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	coachID, err := uuid.Parse(vars["coachId"])
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/availability - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getCoachAvailability.Request{
		CoachID: coachID,
		Date:    date,
	}

	if raw := r.URL.Query().Get("startTime"); raw != "" {
		startTime, err := types.NewTimeStringFromString(raw)
		if err != nil {
			h.logger.Warn("GET /coaches/{id}/availability - Invalid start time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		req.StartTime = startTime
	}
	if raw := r.URL.Query().Get("endTime"); raw != "" {
		endTime, err := types.NewTimeStringFromString(raw)
		if err != nil {
			h.logger.Warn("GET /coaches/{id}/availability - Invalid end time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		req.EndTime = endTime
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCoachAvailability.ErrCoachNotFound):
			h.logger.Warn("GET /coaches/{id}/availability - Coach not found: coach_id=%s", coachID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, getCoachAvailability.ErrInvalidTimeRange),
			errors.Is(err, getCoachAvailability.ErrInvalidInput):
			h.logger.Warn("GET /coaches/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("GET /coaches/{id}/availability - Failed: coach_id=%s, error=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /coaches/{id}/availability - Success: coach_id=%s, date=%s",
		coachID, date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, result)
}
