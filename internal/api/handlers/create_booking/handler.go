package create_booking

import (
	"errors"
	"net/http"

	"github.com/courtside/booking-service/internal/api/handlers"
	"github.com/courtside/booking-service/internal/api/middleware"
	createBooking "github.com/courtside/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
	msgCourtNotFound        = "корт не найден"
	msgCourtInactive        = "корт недоступен для бронирования"
	msgPriceUnavailable     = "для корта не задана базовая ставка"
	msgEquipmentNotFound    = "инвентарь не найден"
	msgEquipmentUnavailable = "запрошенное количество инвентаря недоступно"
	msgCoachNotFound        = "тренер не найден"
	msgCoachNotAvailable    = "тренер недоступен в выбранное время"
	msgInvalidTimeRange     = "некорректный временной диапазон"
	msgOutsideWorkingHours  = "бронирование вне рабочих часов клуба"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, court_id=%s", userID, req.CourtID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%s", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrCourtInactive):
			h.logger.Warn("POST /bookings - Court inactive: court_id=%s", req.CourtID)
			handlers.RespondBadRequest(w, msgCourtInactive)

		case errors.Is(err, createBooking.ErrPriceUnavailable):
			h.logger.Warn("POST /bookings - Price unavailable: court_id=%s", req.CourtID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPriceUnavailable)

		case errors.Is(err, createBooking.ErrEquipmentNotFound):
			h.logger.Warn("POST /bookings - Equipment not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, createBooking.ErrEquipmentUnavailable):
			h.logger.Warn("POST /bookings - Equipment unavailable: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgEquipmentUnavailable)

		case errors.Is(err, createBooking.ErrCoachNotFound):
			h.logger.Warn("POST /bookings - Coach not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, createBooking.ErrCoachNotAvailable):
			h.logger.Warn("POST /bookings - Coach not available: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgCoachNotAvailable)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createBooking.ErrInvalidTimeRange), errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, court_id=%s, error=%v",
				userID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%d",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
