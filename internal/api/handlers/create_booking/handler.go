package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SC-BookingService/internal/api/handlers"
	"github.com/m04kA/SC-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SC-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры бронирования"
	msgCourtNotFound      = "корт не найден"
	msgPastBooking        = "нельзя создать бронирование в прошлом"
	msgSlotConflict       = "корт уже забронирован на выбранное время"
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
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.logger.Error("POST /bookings - Missing identity in request context")
		handlers.RespondInternalError(w)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(identity.UserID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: user_id=%d, date=%s", identity.UserID, req.Date)
		handlers.RespondUnprocessableEntity(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: user_id=%d, court_id=%d, date=%s, start_hour=%d",
				identity.UserID, req.CourtID, req.Date, req.StartHour)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: user_id=%d, court_id=%d", identity.UserID, req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrPastDate), errors.Is(err, createBooking.ErrPastBooking):
			h.logger.Warn("POST /bookings - Booking in the past: user_id=%d, court_id=%d, date=%s, start_hour=%d",
				identity.UserID, req.CourtID, req.Date, req.StartHour)
			handlers.RespondBadRequest(w, msgPastBooking)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, court_id=%d, error=%v",
				identity.UserID, req.CourtID, err)
			handlers.RespondUnprocessableEntity(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, court_id=%d, error=%v",
				identity.UserID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, court_id=%d",
		result.ID, identity.UserID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
