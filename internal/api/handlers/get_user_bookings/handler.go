package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SC-BookingService/internal/api/handlers"
	"github.com/m04kA/SC-BookingService/internal/api/middleware"
	bookingsService "github.com/m04kA/SC-BookingService/internal/service/bookings"
	"github.com/m04kA/SC-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidStatus = "некорректный статус, ожидается pending, confirmed или cancelled"
)

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

// Handle GET /api/v1/my-bookings
// Query params: status (optional, pending|confirmed|cancelled)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.logger.Error("GET /my-bookings - Missing identity in request context")
		handlers.RespondInternalError(w)
		return
	}

	req := &models.GetUserBookingsRequest{UserID: identity.UserID}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	result, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /my-bookings - Invalid status filter: user_id=%d", identity.UserID)
			handlers.RespondUnprocessableEntity(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /my-bookings - Failed to get bookings: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /my-bookings - Bookings retrieved: user_id=%d, count=%d", identity.UserID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
