package get_owner_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SC-BookingService/internal/api/handlers"
	"github.com/m04kA/SC-BookingService/internal/api/middleware"
	bookingsService "github.com/m04kA/SC-BookingService/internal/service/bookings"
)

const (
	msgAccessDenied = "доступ только для владельцев комплексов"
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

// Handle GET /api/v1/owner/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.logger.Error("GET /owner/bookings - Missing identity in request context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.GetOwnerBookings(r.Context(), identity)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("GET /owner/bookings - Access denied: user_id=%d, role=%s", identity.UserID, identity.Role)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /owner/bookings - Failed to get bookings: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /owner/bookings - Bookings retrieved: owner_id=%d, count=%d", identity.UserID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
