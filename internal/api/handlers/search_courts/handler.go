package search_courts

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SC-BookingService/internal/api/handlers"
	"github.com/m04kA/SC-BookingService/internal/domain"
)

const (
	msgInvalidProvinceID = "некорректный ID провинции"
	msgInvalidLocalityID = "некорректный ID населённого пункта"
	msgInvalidSportID    = "некорректный ID вида спорта"
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

// Handle GET /api/v1/search-courts
// Query params: provinceId, localityId, sportId (все опциональные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var filter domain.CourtSearchFilter

	query := r.URL.Query()

	if raw := query.Get("provinceId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /search-courts - Invalid province ID: %v", err)
			handlers.RespondUnprocessableEntity(w, msgInvalidProvinceID)
			return
		}
		filter.ProvinceID = &id
	}

	if raw := query.Get("localityId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /search-courts - Invalid locality ID: %v", err)
			handlers.RespondUnprocessableEntity(w, msgInvalidLocalityID)
			return
		}
		filter.LocalityID = &id
	}

	if raw := query.Get("sportId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /search-courts - Invalid sport ID: %v", err)
			handlers.RespondUnprocessableEntity(w, msgInvalidSportID)
			return
		}
		filter.SportID = &id
	}

	result, err := h.service.SearchCourts(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /search-courts - Failed to search courts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /search-courts - Courts retrieved: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
