package reference_data

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SC-BookingService/internal/api/handlers"
	"github.com/m04kA/SC-BookingService/internal/service/catalog/models"
)

const (
	msgInvalidProvinceID = "некорректный ID провинции"
)

// Handler отдаёт справочные данные: виды спорта, провинции,
// населённые пункты. Один handler на три эндпоинта, так как
// логика у них идентична.
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

// HandleSports GET /api/v1/sports
func (h *Handler) HandleSports(w http.ResponseWriter, r *http.Request) {
	sports, err := h.service.ListSports(r.Context())
	if err != nil {
		h.logger.Error("GET /sports - Failed to list sports: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sports - Sports retrieved: count=%d", len(sports))
	handlers.RespondJSON(w, http.StatusOK, map[string][]models.NamedItem{"sports": sports})
}

// HandleProvinces GET /api/v1/provinces
func (h *Handler) HandleProvinces(w http.ResponseWriter, r *http.Request) {
	provinces, err := h.service.ListProvinces(r.Context())
	if err != nil {
		h.logger.Error("GET /provinces - Failed to list provinces: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /provinces - Provinces retrieved: count=%d", len(provinces))
	handlers.RespondJSON(w, http.StatusOK, map[string][]models.NamedItem{"provinces": provinces})
}

// HandleLocalities GET /api/v1/localities/{provinceId}
func (h *Handler) HandleLocalities(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	provinceIDStr := vars["provinceId"]
	provinceID, err := strconv.ParseInt(provinceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /localities/{id} - Invalid province ID: %v", err)
		handlers.RespondUnprocessableEntity(w, msgInvalidProvinceID)
		return
	}

	localities, err := h.service.ListLocalities(r.Context(), provinceID)
	if err != nil {
		h.logger.Error("GET /localities/{id} - Failed to list localities: province_id=%d, error=%v", provinceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /localities/{id} - Localities retrieved: province_id=%d, count=%d", provinceID, len(localities))
	handlers.RespondJSON(w, http.StatusOK, map[string][]models.LocalityItem{"localities": localities})
}
