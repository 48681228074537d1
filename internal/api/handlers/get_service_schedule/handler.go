package get_service_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedules"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil || serviceID <= 0 {
		h.logger.Warn("GET /services/{id}/schedule - Invalid service ID: %v", mux.Vars(r)["serviceId"])
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.service.GetSchedule(r.Context(), serviceID)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidServiceID)
		case errors.Is(err, schedules.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id}/schedule - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)
		default:
			h.logger.Error("GET /services/{id}/schedule - Failed to get schedule: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/schedule - Schedule retrieved successfully: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
