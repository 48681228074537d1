package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_availability"
)

const (
	msgInvalidParams        = "некорректные параметры запроса"
	msgServiceNotFound      = "услуга не найдена"
	msgSpecialistNotFound   = "специалист не найден"
	msgInvalidServiceConfig = "некорректное расписание услуги"
)

type Handler struct {
	useCase  GetAvailabilityUseCase
	logger   Logger
	location *time.Location
	now      func() time.Time
}

// NewHandler создает обработчик. Даты из запроса трактуются в loc.
func NewHandler(useCase GetAvailabilityUseCase, logger Logger, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}

	return &Handler{
		useCase:  useCase,
		logger:   logger,
		location: loc,
		now:      time.Now,
	}
}

// Handle GET /api/v1/availability
// Query params: serviceId, specialistId (опционально), from (YYYY-MM-DD, по умолчанию сегодня), days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(
		query.Get("serviceId"),
		query.Get("specialistId"),
		query.Get("from"),
		query.Get("days"),
		h.now(),
		h.location,
	)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /availability - Service not found: service_id=%v", query.Get("serviceId"))
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailability.ErrSpecialistNotFound):
			h.logger.Warn("GET /availability - Specialist not found: specialist_id=%v", query.Get("specialistId"))
			handlers.RespondNotFound(w, msgSpecialistNotFound)

		case errors.Is(err, getAvailability.ErrInvalidServiceConfig):
			h.logger.Warn("GET /availability - Invalid service schedule: %v", err)
			handlers.RespondUnprocessable(w, msgInvalidServiceConfig)

		default:
			h.logger.Error("GET /availability - Failed to get availability: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability retrieved successfully: service_id=%v, specialist_id=%v, days=%d",
		query.Get("serviceId"), query.Get("specialistId"), len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
