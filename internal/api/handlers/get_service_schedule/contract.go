package get_service_schedule

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedules/models"
)

type ScheduleService interface {
	GetSchedule(ctx context.Context, serviceID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
