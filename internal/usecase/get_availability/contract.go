package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetBySpecialistInRange получает неотмененные бронирования специалиста, пересекающиеся с [from, to)
	GetBySpecialistInRange(ctx context.Context, specialistID int64, from, to time.Time) ([]*domain.Reservation, error)
}

// StaffServiceClient интерфейс клиента справочника специалистов
type StaffServiceClient interface {
	GetSpecialistWithGracefulDegradation(ctx context.Context, specialistID int64) (*staffservice.Specialist, error)
}

// Cache интерфейс кэша рассчитанных окон доступности
type Cache interface {
	Get(ctx context.Context, key string) ([]availability.DayColumn, bool, error)
	Set(ctx context.Context, key string, days []availability.DayColumn) error
}

// Metrics интерфейс метрик use case
type Metrics interface {
	ObserveCache(result string)
	ObserveWindowBuild(days string, duration time.Duration)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
