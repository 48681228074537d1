package schedules

import (
	"context"
	"errors"
	"fmt"

	serviceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedules/models"
)

// Service сервис для чтения расписания услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// GetSchedule возвращает часы оказания услуги и признак полноты расписания
func (s *Service) GetSchedule(ctx context.Context, serviceID int64) (*models.ScheduleResponse, error) {
	if serviceID <= 0 {
		return nil, fmt.Errorf("%w: service_id must be positive, got %d", ErrInvalidInput, serviceID)
	}

	service, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetSchedule: service id=%d not found", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetSchedule: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	resp := models.FromDomainService(service)
	if !resp.IsComplete {
		s.logger.Info("GetSchedule: service id=%d has incomplete schedule", serviceID)
	}

	return resp, nil
}
