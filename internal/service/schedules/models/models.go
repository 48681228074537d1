package models

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ScheduleResponse расписание оказания услуги
type ScheduleResponse struct {
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	StartTime       *string `json:"startTime"`       // HH:MM, null если не задано
	EndTime         *string `json:"endTime"`         // HH:MM, null если не задано
	IntervalMinutes *int    `json:"intervalMinutes"` // null если не задано
	IsComplete      bool    `json:"isComplete"`      // все поля расписания заданы
	SlotsPerDay     int     `json:"slotsPerDay"`
}

// FromDomainService конвертирует domain модель услуги в DTO расписания
func FromDomainService(s *domain.Service) *ScheduleResponse {
	if s == nil {
		return nil
	}

	resp := &ScheduleResponse{
		ServiceID:       s.ID,
		ServiceName:     s.Name,
		IntervalMinutes: s.Schedule.ProvisioningInterval,
	}

	if s.Schedule.ProvisioningStartTime != nil {
		start := s.Schedule.ProvisioningStartTime.String()
		resp.StartTime = &start
	}
	if s.Schedule.ProvisioningEndTime != nil {
		end := s.Schedule.ProvisioningEndTime.String()
		resp.EndTime = &end
	}

	if sched, ok := availability.ScheduleOf(&s.Schedule); ok {
		resp.IsComplete = true
		resp.SlotsPerDay = sched.SlotsPerDay()
	}

	return resp
}
