package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ServiceSchedule daily provisioning hours of a service.
// Every field is optional; a schedule missing any of them has no bookable slots.
type ServiceSchedule struct {
	ProvisioningStartTime *types.TimeString
	ProvisioningEndTime   *types.TimeString
	ProvisioningInterval  *int // minutes
}

// IsComplete returns true if all provisioning fields are set
func (s *ServiceSchedule) IsComplete() bool {
	return s != nil &&
		s.ProvisioningStartTime != nil &&
		s.ProvisioningEndTime != nil &&
		s.ProvisioningInterval != nil
}

// Service represents a bookable service
type Service struct {
	ID        int64
	Name      string
	Schedule  ServiceSchedule
	CreatedAt time.Time
	UpdatedAt time.Time
}
