package get_availability

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.From.IsZero() {
		return fmt.Errorf("%w: from is required", ErrInvalidInput)
	}

	if req.Days < 0 || req.Days > domain.MaxWindowDays {
		return fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, domain.MaxWindowDays)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.SpecialistID != nil && *req.SpecialistID <= 0 {
		return fmt.Errorf("%w: specialistID must be positive", ErrInvalidInput)
	}

	return nil
}
