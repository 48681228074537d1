package availability

import "errors"

var (
	// ErrInvalidInterval provisioning interval must be a positive number of minutes
	ErrInvalidInterval = errors.New("availability: provisioning interval must be positive")

	// ErrInvalidWindowLength window must cover at least one day
	ErrInvalidWindowLength = errors.New("availability: window length must be positive")
)
