package cache

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
)

// Noop кэш, который никогда не находит записей
type Noop struct{}

func (Noop) Get(context.Context, string) ([]availability.DayColumn, bool, error) {
	return nil, false, nil
}

func (Noop) Set(context.Context, string, []availability.DayColumn) error {
	return nil
}
