package cache

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
)

func sampleDays() []availability.DayColumn {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	return []availability.DayColumn{
		{
			Date:      day,
			DateLabel: "Wed, 15 Oct",
			Slots: []availability.TimeSlot{
				{Time: "09:00", DateTime: day.Add(9 * time.Hour), IsAvailable: true},
				{Time: "09:30", DateTime: day.Add(9*time.Hour + 30*time.Minute), IsAvailable: false},
			},
		},
		{
			Date:      day.AddDate(0, 0, 1),
			DateLabel: "Thu, 16 Oct",
			Slots:     []availability.TimeSlot{},
		},
	}
}
