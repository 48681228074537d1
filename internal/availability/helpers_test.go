package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

const (
	specialistA int64 = 101
	specialistB int64 = 202
)

var testDay = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return testDay.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func schedule(start, end string, interval int) *domain.ServiceSchedule {
	s := types.MustTimeString(start)
	e := types.MustTimeString(end)
	return &domain.ServiceSchedule{
		ProvisioningStartTime: &s,
		ProvisioningEndTime:   &e,
		ProvisioningInterval:  ptr.Ptr(interval),
	}
}

func reservation(accountID int64, start time.Time, length int, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		AccountID:         accountID,
		DateOfService:     start,
		ReservationLength: ptr.Ptr(length),
		Status:            status,
	}
}

// slotByTime индексирует слоты по подписи HH:MM
func slotByTime(slots []TimeSlot) map[string]TimeSlot {
	m := make(map[string]TimeSlot, len(slots))
	for _, s := range slots {
		m[s.Time] = s
	}
	return m
}
