package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// GenerateDaySlots builds the slots of one calendar day for a specialist.
//
// Slots start at the schedule's start time and advance by its interval while the
// start is strictly before the end time. A slot is available when it has not
// started before now and does not overlap a non-cancelled reservation of the
// specialist. An incomplete schedule yields no slots.
func GenerateDaySlots(
	date time.Time,
	schedule *domain.ServiceSchedule,
	specialistID int64,
	reservations []*domain.Reservation,
	now time.Time,
) ([]TimeSlot, error) {
	sched, ok := ScheduleOf(schedule)
	if !ok {
		return []TimeSlot{}, nil
	}
	if sched.Interval <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInterval, sched.Interval)
	}

	step := sched.step()
	starts := sched.starts(date)
	slots := make([]TimeSlot, len(starts))

	for i, slotStart := range starts {
		slotEnd := slotStart.Add(step)
		collides := hasCollision(slotStart, slotEnd, specialistID, reservations)
		past := slotStart.Before(now)

		slots[i] = TimeSlot{
			Time:        slotStart.Format(domain.TimeFormat),
			DateTime:    slotStart,
			IsAvailable: !collides && !past,
		}
	}

	return slots, nil
}

// hasCollision reports whether [slotStart, slotEnd) overlaps a blocking reservation
// of the specialist. Intervals that only touch at an endpoint do not overlap:
//
//	slot 10:30-11:00, reservation 10:00-10:30 -> no overlap
//	slot 10:00-10:30, reservation 10:00-10:30 -> overlap
//	slot 10:00-10:30, reservation 10:15-10:15 -> overlap (zero length, strictly inside)
func hasCollision(slotStart, slotEnd time.Time, specialistID int64, reservations []*domain.Reservation) bool {
	for _, r := range reservations {
		if !isRelevant(r, specialistID) {
			continue
		}
		if slotStart.Before(r.End()) && slotEnd.After(r.DateOfService) {
			return true
		}
	}
	return false
}

func isRelevant(r *domain.Reservation, specialistID int64) bool {
	return r != nil && r.IsAssignedTo(specialistID) && r.BlocksAvailability()
}
