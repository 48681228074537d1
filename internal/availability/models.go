package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// TimeSlot is one candidate appointment start
type TimeSlot struct {
	Time        string    `json:"time"`     // HH:mm
	DateTime    time.Time `json:"dateTime"` // slot start
	IsAvailable bool      `json:"isAvailable"`
}

// DayColumn holds the chronological slots of one calendar day
type DayColumn struct {
	Date      time.Time  `json:"date"`
	DateLabel string     `json:"dateLabel"`
	Slots     []TimeSlot `json:"slots"`
}

// Schedule is a service schedule with every provisioning field present.
// Interval is not validated here; see ErrInvalidInterval.
type Schedule struct {
	Start    types.TimeString
	End      types.TimeString
	Interval int // minutes
}

// ScheduleOf returns the complete form of s. ok is false for a nil schedule or
// one missing any provisioning field.
func ScheduleOf(s *domain.ServiceSchedule) (sched Schedule, ok bool) {
	if !s.IsComplete() {
		return Schedule{}, false
	}
	return Schedule{
		Start:    *s.ProvisioningStartTime,
		End:      *s.ProvisioningEndTime,
		Interval: *s.ProvisioningInterval,
	}, true
}

func (s Schedule) step() time.Duration {
	return time.Duration(s.Interval) * time.Minute
}

// starts returns the slot start instants of the schedule on date's calendar day.
// The caller guarantees Interval > 0.
func (s Schedule) starts(date time.Time) []time.Time {
	end := s.End.On(date)
	step := s.step()

	starts := make([]time.Time, 0)
	for cursor := s.Start.On(date); cursor.Before(end); cursor = cursor.Add(step) {
		starts = append(starts, cursor)
	}
	return starts
}

// startOfDay returns midnight of t's calendar day in t's location
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// windowDays returns the calendar days windowStart, windowStart+1, ... windowStart+length-1
func windowDays(windowStart time.Time, length int) []time.Time {
	first := startOfDay(windowStart)
	days := make([]time.Time, length)
	for i := range days {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}

// SlotsPerDay returns how many slots the schedule yields on a day without clock
// shifts. A non-positive interval yields zero.
func (s Schedule) SlotsPerDay() int {
	if s.Interval <= 0 {
		return 0
	}
	return len(s.starts(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
}
