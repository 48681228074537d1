package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// BuildWindow builds windowLength consecutive day columns starting at windowStart's
// calendar day.
//
// A nil schedule or a nil specialist means nothing is selected yet and yields an
// empty window. A non-nil but incomplete schedule yields columns without slots.
func BuildWindow(
	schedule *domain.ServiceSchedule,
	specialistID *int64,
	reservations []*domain.Reservation,
	windowStart time.Time,
	windowLength int,
	now time.Time,
) ([]DayColumn, error) {
	if windowLength <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindowLength, windowLength)
	}
	if schedule == nil || specialistID == nil {
		return []DayColumn{}, nil
	}

	days := windowDays(windowStart, windowLength)
	columns := make([]DayColumn, len(days))

	for i, date := range days {
		slots, err := GenerateDaySlots(date, schedule, *specialistID, reservations, now)
		if err != nil {
			return nil, err
		}
		columns[i] = DayColumn{
			Date:      date,
			DateLabel: date.Format(domain.DateLabelFormat),
			Slots:     slots,
		}
	}

	return columns, nil
}
