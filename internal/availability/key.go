package availability

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const cacheKeyVersion = "v1"

// CacheKey derives a key for BuildWindow's inputs. Equal keys imply structurally
// equal BuildWindow output, so a cached window looked up by this key is never stale.
//
// Inputs that cannot change the output are left out: reservations of other
// specialists, cancelled ones, ones outside the window and reservation order.
// now is reduced to the first slot start that is not in the past, because the
// past check only depends on which slot starts precede now.
func CacheKey(
	schedule *domain.ServiceSchedule,
	specialistID *int64,
	reservations []*domain.Reservation,
	windowStart time.Time,
	windowLength int,
	now time.Time,
) string {
	var b strings.Builder

	first := startOfDay(windowStart)
	fmt.Fprintf(&b, "%s|window:%d@%s|len:%d", cacheKeyVersion, first.Unix(), first.Location(), windowLength)

	sched, complete := ScheduleOf(schedule)
	switch {
	case schedule == nil:
		b.WriteString("|schedule:none")
	case !complete:
		b.WriteString("|schedule:incomplete")
	default:
		fmt.Fprintf(&b, "|schedule:%d-%d-%d", sched.Start.Minutes(), sched.End.Minutes(), sched.Interval)
	}

	if specialistID == nil {
		b.WriteString("|specialist:none")
	} else {
		fmt.Fprintf(&b, "|specialist:%d", *specialistID)
	}

	// Only a complete, valid schedule with a selected specialist looks at
	// reservations and now.
	if complete && sched.Interval > 0 && specialistID != nil && windowLength > 0 {
		days := windowDays(windowStart, windowLength)
		writeReservations(&b, reservations, *specialistID, days, sched)
		writeNowBoundary(&b, days, sched, now)
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func writeReservations(b *strings.Builder, reservations []*domain.Reservation, specialistID int64, days []time.Time, sched Schedule) {
	// Последний слот окна может заканчиваться после полуночи последнего дня
	from := days[0]
	to := days[len(days)-1].AddDate(0, 0, 1).Add(sched.step())

	type span struct {
		start  int64
		length int
	}
	spans := make([]span, 0, len(reservations))
	for _, r := range reservations {
		if !isRelevant(r, specialistID) {
			continue
		}
		if !r.End().After(from) || !r.DateOfService.Before(to) {
			continue
		}
		spans = append(spans, span{start: r.DateOfService.UnixNano(), length: r.LengthMinutes()})
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].length < spans[j].length
	})

	b.WriteString("|reservations:")
	for _, s := range spans {
		fmt.Fprintf(b, "%d+%d;", s.start, s.length)
	}
}

func writeNowBoundary(b *strings.Builder, days []time.Time, sched Schedule, now time.Time) {
	for _, day := range days {
		for _, start := range sched.starts(day) {
			if !start.Before(now) {
				fmt.Fprintf(b, "|upcoming:%d", start.UnixNano())
				return
			}
		}
	}
	b.WriteString("|upcoming:none")
}
