package availability

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

func TestBuildWindow_Shape(t *testing.T) {
	windowStart := time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)
	reservationSets := map[string][]*domain.Reservation{
		"no reservations": nil,
		"busy": {
			reservation(specialistA, at(9, 0), 480, domain.StatusConfirmed),
			reservation(specialistA, at(9, 0).AddDate(0, 0, 2), 60, domain.StatusPending),
		},
	}

	for name, reservations := range reservationSets {
		t.Run(name, func(t *testing.T) {
			columns, err := BuildWindow(schedule("09:00", "17:00", 30), ptr.Ptr(specialistA), reservations, windowStart, 4, testDay)
			require.NoError(t, err)
			require.Len(t, columns, 4)

			for i, column := range columns {
				wantDate := testDay.AddDate(0, 0, i)
				assert.Equal(t, wantDate, column.Date)
				assert.Equal(t, wantDate.Format(domain.DateLabelFormat), column.DateLabel)
				assert.Len(t, column.Slots, 16)
				assert.Equal(t, wantDate.Add(9*time.Hour), column.Slots[0].DateTime)
			}
		})
	}
}

func TestBuildWindow_DateLabels(t *testing.T) {
	columns, err := BuildWindow(schedule("09:00", "10:00", 30), ptr.Ptr(specialistA), nil, testDay, 2, testDay)
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "Wed, 15 Oct", columns[0].DateLabel)
	assert.Equal(t, "Thu, 16 Oct", columns[1].DateLabel)
}

func TestBuildWindow_NothingSelected(t *testing.T) {
	noService, err := BuildWindow(nil, ptr.Ptr(specialistA), nil, testDay, 4, testDay)
	require.NoError(t, err)
	assert.NotNil(t, noService)
	assert.Empty(t, noService)

	noSpecialist, err := BuildWindow(schedule("09:00", "17:00", 30), nil, nil, testDay, 4, testDay)
	require.NoError(t, err)
	assert.Empty(t, noSpecialist)
}

func TestBuildWindow_IncompleteSchedule(t *testing.T) {
	incomplete := schedule("09:00", "17:00", 30)
	incomplete.ProvisioningEndTime = nil

	columns, err := BuildWindow(incomplete, ptr.Ptr(specialistA), nil, testDay, 4, testDay)
	require.NoError(t, err)
	require.Len(t, columns, 4)
	for _, column := range columns {
		assert.NotNil(t, column.Slots)
		assert.Empty(t, column.Slots)
	}
}

func TestBuildWindow_Errors(t *testing.T) {
	_, err := BuildWindow(schedule("09:00", "17:00", 0), ptr.Ptr(specialistA), nil, testDay, 4, testDay)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = BuildWindow(schedule("09:00", "17:00", 30), ptr.Ptr(specialistA), nil, testDay, 0, testDay)
	assert.ErrorIs(t, err, ErrInvalidWindowLength)
}

func TestBuildWindow_Deterministic(t *testing.T) {
	reservations := []*domain.Reservation{
		reservation(specialistA, at(10, 0), 30, domain.StatusConfirmed),
		reservation(specialistB, at(11, 0), 30, domain.StatusConfirmed),
		reservation(specialistA, at(12, 0).AddDate(0, 0, 1), 45, domain.StatusCancelled),
	}
	now := at(10, 15)

	first, err := BuildWindow(schedule("09:00", "17:00", 30), ptr.Ptr(specialistA), reservations, testDay, 4, now)
	require.NoError(t, err)
	second, err := BuildWindow(schedule("09:00", "17:00", 30), ptr.Ptr(specialistA), reservations, testDay, 4, now)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("window mismatch (-first +second):\n%s", diff)
	}
}

func TestBuildWindow_PastAcrossDays(t *testing.T) {
	now := at(12, 0).AddDate(0, 0, 1)

	columns, err := BuildWindow(schedule("09:00", "17:00", 60), ptr.Ptr(specialistA), nil, testDay, 3, now)
	require.NoError(t, err)
	require.Len(t, columns, 3)

	for _, slot := range columns[0].Slots {
		assert.False(t, slot.IsAvailable, slot.Time)
	}
	second := slotByTime(columns[1].Slots)
	assert.False(t, second["11:00"].IsAvailable)
	assert.True(t, second["12:00"].IsAvailable)
	for _, slot := range columns[2].Slots {
		assert.True(t, slot.IsAvailable, slot.Time)
	}
}

func TestSchedule_SlotsPerDay(t *testing.T) {
	sched, ok := ScheduleOf(schedule("09:00", "12:00", 30))
	require.True(t, ok)
	assert.Equal(t, 6, sched.SlotsPerDay())

	sched, ok = ScheduleOf(schedule("09:00", "10:00", 45))
	require.True(t, ok)
	assert.Equal(t, 2, sched.SlotsPerDay())

	sched.Interval = 0
	assert.Equal(t, 0, sched.SlotsPerDay())
}
