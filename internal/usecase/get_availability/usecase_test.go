package get_availability

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

const (
	testServiceID    int64 = 3
	testSpecialistID int64 = 101
)

var testFrom = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

// Fakes

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.service == nil || f.service.ID != id {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return f.service, nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error

	calls    int
	from, to time.Time
}

func (f *fakeReservationRepo) GetBySpecialistInRange(_ context.Context, _ int64, from, to time.Time) ([]*domain.Reservation, error) {
	f.calls++
	f.from, f.to = from, to
	return f.reservations, f.err
}

type fakeStaffClient struct {
	err error
}

func (f *fakeStaffClient) GetSpecialistWithGracefulDegradation(_ context.Context, id int64) (*staffservice.Specialist, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &staffservice.Specialist{ID: id, IsActive: true}, nil
}

type fakeCache struct {
	entries map[string][]availability.DayColumn
	getErr  error
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]availability.DayColumn)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]availability.DayColumn, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	days, ok := f.entries[key]
	return days, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, days []availability.DayColumn) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[key] = days
	return nil
}

type fakeMetrics struct {
	cache  map[string]int
	builds int
}

func (f *fakeMetrics) ObserveCache(result string) {
	if f.cache == nil {
		f.cache = make(map[string]int)
	}
	f.cache[result]++
}

func (f *fakeMetrics) ObserveWindowBuild(string, time.Duration) {
	f.builds++
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

// Helpers

type fixture struct {
	services     *fakeServiceRepo
	reservations *fakeReservationRepo
	staff        *fakeStaffClient
	cache        *fakeCache
	metrics      *fakeMetrics
	uc           *UseCase
}

func newFixture(t *testing.T, sched domain.ServiceSchedule) *fixture {
	t.Helper()

	f := &fixture{
		services: &fakeServiceRepo{service: &domain.Service{
			ID:       testServiceID,
			Name:     "Мойка",
			Schedule: sched,
		}},
		reservations: &fakeReservationRepo{},
		staff:        &fakeStaffClient{},
		cache:        newFakeCache(),
		metrics:      &fakeMetrics{},
	}
	f.uc = NewUseCase(f.services, f.reservations, f.staff, f.cache, f.metrics, logger.NewNop(), domain.DefaultWindowDays)
	f.uc.timeProvider = fixedTime{now: testFrom.Add(-24 * time.Hour)}
	return f
}

func completeSchedule(start, end string, interval int) domain.ServiceSchedule {
	s := types.MustTimeString(start)
	e := types.MustTimeString(end)
	return domain.ServiceSchedule{
		ProvisioningStartTime: &s,
		ProvisioningEndTime:   &e,
		ProvisioningInterval:  ptr.Ptr(interval),
	}
}

func request() *Request {
	return &Request{
		ServiceID:    ptr.Ptr(testServiceID),
		SpecialistID: ptr.Ptr(testSpecialistID),
		From:         testFrom.Add(13 * time.Hour),
	}
}

func availableTimes(day availability.DayColumn) []string {
	var times []string
	for _, s := range day.Slots {
		if s.IsAvailable {
			times = append(times, s.Time)
		}
	}
	return times
}

// Tests

func TestUseCase_Execute(t *testing.T) {
	f := newFixture(t, completeSchedule("09:00", "11:00", 30))
	f.reservations.reservations = []*domain.Reservation{
		{AccountID: testSpecialistID, DateOfService: testFrom.Add(9*time.Hour + 30*time.Minute), ReservationLength: ptr.Ptr(30), Status: domain.StatusConfirmed},
	}

	resp, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, testFrom, resp.From)
	require.Len(t, resp.Days, domain.DefaultWindowDays)
	assert.Equal(t, []string{"09:00", "10:00", "10:30"}, availableTimes(resp.Days[0]))
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, availableTimes(resp.Days[1]))

	// период выборки покрывает все окно и хвост последнего слота
	assert.Equal(t, testFrom, f.reservations.from)
	assert.Equal(t, testFrom.AddDate(0, 0, domain.DefaultWindowDays).Add(30*time.Minute), f.reservations.to)

	assert.Equal(t, 1, f.metrics.cache[cacheMiss])
	assert.Equal(t, 1, f.metrics.builds)
	assert.Len(t, f.cache.entries, 1)
}

func TestUseCase_Execute_CacheHit(t *testing.T) {
	f := newFixture(t, completeSchedule("09:00", "11:00", 30))

	first, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)

	second, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, first.Days, second.Days)
	assert.Equal(t, 1, f.metrics.cache[cacheMiss])
	assert.Equal(t, 1, f.metrics.cache[cacheHit])
	assert.Equal(t, 1, f.metrics.builds)
	assert.Equal(t, 2, f.reservations.calls)
}

func TestUseCase_Execute_CacheFailuresAreIgnored(t *testing.T) {
	f := newFixture(t, completeSchedule("09:00", "10:00", 30))
	f.cache.getErr = errors.New("redis down")
	f.cache.setErr = errors.New("redis down")

	resp, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)

	require.Len(t, resp.Days, domain.DefaultWindowDays)
	assert.Len(t, resp.Days[0].Slots, 2)
	assert.Equal(t, 1, f.metrics.cache[cacheError])
}

func TestUseCase_Execute_Days(t *testing.T) {
	f := newFixture(t, completeSchedule("09:00", "10:00", 30))

	req := request()
	req.Days = 7
	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, testFrom.AddDate(0, 0, 6), resp.Days[6].Date)
}

func TestUseCase_Execute_NothingSelected(t *testing.T) {
	f := newFixture(t, completeSchedule("09:00", "10:00", 30))

	for name, req := range map[string]*Request{
		"no service":    {SpecialistID: ptr.Ptr(testSpecialistID), From: testFrom},
		"no specialist": {ServiceID: ptr.Ptr(testServiceID), From: testFrom},
	} {
		t.Run(name, func(t *testing.T) {
			resp, err := f.uc.Execute(context.Background(), req)
			require.NoError(t, err)
			assert.NotNil(t, resp.Days)
			assert.Empty(t, resp.Days)
		})
	}

	assert.Zero(t, f.reservations.calls)
}

func TestUseCase_Execute_IncompleteSchedule(t *testing.T) {
	start := types.MustTimeString("09:00")
	f := newFixture(t, domain.ServiceSchedule{ProvisioningStartTime: &start})

	resp, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)

	require.Len(t, resp.Days, domain.DefaultWindowDays)
	for _, day := range resp.Days {
		assert.Empty(t, day.Slots)
	}
	assert.Equal(t, testFrom.AddDate(0, 0, domain.DefaultWindowDays), f.reservations.to)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *fixture)
		req     func() *Request
		wantErr error
	}{
		{
			name:    "zero from",
			req:     func() *Request { r := request(); r.From = time.Time{}; return r },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "too many days",
			req:     func() *Request { r := request(); r.Days = domain.MaxWindowDays + 1; return r },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative days",
			req:     func() *Request { r := request(); r.Days = -1; return r },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "non-positive service id",
			req:     func() *Request { r := request(); r.ServiceID = ptr.Ptr(int64(0)); return r },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "service not found",
			req:     func() *Request { r := request(); r.ServiceID = ptr.Ptr(int64(99)); return r },
			wantErr: ErrServiceNotFound,
		},
		{
			name:    "service repository failure",
			setup:   func(f *fixture) { f.services.err = errors.New("db down") },
			wantErr: ErrInternal,
		},
		{
			name:    "specialist not found",
			setup:   func(f *fixture) { f.staff.err = staffservice.ErrSpecialistNotFound },
			wantErr: ErrSpecialistNotFound,
		},
		{
			name:    "reservation repository failure",
			setup:   func(f *fixture) { f.reservations.err = errors.New("db down") },
			wantErr: ErrInternal,
		},
		{
			name: "zero interval",
			setup: func(f *fixture) {
				f.services.service.Schedule = completeSchedule("09:00", "10:00", 0)
			},
			wantErr: ErrInvalidServiceConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, completeSchedule("09:00", "10:00", 30))
			if tt.setup != nil {
				tt.setup(f)
			}
			req := request()
			if tt.req != nil {
				req = tt.req()
			}

			resp, err := f.uc.Execute(context.Background(), req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_StaffServiceDegraded(t *testing.T) {
	f := newFixture(t, completeSchedule("09:00", "10:00", 30))
	f.staff.err = fmt.Errorf("%w: timeout", staffservice.ErrServiceDegraded)

	resp, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)
	assert.Len(t, resp.Days, domain.DefaultWindowDays)
}

func TestUseCase_Execute_WithoutStaffClient(t *testing.T) {
	f := newFixture(t, completeSchedule("09:00", "10:00", 30))
	f.uc = NewUseCase(f.services, f.reservations, nil, f.cache, f.metrics, logger.NewNop(), 0)
	f.uc.timeProvider = fixedTime{now: testFrom}

	resp, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)
	assert.Len(t, resp.Days, domain.DefaultWindowDays)
}

func TestUseCase_Execute_PastSlots(t *testing.T) {
	f := newFixture(t, completeSchedule("09:00", "11:00", 30))
	f.uc.timeProvider = fixedTime{now: testFrom.Add(10 * time.Hour)}

	resp, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00", "10:30"}, availableTimes(resp.Days[0]))
	assert.Len(t, availableTimes(resp.Days[1]), 4)
}
