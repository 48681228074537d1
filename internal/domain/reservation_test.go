package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func TestReservation_End(t *testing.T) {
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	r := &Reservation{DateOfService: start, ReservationLength: ptr.Ptr(45)}
	assert.Equal(t, start.Add(45*time.Minute), r.End())

	r.ReservationLength = nil
	assert.Equal(t, 0, r.LengthMinutes())
	assert.Equal(t, start, r.End())
}

func TestReservation_BlocksAvailability(t *testing.T) {
	for _, status := range BlockingStatuses {
		r := &Reservation{Status: status}
		assert.True(t, r.BlocksAvailability(), status)
		assert.True(t, status.IsValid())
	}

	cancelled := &Reservation{Status: StatusCancelled}
	assert.False(t, cancelled.BlocksAvailability())
	assert.False(t, ReservationStatus("Archived").IsValid())
}

func TestServiceSchedule_IsComplete(t *testing.T) {
	start := types.MustTimeString("09:00")
	end := types.MustTimeString("17:00")

	var nilSchedule *ServiceSchedule
	assert.False(t, nilSchedule.IsComplete())
	assert.False(t, (&ServiceSchedule{ProvisioningStartTime: &start, ProvisioningInterval: ptr.Ptr(30)}).IsComplete())
	assert.True(t, (&ServiceSchedule{
		ProvisioningStartTime: &start,
		ProvisioningEndTime:   &end,
		ProvisioningInterval:  ptr.Ptr(30),
	}).IsComplete())
}
