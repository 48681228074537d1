package domain

import (
	"time"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "Pending"
	StatusConfirmed  ReservationStatus = "Confirmed"
	StatusInProgress ReservationStatus = "InProgress"
	StatusCompleted  ReservationStatus = "Completed"
	StatusCancelled  ReservationStatus = "Cancelled"
)

// IsValid returns true if the status is one of the known lifecycle states
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Reservation represents a booking of a service assigned to a specialist
type Reservation struct {
	ID                int64
	AccountID         int64 // ID специалиста, за которым закреплена бронь
	ServiceID         int64
	DateOfService     time.Time
	ReservationLength *int // минуты, NULL трактуется как 0
	Status            ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LengthMinutes returns the reservation length, treating an absent value as zero
func (r *Reservation) LengthMinutes() int {
	if r.ReservationLength == nil {
		return 0
	}
	return *r.ReservationLength
}

// End returns the exclusive end of the reservation
func (r *Reservation) End() time.Time {
	return r.DateOfService.Add(time.Duration(r.LengthMinutes()) * time.Minute)
}

// BlocksAvailability returns true if the reservation occupies its specialist's time.
// Cancelled reservations never block.
func (r *Reservation) BlocksAvailability() bool {
	return r.Status != StatusCancelled
}

// IsAssignedTo returns true if the reservation belongs to the specialist
func (r *Reservation) IsAssignedTo(specialistID int64) bool {
	return r.AccountID == specialistID
}
