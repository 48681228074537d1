package domain

// Availability window defaults
const (
	DefaultWindowDays = 4
	MaxWindowDays     = 31
)

// Time format constants
const (
	TimeFormat      = "15:04"       // HH:MM
	DateFormat      = "2006-01-02"  // YYYY-MM-DD
	DateLabelFormat = "Mon, 02 Jan" // короткая подпись дня в колонке
)

// BlockingStatuses статусы бронирований, занимающих время специалиста.
// Любой статус, кроме Cancelled, считается блокирующим.
var BlockingStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
