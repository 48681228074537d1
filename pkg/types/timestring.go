package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

var (
	// ErrInvalidTimeString возвращается при разборе строки не в формате HH:MM
	ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда время выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time is out of day range")
)

// TimeString время суток с точностью до минуты (HH:MM).
// Допустимый диапазон 00:00..24:00, где 24:00 обозначает конец суток.
type TimeString struct {
	minutes int
}

// NewTimeString берет время суток из t (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*minutesPerHour + t.Minute()}
}

// NewTimeStringFromString разбирает строку формата HH:MM или HH:MM:SS
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 2 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || minutes < 0 || minutes >= minutesPerHour {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if len(parts) == 3 {
		seconds, err := strconv.Atoi(parts[2])
		if err != nil || seconds != 0 {
			return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}

	return NewTimeStringFromMinutes(hours*minutesPerHour + minutes)
}

// NewTimeStringFromMinutes создает время из количества минут от начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > minutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString{minutes: minutes}, nil
}

// MustTimeString как NewTimeStringFromString, но паникует при ошибке. Для констант и тестов.
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// Minutes количество минут от начала суток
func (t TimeString) Minutes() int {
	return t.minutes
}

// Hour часы
func (t TimeString) Hour() int {
	return t.minutes / minutesPerHour
}

// Minute минуты внутри часа
func (t TimeString) Minute() int {
	return t.minutes % minutesPerHour
}

// AddMinutes возвращает время, сдвинутое на n минут.
// Результат за пределами суток считается ошибкой.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	return NewTimeStringFromMinutes(t.minutes + n)
}

// IsBefore строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// On возвращает момент времени на календарную дату date в ее часовом поясе
func (t TimeString) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, date.Location())
}

func (t TimeString) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan реализует sql.Scanner для колонок TIME и TEXT
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return t.parseInto(v)
	case []byte:
		return t.parseInto(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) parseInto(s string) error {
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeString, err)
	}
	return t.parseInto(s)
}
