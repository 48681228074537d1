package get_availability

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	From string      `json:"from"`
	Days []DayColumn `json:"days"`
}

// DayColumn колонка одного дня
type DayColumn struct {
	Date      string     `json:"date"`
	DateLabel string     `json:"dateLabel"`
	Slots     []TimeSlot `json:"slots"`
}

// TimeSlot модель временного слота
type TimeSlot struct {
	Time        string    `json:"time"`
	DateTime    time.Time `json:"dateTime"`
	IsAvailable bool      `json:"isAvailable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]DayColumn, len(resp.Days))
	for i, day := range resp.Days {
		slots := make([]TimeSlot, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = TimeSlot{
				Time:        slot.Time,
				DateTime:    slot.DateTime,
				IsAvailable: slot.IsAvailable,
			}
		}

		days[i] = DayColumn{
			Date:      day.Date.Format(domain.DateFormat),
			DateLabel: day.DateLabel,
			Slots:     slots,
		}
	}

	return &AvailabilityResponse{
		From: resp.From.Format(domain.DateFormat),
		Days: days,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// Пустой fromStr означает текущий день.
func ToUseCaseRequest(serviceIDStr, specialistIDStr, fromStr, daysStr string, now time.Time, loc *time.Location) (*getAvailability.Request, error) {
	req := &getAvailability.Request{}

	var err error
	if req.ServiceID, err = parseOptionalID(serviceIDStr); err != nil {
		return nil, fmt.Errorf("serviceId: %w", err)
	}
	if req.SpecialistID, err = parseOptionalID(specialistIDStr); err != nil {
		return nil, fmt.Errorf("specialistId: %w", err)
	}

	if fromStr == "" {
		req.From = now.In(loc)
	} else {
		req.From, err = time.ParseInLocation(domain.DateFormat, fromStr, loc)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
	}

	if daysStr != "" {
		req.Days, err = strconv.Atoi(daysStr)
		if err != nil {
			return nil, fmt.Errorf("days: %w", err)
		}
		if req.Days <= 0 || req.Days > domain.MaxWindowDays {
			return nil, fmt.Errorf("days: must be between 1 and %d", domain.MaxWindowDays)
		}
	}

	return req, nil
}

func parseOptionalID(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, fmt.Errorf("must be positive, got %d", id)
	}
	return &id, nil
}
