package get_availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
)

// Request модель запроса на получение окна доступности
type Request struct {
	ServiceID    *int64    // ID услуги, nil если услуга еще не выбрана
	SpecialistID *int64    // ID специалиста, nil если специалист еще не выбран
	From         time.Time // Первый день окна, время суток игнорируется
	Days         int       // Количество дней, 0 = значение из конфигурации
}

// Response модель ответа с окном доступности
type Response struct {
	From time.Time               // Полночь первого дня окна
	Days []availability.DayColumn // Колонки по дням, пусто если услуга или специалист не выбраны
}
