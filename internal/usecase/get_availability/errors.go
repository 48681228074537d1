package get_availability

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrSpecialistNotFound возвращается, когда специалист не найден в справочнике
	ErrSpecialistNotFound = errors.New("specialist not found")

	// ErrInvalidServiceConfig возвращается, когда расписание услуги не позволяет построить слоты
	ErrInvalidServiceConfig = errors.New("invalid service schedule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
