package staffservice

import "errors"

var (
	// ErrSpecialistNotFound возвращается, когда специалист не найден в справочнике
	ErrSpecialistNotFound = errors.New("specialist not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("staffservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что справочник специалистов недоступен и проверку специалиста следует пропустить
	ErrServiceDegraded = errors.New("staffservice unavailable: graceful degradation applied")
)
