package cache

import "errors"

var (
	// ErrBackend возвращается при ошибке обращения к хранилищу кэша
	ErrBackend = errors.New("availability.cache: backend error")

	// ErrEncode возвращается при ошибке сериализации значения
	ErrEncode = errors.New("availability.cache: failed to encode value")

	// ErrDecode возвращается при ошибке десериализации значения
	ErrDecode = errors.New("availability.cache: failed to decode value")
)
