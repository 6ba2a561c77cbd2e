package utils

import (
	"errors"
	"net/http"
)

// Типизированные ошибки приложения. Контроллеры переводят их в HTTP-статусы
// через HTTPStatus; публичные list-ручки вместо ошибки отдают пустой список.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrNotFound           = errors.New("not found")
	ErrBackend            = errors.New("backend failure")
	ErrServiceUnavailable = errors.New("service unavailable")

	// Ошибки загрузки изображений
	ErrInvalidType  = errors.New("invalid file type")
	ErrTooLarge     = errors.New("file too large")
	ErrUploadFailed = errors.New("upload failed")
)

// HTTPStatus возвращает HTTP-статус для ошибки приложения.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidType), errors.Is(err, ErrTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
