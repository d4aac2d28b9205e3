package extract

import (
	"context"
	"errors"
	"net/http"

	"transportner/extraction"
	"transportner/internal/store"
)

var (
	// ErrInvalidRequest тело запроса не разобрано
	ErrInvalidRequest = errors.New("invalid request body")
	// ErrEmptyText пустой текст
	ErrEmptyText = errors.New("text is required")
	// ErrUnknownFormat неизвестный формат текста
	ErrUnknownFormat = errors.New("unknown text format")
	// ErrBatchTooLarge в пакете больше текстов, чем разрешено
	ErrBatchTooLarge = errors.New("batch is too large")
	// ErrStorageDisabled хранилище результатов не настроено
	ErrStorageDisabled = errors.New("storage is disabled")
)

// statusCode HTTP код для ошибки обработки
func statusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrEmptyText),
		errors.Is(err, ErrUnknownFormat),
		errors.Is(err, extraction.ErrNoTexts):
		return http.StatusBadRequest
	case errors.Is(err, extraction.ErrTextTooLong), errors.Is(err, ErrBatchTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, store.ErrDocumentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrStorageDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}
