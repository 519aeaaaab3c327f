package errors

import (
	"fmt"
)

// AppError - ошибка уровня API с кодом и HTTP статусом.
// Ядро пайплайна никогда не возвращает AppError наружу: все отказы
// провайдеров поглощаются fallback-уровнями. AppError используется
// только для валидации входа на HTTP границе.
type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	copied := *e
	copied.Details = details
	return &copied
}
