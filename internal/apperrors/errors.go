package apperrors

import (
	"errors"
	"net/http"
)

type Code string

const (
	CodeNotFound         Code = "NOT_FOUND"
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeAlreadyExists    Code = "ALREADY_EXISTS"
	CodeCreationFailed   Code = "CREATION_FAILED"
	CodeUnauthorized     Code = "UNAUTHORIZED"
	CodeForbidden        Code = "FORBIDDEN"
	CodeInternal         Code = "INTERNAL"
)

// AppError — типизированная ошибка приложения с HTTP-статусом
type AppError struct {
	Code    Code
	Status  int
	Message string
	Fields  []string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Status: http.StatusNotFound, Message: message}
}

func AlreadyExists(message string) *AppError {
	return &AppError{Code: CodeAlreadyExists, Status: http.StatusConflict, Message: message}
}

func CreationFailed(message string, err error) *AppError {
	return &AppError{Code: CodeCreationFailed, Status: http.StatusInternalServerError, Message: message, Err: err}
}

func Validation(message string, fields []string) *AppError {
	return &AppError{Code: CodeValidationFailed, Status: http.StatusBadRequest, Message: message, Fields: fields}
}

func Unauthorized(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Code: CodeForbidden, Status: http.StatusForbidden, Message: message}
}

func Internal(message string, err error) *AppError {
	return &AppError{Code: CodeInternal, Status: http.StatusInternalServerError, Message: message, Err: err}
}

// FromError приводит любую ошибку к *AppError; незнакомые ошибки считаются внутренними
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("внутренняя ошибка сервера", err)
}

// IsCode проверяет код типизированной ошибки
func IsCode(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
