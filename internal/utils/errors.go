package utils

import "net/http"

// AppError is an error with an associated HTTP status code. Handlers map it
// onto the response; anything else is reported as a generic 500.
type AppError struct {
	StatusCode int
	Message    string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewBadRequestError(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message}
}

func NewPayloadTooLargeError(message string) *AppError {
	return &AppError{StatusCode: http.StatusRequestEntityTooLarge, Message: message}
}

func NewInternalError(message string) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Message: message}
}

func NewServiceUnavailableError(message string) *AppError {
	return &AppError{StatusCode: http.StatusServiceUnavailable, Message: message}
}
