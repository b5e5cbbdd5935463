package errors

import (
	"errors"
	"net/http"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Exception struct {
	Message    string
	StatusCode int
	Details    []FieldError
}

func (e *Exception) Error() string {
	return e.Message
}

func NewValidationError(details []FieldError) *Exception {
	return &Exception{
		Message:    "Validation failed",
		StatusCode: http.StatusBadRequest,
		Details:    details,
	}
}

func IsValidation(err error) bool {
	var appErr *Exception
	return errors.As(err, &appErr) && appErr.StatusCode == http.StatusBadRequest && len(appErr.Details) > 0
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
