package models

import "errors"

var (
	// ErrCityNotFound is returned when geocoding yields no match.
	ErrCityNotFound = errors.New("city not found")
	// ErrNetwork wraps transport failures and non-success responses from providers.
	ErrNetwork = errors.New("network error")
	// ErrNoForecast is returned when the provider answered without daily data.
	ErrNoForecast = errors.New("no forecast")

	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError carries a user-facing message for rejected input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
