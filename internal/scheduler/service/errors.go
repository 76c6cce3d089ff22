package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRange       = errors.New("invalid date range")
	ErrInvalidDate        = errors.New("invalid date")
)

// ValidationError reports a rejected input field. It is returned before any
// storage write happens, so callers can map it straight to a 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidf(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
