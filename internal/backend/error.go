package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized = errors.New("authentication required")
	ErrNotFound     = errors.New("resource not found")
)

// APIError is a non-success answer from the backend. Message carries the
// backend's own user-facing text when it sent one.
type APIError struct {
	Operation string
	Status    int
	Code      string
	Message   string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: backend status %d: %s", e.Operation, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: backend status %d", e.Operation, e.Status)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// Message returns the text to show the user for err: the backend message when
// the backend supplied one, fallback otherwise.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
