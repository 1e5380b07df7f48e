package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

// Sentinel errors shared across packages.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrEmptyGallery = errors.New("gallery has no images")
)

// AppError is an error with an HTTP status and the JSON fields returned to the caller.
type AppError struct {
	Status  int
	Message string
	Details map[string]any
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// With returns a copy of e carrying an extra detail field.
func (e *AppError) With(key string, value any) *AppError {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	cp := *e
	cp.Details = details
	return &cp
}

// InvalidInput creates a 400 error.
func InvalidInput(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message, Err: ErrInvalidInput}
}

// Forbidden creates a 403 error.
func Forbidden(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

// NotFound creates a 404 error.
func NotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrEmptyGallery):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// stackError carries the goroutine stack captured where an unexpected failure was first seen.
type stackError struct {
	err   error
	stack string
}

func (e *stackError) Error() string { return e.err.Error() }
func (e *stackError) Unwrap() error { return e.err }

// WithStack annotates err with the caller's stack. Errors that already carry one are returned as is.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	var se *stackError
	if errors.As(err, &se) {
		return err
	}
	return &stackError{err: err, stack: string(debug.Stack())}
}

// Stack returns the stack recorded by WithStack, or "" when none was recorded.
func Stack(err error) string {
	var se *stackError
	if errors.As(err, &se) {
		return se.stack
	}
	return ""
}
