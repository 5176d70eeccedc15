package utils

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindInvalidInput
	KindNotFound
	KindTransportFailure
	KindPersistenceFailure
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindTransportFailure:
		return "transport_failure"
	case KindPersistenceFailure:
		return "persistence_failure"
	default:
		return "internal"
	}
}

// StatusCode maps the kind to the HTTP status used at the boundary.
func (k ErrorKind) StatusCode() int {
	switch k {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindTransportFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// AppError is the single error type raised by the usecase layer.
// Errors lists per-field problems when several inputs are invalid at once.
type AppError struct {
	Kind    ErrorKind
	Message string
	Errors  []string
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

func InvalidInput(message string, errs ...string) *AppError {
	return &AppError{Kind: KindInvalidInput, Message: message, Errors: errs}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func TransportFailure(message string, err error) *AppError {
	return &AppError{Kind: KindTransportFailure, Message: message, Err: err}
}

func PersistenceFailure(message string, err error) *AppError {
	return &AppError{Kind: KindPersistenceFailure, Message: message, Err: err}
}

// AsAppError finds the first *AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns KindInternal for nil and for errors that carry no *AppError.
func KindOf(err error) ErrorKind {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Kind
	}
	return KindInternal
}
