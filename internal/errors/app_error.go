package errors

import (
	"errors"
	"fmt"
)

type AppError struct {
	Code    string
	Message string
	Detail  string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeTransport      = "TRANSPORT_ERROR"
	ErrCodeRemoteRejected = "REMOTE_REJECTED"
	ErrCodeBadResponse    = "BAD_RESPONSE"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodePersistence    = "PERSISTENCE_ERROR"
	ErrCodeInternal       = "INTERNAL_ERROR"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message)
}

// TransportError marks a request that never produced a response: the
// connection failed, the context expired, or the body could not be read.
func TransportError(message string) *AppError {
	return NewAppError(ErrCodeTransport, message)
}

// RemoteRejectedError marks a logical failure: the backend answered, but
// its embedded message says the operation did not succeed.
func RemoteRejectedError(message string) *AppError {
	return NewAppError(ErrCodeRemoteRejected, message)
}

func BadResponseError(message string) *AppError {
	return NewAppError(ErrCodeBadResponse, message)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message)
}

func PersistenceError(message string) *AppError {
	return NewAppError(ErrCodePersistence, message)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// IsTransport reports whether err is a transport-level failure, as
// opposed to a logical rejection carried inside a successful response.
func IsTransport(err error) bool {
	if appErr, ok := IsAppError(err); ok {
		return appErr.Code == ErrCodeTransport
	}

	return false
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}
