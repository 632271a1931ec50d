package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrMissingCredential  = errors.New("missing credential")
	ErrNotFound           = errors.New("not found")
	ErrRemoteAPI          = errors.New("remote API error")
	ErrMalformedResponse  = errors.New("malformed response")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// Error codes attached with WrapWithCode
const (
	CodeInvalidInput      = "INVALID_INPUT"
	CodeMissingCredential = "MISSING_CREDENTIAL"
	CodeNotFound          = "NOT_FOUND"
	CodeRemoteAPI         = "REMOTE_API"
	CodeMalformedResponse = "MALFORMED_RESPONSE"
)

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode returns the code attached with WrapWithCode, or the code of the
// wrapped error when this layer has none
func (e *Error) ErrorCode() string {
	if e.Code != "" {
		return e.Code
	}
	return GetCode(e.Err)
}

// Coder is implemented by errors that carry a machine-readable code
type Coder interface {
	ErrorCode() string
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetCode returns the code of the first Coder in err's chain
func GetCode(err error) string {
	var c Coder
	if errors.As(err, &c) {
		return c.ErrorCode()
	}
	return ""
}

// GetMessage returns the error message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsInvalidInput returns true if the error is an invalid input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsMissingCredential returns true if a required credential was not configured
func IsMissingCredential(err error) bool {
	return errors.Is(err, ErrMissingCredential)
}

// IsNotFound returns true if the error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRemoteAPI returns true if a remote API answered with an unexpected status
func IsRemoteAPI(err error) bool {
	return errors.Is(err, ErrRemoteAPI)
}

// IsMalformedResponse returns true if a remote payload could not be understood
func IsMalformedResponse(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}
