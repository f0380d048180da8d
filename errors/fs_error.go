package errors

import "fmt"

// fsError is the concrete implementation of FsError.
// It is private to enforce construction through package functions.
type fsError struct {
	code    ErrorCode
	message string
	cause   error
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" if cause is present.
func (e *fsError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *fsError) Code() ErrorCode {
	return e.code
}

// Message returns the error message.
func (e *fsError) Message() string {
	return e.message
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *fsError) Unwrap() error {
	return e.cause
}
