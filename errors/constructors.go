package errors

import "fmt"

// New creates a new FsError with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeNoSearchPath, "no search path")
func New(code ErrorCode, message string) FsError {
	return &fsError{
		code:    code,
		message: message,
		cause:   nil,
	}
}

// Newf creates a new FsError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeTooLong, "resolved path exceeds %d bytes", max)
func Newf(code ErrorCode, format string, args ...interface{}) FsError {
	return &fsError{
		code:    code,
		message: fmt.Sprintf(format, args...),
		cause:   nil,
	}
}

// Wrap wraps an error with a code and message while preserving the original
// error. The wrapped error is accessible via Unwrap() and compatible with
// errors.Is and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	r, err := backend.Open(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeFailure, "open failed")
//	}
func Wrap(err error, code ErrorCode, message string) FsError {
	if err == nil {
		return nil
	}
	return &fsError{
		code:    code,
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the
// original error.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := backend.Remove(path); err != nil {
//	    return errors.Wrapf(err, errors.CodeRemoveFail, "remove %s", path)
//	}
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) FsError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}
