package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
//
// A nil error translates to CodeSuccess. An error that is not an FsError
// anywhere in its chain translates to CodeFailure. Otherwise the code of
// the outermost FsError in the chain is returned.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeNoWriteDir {
//	    // configure a write directory first
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeSuccess
	}

	var fsErr FsError
	if stderrors.As(err, &fsErr) {
		return fsErr.Code()
	}

	return CodeFailure
}

// IsCode reports whether the error carries the given code.
// Returns false for nil errors unless code is CodeSuccess.
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
