package errors

// FsError extends the standard error interface with the resolver's error
// codes for consistent error handling.
//
// FsError maintains compatibility with standard library error handling
// (errors.Is, errors.As, errors.Unwrap).
type FsError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Message returns the human-readable error message.
	Message() string

	// Unwrap returns the wrapped error for errors.Is and errors.As
	// compatibility. Returns nil if this error does not wrap another error.
	Unwrap() error
}
