// Package errors provides structured error handling for filesystem resolution.
//
// This package extends Go's standard error handling with the resolver's error
// codes while maintaining full compatibility with the standard library errors
// package (errors.Is, errors.As, errors.Unwrap).
//
// # Features
//
//   - Structured error codes matching the resolver's error taxonomy
//   - Error wrapping that preserves the error chain
//   - A code-to-text translator (Strerror) for every code
//   - Zero dependencies
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodeNoWriteDir, "no write directory")
//	err := errors.Newf(errors.CodeTooLong, "path exceeds %d bytes", max)
//
// Wrapping errors:
//
//	w, err := backend.Create(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeWriteFail, "could not write to file")
//	}
//
// Inspecting errors:
//
//	if errors.GetCode(err) == errors.CodeTooLong {
//	    // shorten the name or reconfigure
//	}
package errors
