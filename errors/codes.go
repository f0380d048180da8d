package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural serialization.
type ErrorCode string

const (
	// CodeSuccess indicates no error. It exists so every outcome of an
	// operation, including success, has a translatable code.
	CodeSuccess ErrorCode = "SUCCESS"

	// CodeFailure indicates a generic failure, most commonly a read-side
	// probe that exhausted every search path candidate without a match.
	CodeFailure ErrorCode = "FAILURE"

	// CodeTooLong indicates a template, configuration string, or resolved
	// path exceeds the configured maximum path length.
	CodeTooLong ErrorCode = "TOO_LONG"

	// CodeNoWriteDir indicates a mutating operation was attempted before
	// a write directory was configured.
	CodeNoWriteDir ErrorCode = "NO_WRITE_DIR"

	// CodeWriteFail indicates a write or append could not complete: the
	// file could not be opened, the resolved path escapes the write
	// directory, or fewer bytes were written than requested.
	CodeWriteFail ErrorCode = "WRITE_FAIL"

	// CodeMkdirFail indicates directory creation failed, including the
	// case where the leaf directory already exists.
	CodeMkdirFail ErrorCode = "MKDIR_FAIL"

	// CodeNoSearchPath indicates a read-side operation was attempted
	// before a search path was configured.
	CodeNoSearchPath ErrorCode = "NO_SEARCH_PATH"

	// CodeRemoveFail indicates a file or directory could not be deleted:
	// it is missing, or it is a directory that is not empty.
	CodeRemoveFail ErrorCode = "REMOVE_FAIL"
)

// Strerror translates an error code into a human-readable string.
// Unrecognized codes translate to "unknown error".
func Strerror(code ErrorCode) string {
	switch code {
	case CodeSuccess:
		return "success"
	case CodeFailure:
		return "failure"
	case CodeTooLong:
		return "path too long"
	case CodeNoWriteDir:
		return "no write directory"
	case CodeWriteFail:
		return "could not write to file"
	case CodeMkdirFail:
		return "could not make directory"
	case CodeNoSearchPath:
		return "no search path"
	case CodeRemoveFail:
		return "could not delete file or directory"
	}
	return "unknown error"
}
