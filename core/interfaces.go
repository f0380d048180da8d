package core

import (
	"io"
	"io/fs"
)

// BackendType represents the underlying type of backend implementation.
type BackendType int

const (
	// BackendUnknown indicates the backend type is unknown or unspecified.
	BackendUnknown BackendType = iota
	// BackendLocal indicates a local filesystem (e.g., disk-backed).
	BackendLocal
	// BackendMemory indicates an in-memory filesystem.
	BackendMemory
)

// String returns a string representation of the BackendType.
func (t BackendType) String() string {
	switch t {
	case BackendLocal:
		return "local"
	case BackendMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// Backend is the primitive filesystem capability driven by the resolver.
//
// A Backend operates on concrete, slash-separated paths that have already
// been produced by template substitution. Relative paths are interpreted
// against the backend's working directory (see Getwd). Each method maps to
// a single underlying filesystem call; backends perform no retries, no
// caching, and no path policy of their own.
type Backend interface {
	// Stat returns metadata for the named file or directory.
	// If there is an error, it will be of type *fs.PathError.
	Stat(path string) (fs.FileInfo, error)

	// Open opens the named file for reading.
	// The returned reader must be closed when no longer needed.
	Open(path string) (io.ReadCloser, error)

	// Create creates or truncates the named file for writing.
	// If the file already exists, its previous contents are discarded.
	// The returned writer must be closed when no longer needed.
	Create(path string) (io.WriteCloser, error)

	// Append opens the named file for appending, creating it if necessary.
	// Existing content is preserved; writes land at the end of the file.
	// The returned writer must be closed when no longer needed.
	Append(path string) (io.WriteCloser, error)

	// Mkdir creates a single directory. It fails if the directory already
	// exists (typically with fs.ErrExist) or if an ancestor is missing and
	// the backend cannot create it.
	Mkdir(path string) error

	// Remove removes the named file or empty directory.
	// Removing a non-empty directory is an error.
	Remove(path string) error

	// Getwd returns the backend's working directory: the base against
	// which relative concrete paths are interpreted.
	Getwd() (string, error)

	// Type returns the underlying backend type.
	// This allows callers to introspect whether the backend is backed by
	// a real disk or by in-memory storage.
	Type() BackendType
}
