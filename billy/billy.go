package billy

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/searchfs/core"
)

// LocalBackend wraps billy's osfs for local filesystem access.
// It provides a thin adapter that implements core.Backend while maintaining
// access to the underlying billy.Filesystem for go-git integration.
type LocalBackend struct {
	backend
}

// MemoryBackend wraps billy's memfs for in-memory filesystem access.
// It provides a thin adapter that implements core.Backend while maintaining
// access to the underlying billy.Filesystem for go-git integration.
type MemoryBackend struct {
	backend
}

// NewLocal creates a go-billy-backed local backend rooted at the
// filesystem root ("/"). Relative concrete paths are interpreted against
// the process working directory.
func NewLocal() *LocalBackend {
	return &LocalBackend{backend{
		bfs: osfs.New("/"),
		typ: core.BackendLocal,
		wd:  os.Getwd,
	}}
}

// NewMemory creates a go-billy-backed in-memory backend. The filesystem is
// initially empty and its working directory is "/".
func NewMemory() *MemoryBackend {
	return &MemoryBackend{backend{
		bfs: memfs.New(),
		typ: core.BackendMemory,
		wd:  func() (string, error) { return "/", nil },
	}}
}

// Unwrap returns the underlying billy.Filesystem for go-git integration.
func (b *LocalBackend) Unwrap() billy.Filesystem {
	return b.bfs
}

// Unwrap returns the underlying billy.Filesystem for go-git integration.
func (b *MemoryBackend) Unwrap() billy.Filesystem {
	return b.bfs
}

// backend carries the shared adapter logic for both billy backends.
type backend struct {
	bfs billy.Filesystem
	typ core.BackendType
	wd  func() (string, error)
}

// abs anchors relative paths at the backend's working directory. Billy
// filesystems resolve paths against their own root, so the adapter pins
// down what "relative" means before delegating.
func (b *backend) abs(p string) (string, error) {
	if path.IsAbs(p) {
		return p, nil
	}
	wd, err := b.wd()
	if err != nil {
		return "", err
	}
	return path.Join(filepath.ToSlash(wd), p), nil
}

// Stat returns metadata for the named file or directory.
func (b *backend) Stat(p string) (fs.FileInfo, error) {
	p, err := b.abs(p)
	if err != nil {
		return nil, err
	}
	return b.bfs.Stat(p)
}

// Open opens the named file for reading.
func (b *backend) Open(p string) (io.ReadCloser, error) {
	p, err := b.abs(p)
	if err != nil {
		return nil, err
	}
	return b.bfs.Open(p)
}

// Create creates or truncates the named file for writing.
func (b *backend) Create(p string) (io.WriteCloser, error) {
	p, err := b.abs(p)
	if err != nil {
		return nil, err
	}
	return b.bfs.Create(p)
}

// Append opens the named file for appending, creating it if necessary.
func (b *backend) Append(p string) (io.WriteCloser, error) {
	p, err := b.abs(p)
	if err != nil {
		return nil, err
	}
	return b.bfs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
}

// Mkdir creates a single directory, failing with fs.ErrExist if an entry
// already occupies the path. Billy only exposes MkdirAll, so existence is
// checked explicitly first.
func (b *backend) Mkdir(p string) error {
	p, err := b.abs(p)
	if err != nil {
		return err
	}
	if _, err := b.bfs.Stat(p); err == nil {
		return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrExist}
	}
	return b.bfs.MkdirAll(p, 0o755)
}

// Remove removes the named file or empty directory.
func (b *backend) Remove(p string) error {
	p, err := b.abs(p)
	if err != nil {
		return err
	}
	return b.bfs.Remove(p)
}

// Getwd returns the backend's working directory.
func (b *backend) Getwd() (string, error) {
	return b.wd()
}

// Type returns the underlying backend type.
func (b *backend) Type() core.BackendType {
	return b.typ
}
