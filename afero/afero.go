package afero

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/jmgilman/searchfs/core"
)

// OSBackend wraps afero's OsFs for local filesystem access.
type OSBackend struct {
	backend
}

// MemoryBackend wraps afero's MemMapFs for in-memory filesystem access.
type MemoryBackend struct {
	backend
}

// ScopedBackend wraps an arbitrary afero.Fs re-rooted at a base path, so
// every concrete path the resolver produces lands under that base.
type ScopedBackend struct {
	backend
}

// NewOS creates an afero-backed local backend. Relative concrete paths are
// interpreted against the process working directory.
func NewOS() *OSBackend {
	return &OSBackend{backend{
		afs: afero.NewOsFs(),
		typ: core.BackendLocal,
		wd:  os.Getwd,
	}}
}

// NewMemory creates an afero-backed in-memory backend. The filesystem is
// initially empty and its working directory is "/".
func NewMemory() *MemoryBackend {
	return &MemoryBackend{backend{
		afs: afero.NewMemMapFs(),
		typ: core.BackendMemory,
		wd:  func() (string, error) { return "/", nil },
	}}
}

// NewScoped wraps an existing afero filesystem rooted at basePath.
// The scoped backend reports "/" as its working directory; paths it
// receives are interpreted relative to basePath by afero's BasePathFs.
func NewScoped(afs afero.Fs, basePath string) *ScopedBackend {
	return &ScopedBackend{backend{
		afs: afero.NewBasePathFs(afs, basePath),
		typ: core.BackendUnknown,
		wd:  func() (string, error) { return "/", nil },
	}}
}

// Unwrap returns the underlying afero.Fs.
func (b *OSBackend) Unwrap() afero.Fs { return b.afs }

// Unwrap returns the underlying afero.Fs.
func (b *MemoryBackend) Unwrap() afero.Fs { return b.afs }

// Unwrap returns the underlying afero.Fs, including the base-path wrapper.
func (b *ScopedBackend) Unwrap() afero.Fs { return b.afs }

// backend carries the shared adapter logic for all afero backends.
type backend struct {
	afs afero.Fs
	typ core.BackendType
	wd  func() (string, error)
}

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
	return b.afs.Stat(p)
}

// Open opens the named file for reading.
func (b *backend) Open(p string) (io.ReadCloser, error) {
	p, err := b.abs(p)
	if err != nil {
		return nil, err
	}
	return b.afs.Open(p)
}

// Create creates or truncates the named file for writing.
func (b *backend) Create(p string) (io.WriteCloser, error) {
	p, err := b.abs(p)
	if err != nil {
		return nil, err
	}
	return b.afs.Create(p)
}

// Append opens the named file for appending, creating it if necessary.
func (b *backend) Append(p string) (io.WriteCloser, error) {
	p, err := b.abs(p)
	if err != nil {
		return nil, err
	}
	return b.afs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
}

// Mkdir creates a single directory, failing if it already exists.
func (b *backend) Mkdir(p string) error {
	p, err := b.abs(p)
	if err != nil {
		return err
	}
	return b.afs.Mkdir(p, 0o755)
}

// Remove removes the named file or directory entry.
func (b *backend) Remove(p string) error {
	p, err := b.abs(p)
	if err != nil {
		return err
	}
	return b.afs.Remove(p)
}

// Getwd returns the backend's working directory.
func (b *backend) Getwd() (string, error) {
	return b.wd()
}

// Type returns the underlying backend type.
func (b *backend) Type() core.BackendType {
	return b.typ
}
