package searchfs

import (
	"go.uber.org/zap"

	"github.com/jmgilman/searchfs/core"
	fserrors "github.com/jmgilman/searchfs/errors"
)

const (
	// DefaultMaxPathLen is the maximum length of a configuration string or
	// resolved path unless overridden with WithMaxPathLen.
	DefaultMaxPathLen = 256

	// TemplateSeparator separates templates in a search path list.
	TemplateSeparator = ";"

	// TemplateMark is the placeholder replaced by the logical name.
	TemplateMark = "?"
)

// FS resolves logical names to concrete paths and performs filesystem
// operations through a backend.
//
// The search path and write directory are explicit state on the FS value.
// Configuration methods and operations are not synchronized; callers using
// an FS from multiple goroutines must serialize configuration changes
// externally.
type FS struct {
	backend    core.Backend
	searchPath string
	writeDir   string
	maxPathLen int
	logger     *zap.Logger
}

// Option configures FS creation.
type Option func(*FS)

// WithSearchPath sets the initial search path: a list of templates
// separated by ";". Equivalent to calling SetSearchPath after New, with
// the same length validation.
func WithSearchPath(path string) Option {
	return func(f *FS) { f.searchPath = path }
}

// WithWriteDir sets the initial write directory template. Equivalent to
// calling SetWriteDir after New, with the same length validation.
func WithWriteDir(dir string) Option {
	return func(f *FS) { f.writeDir = dir }
}

// WithMaxPathLen overrides the maximum length for configuration strings
// and resolved paths. Values below 1 leave the default in place.
func WithMaxPathLen(n int) Option {
	return func(f *FS) {
		if n > 0 {
			f.maxPathLen = n
		}
	}
}

// WithLogger attaches a logger for debug-level resolution tracing.
// Logging is off by default and never changes operation behavior.
func WithLogger(logger *zap.Logger) Option {
	return func(f *FS) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// New creates an FS over the given backend.
//
// Both the search path and write directory start unconfigured unless
// options provide them; operations invoked in that state fail with
// NO_SEARCH_PATH or NO_WRITE_DIR respectively.
func New(backend core.Backend, opts ...Option) (*FS, error) {
	if backend == nil {
		return nil, fserrors.New(fserrors.CodeFailure, "nil backend")
	}

	f := &FS{
		backend:    backend,
		maxPathLen: DefaultMaxPathLen,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}

	if len(f.searchPath) > f.maxPathLen {
		return nil, fserrors.Newf(fserrors.CodeTooLong, "search path exceeds %d bytes", f.maxPathLen)
	}
	if len(f.writeDir) > f.maxPathLen {
		return nil, fserrors.Newf(fserrors.CodeTooLong, "write directory exceeds %d bytes", f.maxPathLen)
	}
	return f, nil
}

// SetSearchPath replaces the search path wholesale. The raw string must not
// exceed the maximum path length. An empty string returns the FS to the
// unconfigured state.
func (f *FS) SetSearchPath(path string) error {
	if len(path) > f.maxPathLen {
		return fserrors.Newf(fserrors.CodeTooLong, "search path exceeds %d bytes", f.maxPathLen)
	}
	f.searchPath = path
	return nil
}

// SearchPath returns the currently configured raw search path.
// An empty string means unconfigured.
func (f *FS) SearchPath() string {
	return f.searchPath
}

// SetWriteDir replaces the write directory template. The raw string must
// not exceed the maximum path length. An empty string returns the FS to
// the unconfigured state.
func (f *FS) SetWriteDir(dir string) error {
	if len(dir) > f.maxPathLen {
		return fserrors.Newf(fserrors.CodeTooLong, "write directory exceeds %d bytes", f.maxPathLen)
	}
	f.writeDir = dir
	return nil
}

// WriteDir returns the currently configured raw write directory template.
// An empty string means unconfigured.
func (f *FS) WriteDir() string {
	return f.writeDir
}

// MaxPathLen returns the configured maximum path length.
func (f *FS) MaxPathLen() int {
	return f.maxPathLen
}

// Backend returns the underlying backend.
func (f *FS) Backend() core.Backend {
	return f.backend
}
