package core_test

import (
	"io/fs"
	"testing"
	"time"

	"github.com/jmgilman/searchfs/core"
)

// TestBackendType_String verifies BackendType.String() representations.
func TestBackendType_String(t *testing.T) {
	tests := []struct {
		name     string
		typ      core.BackendType
		expected string
	}{
		{name: "Unknown", typ: core.BackendUnknown, expected: "unknown"},
		{name: "Local", typ: core.BackendLocal, expected: "local"},
		{name: "Memory", typ: core.BackendMemory, expected: "memory"},
		{name: "Invalid", typ: core.BackendType(999), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestFileKind_String verifies FileKind.String() representations.
func TestFileKind_String(t *testing.T) {
	tests := []struct {
		name     string
		kind     core.FileKind
		expected string
	}{
		{name: "None", kind: core.KindNone, expected: "none"},
		{name: "Regular", kind: core.KindRegular, expected: "regular"},
		{name: "Directory", kind: core.KindDirectory, expected: "directory"},
		{name: "Symlink", kind: core.KindSymlink, expected: "symlink"},
		{name: "Invalid", kind: core.FileKind(999), expected: "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// stubInfo implements fs.FileInfo for conversion tests.
type stubInfo struct {
	size int64
	mode fs.FileMode
	mod  time.Time
}

func (s stubInfo) Name() string       { return "stub" }
func (s stubInfo) Size() int64        { return s.size }
func (s stubInfo) Mode() fs.FileMode  { return s.mode }
func (s stubInfo) ModTime() time.Time { return s.mod }
func (s stubInfo) IsDir() bool        { return s.mode.IsDir() }
func (s stubInfo) Sys() interface{}   { return nil }

// TestInfoFromStat verifies mode-to-kind mapping and field carry-over.
func TestInfoFromStat(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		mode fs.FileMode
		kind core.FileKind
	}{
		{name: "Regular", mode: 0o644, kind: core.KindRegular},
		{name: "Directory", mode: fs.ModeDir | 0o755, kind: core.KindDirectory},
		{name: "Symlink", mode: fs.ModeSymlink | 0o777, kind: core.KindSymlink},
		{name: "Other", mode: fs.ModeSocket, kind: core.KindNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := core.InfoFromStat(stubInfo{size: 42, mode: tt.mode, mod: now})
			if info.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", info.Kind, tt.kind)
			}
			if info.Size != 42 {
				t.Errorf("Size = %d, want 42", info.Size)
			}
			if !info.ModTime.Equal(now) {
				t.Errorf("ModTime = %v, want %v", info.ModTime, now)
			}
		})
	}
}
