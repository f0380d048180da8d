package afero

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/jmgilman/searchfs/core"
	"github.com/jmgilman/searchfs/fstest"
)

// TestOSBackend_Constructor verifies NewOS creates a valid backend.
func TestOSBackend_Constructor(t *testing.T) {
	b := NewOS()
	if b == nil {
		t.Fatal("NewOS() returned nil")
	}
	if b.afs == nil {
		t.Error("NewOS() afs field is nil")
	}
}

// TestMemoryBackend_Constructor verifies NewMemory creates a valid backend.
func TestMemoryBackend_Constructor(t *testing.T) {
	b := NewMemory()
	if b == nil {
		t.Fatal("NewMemory() returned nil")
	}
	if b.afs == nil {
		t.Error("NewMemory() afs field is nil")
	}
}

// TestOSBackend_Type verifies OSBackend reports BackendLocal.
func TestOSBackend_Type(t *testing.T) {
	if got := NewOS().Type(); got != core.BackendLocal {
		t.Errorf("OSBackend.Type() = %v, want %v", got, core.BackendLocal)
	}
}

// TestMemoryBackend_Type verifies MemoryBackend reports BackendMemory.
func TestMemoryBackend_Type(t *testing.T) {
	if got := NewMemory().Type(); got != core.BackendMemory {
		t.Errorf("MemoryBackend.Type() = %v, want %v", got, core.BackendMemory)
	}
}

// TestScopedBackend verifies paths are re-rooted under the base path.
func TestScopedBackend(t *testing.T) {
	mem := afero.NewMemMapFs()
	b := NewScoped(mem, "/base")

	w, err := b.Create("/file.txt")
	if err != nil {
		t.Fatalf("Create(/file.txt): got error %v, want nil", err)
	}
	if _, err := w.Write([]byte("scoped")); err != nil {
		t.Fatalf("Write: got error %v, want nil", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: got error %v, want nil", err)
	}

	// The file must land under /base on the wrapped filesystem.
	if _, err := mem.Stat("/base/file.txt"); err != nil {
		t.Errorf("Stat(/base/file.txt) on wrapped fs: got error %v, want nil", err)
	}
	if b.Type() != core.BackendUnknown {
		t.Errorf("ScopedBackend.Type() = %v, want %v", b.Type(), core.BackendUnknown)
	}
}

func TestOSBackend_Conformance(t *testing.T) {
	fstest.TestBackend(t, func(t *testing.T) (core.Backend, string) {
		return NewOS(), filepath.ToSlash(t.TempDir())
	}, fstest.DefaultConfig())
}

// MemMapFs implies parent directories and does not reject removal of
// non-empty directories.
func TestMemoryBackend_Conformance(t *testing.T) {
	fstest.TestBackend(t, func(t *testing.T) (core.Backend, string) {
		return NewMemory(), "/"
	}, fstest.Config{ImplicitParentDirs: true, StrictRemove: false})
}
