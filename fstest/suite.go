// Package fstest provides a conformance test suite for validating storage
// backend implementations against the core.Backend contract.
//
// Backend packages import and execute the suite to verify they honor the
// contract the resolver depends on. Backends differ in how strictly they
// model a POSIX filesystem; the Config struct declares those differences
// so the suite can adapt.
//
// Example usage:
//
//	func TestMyBackend(t *testing.T) {
//	    fstest.TestBackend(t, func(t *testing.T) (core.Backend, string) {
//	        return mybackend.New(), "/"
//	    }, fstest.DefaultConfig())
//	}
package fstest

import (
	"testing"

	"github.com/jmgilman/searchfs/core"
)

// Config declares backend behavior characteristics the suite adapts to.
type Config struct {
	// ImplicitParentDirs indicates Create can succeed without existing
	// parent directories (the backend creates or implies them).
	ImplicitParentDirs bool

	// StrictRemove indicates Remove fails on non-empty directories.
	// Loose in-memory backends may remove the entry regardless.
	StrictRemove bool

	// SkipTests lists specific subtest names to skip (e.g. "Backend/Getwd").
	SkipTests []string
}

// DefaultConfig returns configuration for POSIX-like backends.
func DefaultConfig() Config {
	return Config{
		ImplicitParentDirs: false,
		StrictRemove:       true,
	}
}

// NewBackendFunc returns a fresh backend plus a writable root directory
// for a single subtest. Local backends should return a temp directory;
// memory backends typically return "/".
type NewBackendFunc func(t *testing.T) (core.Backend, string)

// TestBackend runs the conformance suite against a backend. Each subtest
// receives a fresh backend, so invocations must start clean.
func TestBackend(t *testing.T, newBackend NewBackendFunc, config Config) {
	shouldSkip := func(name string) bool {
		for _, skip := range config.SkipTests {
			if skip == name {
				return true
			}
		}
		return false
	}

	run := func(name string, fn func(t *testing.T, b core.Backend, root string)) {
		t.Run(name, func(t *testing.T) {
			if shouldSkip("Backend/" + name) {
				t.Skip("Skipped by backend configuration")
				return
			}
			b, root := newBackend(t)
			fn(t, b, root)
		})
	}

	run("Getwd", testBackendGetwd)
	run("StatNotExist", testBackendStatNotExist)
	run("CreateWriteRead", testBackendCreateWriteRead)
	run("CreateTruncates", testBackendCreateTruncates)
	run("AppendConcat", testBackendAppendConcat)
	run("MkdirAndStat", testBackendMkdirAndStat)
	run("MkdirExisting", testBackendMkdirExisting)
	run("RemoveFile", testBackendRemoveFile)
	run("RemoveMissing", testBackendRemoveMissing)

	t.Run("RemoveNonEmptyDir", func(t *testing.T) {
		if !config.StrictRemove {
			t.Skip("Backend does not reject non-empty directory removal")
			return
		}
		if shouldSkip("Backend/RemoveNonEmptyDir") {
			t.Skip("Skipped by backend configuration")
			return
		}
		b, root := newBackend(t)
		testBackendRemoveNonEmptyDir(t, b, root)
	})

	t.Run("CreateWithoutParent", func(t *testing.T) {
		if shouldSkip("Backend/CreateWithoutParent") {
			t.Skip("Skipped by backend configuration")
			return
		}
		b, root := newBackend(t)
		testBackendCreateWithoutParent(t, b, root, config)
	})
}
