package fstest

import (
	"bytes"
	"io"
	"path"
	"testing"

	"github.com/jmgilman/searchfs/core"
)

// writeAll writes data through a backend writer and closes it, failing the
// test on any error.
func writeAll(t *testing.T, w io.WriteCloser, data []byte) {
	t.Helper()
	n, err := w.Write(data)
	if err != nil {
		t.Fatalf("Write: got error %v, want nil", err)
	}
	if n != len(data) {
		t.Fatalf("Write: wrote %d bytes, want %d", n, len(data))
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: got error %v, want nil", err)
	}
}

// readAll reads a file through the backend and returns its contents.
func readAll(t *testing.T, b core.Backend, p string) []byte {
	t.Helper()
	r, err := b.Open(p)
	if err != nil {
		t.Fatalf("Open(%q): got error %v, want nil", p, err)
	}
	defer func() { _ = r.Close() }()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll(%q): got error %v, want nil", p, err)
	}
	return data
}

// testBackendGetwd verifies the working directory is reported.
func testBackendGetwd(t *testing.T, b core.Backend, _ string) {
	wd, err := b.Getwd()
	if err != nil {
		t.Fatalf("Getwd(): got error %v, want nil", err)
	}
	if wd == "" {
		t.Error("Getwd(): got empty string, want a directory")
	}
}

// testBackendStatNotExist verifies Stat fails for a missing entry.
func testBackendStatNotExist(t *testing.T, b core.Backend, root string) {
	if _, err := b.Stat(path.Join(root, "missing.txt")); err == nil {
		t.Error("Stat(missing): got nil error, want not-exist")
	}
}

// testBackendCreateWriteRead verifies a write round-trips byte-for-byte
// and Stat reports the written size.
func testBackendCreateWriteRead(t *testing.T, b core.Backend, root string) {
	p := path.Join(root, "file.txt")
	content := []byte("backend conformance content")

	w, err := b.Create(p)
	if err != nil {
		t.Fatalf("Create(%q): got error %v, want nil", p, err)
	}
	writeAll(t, w, content)

	info, err := b.Stat(p)
	if err != nil {
		t.Fatalf("Stat(%q): got error %v, want nil", p, err)
	}
	if info.Size() != int64(len(content)) {
		t.Errorf("Stat(%q): size = %d, want %d", p, info.Size(), len(content))
	}
	if info.IsDir() {
		t.Errorf("Stat(%q): IsDir = true, want false", p)
	}

	if got := readAll(t, b, p); !bytes.Equal(got, content) {
		t.Errorf("read back %q, want %q", got, content)
	}
}

// testBackendCreateTruncates verifies Create discards prior content.
func testBackendCreateTruncates(t *testing.T, b core.Backend, root string) {
	p := path.Join(root, "file.txt")

	w, err := b.Create(p)
	if err != nil {
		t.Fatalf("Create(%q): got error %v, want nil", p, err)
	}
	writeAll(t, w, []byte("original longer content"))

	w, err = b.Create(p)
	if err != nil {
		t.Fatalf("Create(%q): got error %v, want nil", p, err)
	}
	writeAll(t, w, []byte("new"))

	if got := readAll(t, b, p); !bytes.Equal(got, []byte("new")) {
		t.Errorf("read back %q, want %q", got, "new")
	}
}

// testBackendAppendConcat verifies appends land after existing content and
// create the file when missing.
func testBackendAppendConcat(t *testing.T, b core.Backend, root string) {
	p := path.Join(root, "log.txt")

	w, err := b.Append(p)
	if err != nil {
		t.Fatalf("Append(%q): got error %v, want nil", p, err)
	}
	writeAll(t, w, []byte("first"))

	w, err = b.Append(p)
	if err != nil {
		t.Fatalf("Append(%q): got error %v, want nil", p, err)
	}
	writeAll(t, w, []byte("+second"))

	if got := readAll(t, b, p); !bytes.Equal(got, []byte("first+second")) {
		t.Errorf("read back %q, want %q", got, "first+second")
	}
}

// testBackendMkdirAndStat verifies a created directory stats as one.
func testBackendMkdirAndStat(t *testing.T, b core.Backend, root string) {
	p := path.Join(root, "dir")
	if err := b.Mkdir(p); err != nil {
		t.Fatalf("Mkdir(%q): got error %v, want nil", p, err)
	}

	info, err := b.Stat(p)
	if err != nil {
		t.Fatalf("Stat(%q): got error %v, want nil", p, err)
	}
	if !info.IsDir() {
		t.Errorf("Stat(%q): IsDir = false, want true", p)
	}
}

// testBackendMkdirExisting verifies Mkdir rejects a pre-existing path.
func testBackendMkdirExisting(t *testing.T, b core.Backend, root string) {
	p := path.Join(root, "dir")
	if err := b.Mkdir(p); err != nil {
		t.Fatalf("Mkdir(%q): got error %v, want nil", p, err)
	}
	if err := b.Mkdir(p); err == nil {
		t.Errorf("Mkdir(%q) on existing dir: got nil error, want exist error", p)
	}
}

// testBackendRemoveFile verifies a removed file stops existing.
func testBackendRemoveFile(t *testing.T, b core.Backend, root string) {
	p := path.Join(root, "file.txt")
	w, err := b.Create(p)
	if err != nil {
		t.Fatalf("Create(%q): got error %v, want nil", p, err)
	}
	writeAll(t, w, []byte("x"))

	if err := b.Remove(p); err != nil {
		t.Fatalf("Remove(%q): got error %v, want nil", p, err)
	}
	if _, err := b.Stat(p); err == nil {
		t.Errorf("Stat(%q) after remove: got nil error, want not-exist", p)
	}
}

// testBackendRemoveMissing verifies removing a missing entry fails.
func testBackendRemoveMissing(t *testing.T, b core.Backend, root string) {
	if err := b.Remove(path.Join(root, "missing.txt")); err == nil {
		t.Error("Remove(missing): got nil error, want not-exist")
	}
}

// testBackendRemoveNonEmptyDir verifies Remove rejects directories that
// still have children, then succeeds bottom-up.
func testBackendRemoveNonEmptyDir(t *testing.T, b core.Backend, root string) {
	dir := path.Join(root, "dir")
	child := path.Join(dir, "child.txt")

	if err := b.Mkdir(dir); err != nil {
		t.Fatalf("Mkdir(%q): got error %v, want nil", dir, err)
	}
	w, err := b.Create(child)
	if err != nil {
		t.Fatalf("Create(%q): got error %v, want nil", child, err)
	}
	writeAll(t, w, []byte("x"))

	if err := b.Remove(dir); err == nil {
		t.Fatalf("Remove(%q) on non-empty dir: got nil error, want error", dir)
	}

	if err := b.Remove(child); err != nil {
		t.Fatalf("Remove(%q): got error %v, want nil", child, err)
	}
	if err := b.Remove(dir); err != nil {
		t.Fatalf("Remove(%q) on emptied dir: got error %v, want nil", dir, err)
	}
}

// testBackendCreateWithoutParent verifies parent-directory behavior
// matches the declared configuration.
func testBackendCreateWithoutParent(t *testing.T, b core.Backend, root string, config Config) {
	p := path.Join(root, "nodir", "file.txt")

	w, err := b.Create(p)
	if config.ImplicitParentDirs {
		if err != nil {
			t.Fatalf("Create(%q): got error %v, want nil (implicit parents)", p, err)
		}
		writeAll(t, w, []byte("x"))
		if _, err := b.Stat(p); err != nil {
			t.Errorf("Stat(%q): got error %v, want nil", p, err)
		}
		return
	}

	if err == nil {
		_ = w.Close()
		t.Errorf("Create(%q): got nil error, want missing-parent error", p)
	}
}
