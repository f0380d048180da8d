package searchfs

import (
	"testing"

	"github.com/jmgilman/searchfs/billy"
	fserrors "github.com/jmgilman/searchfs/errors"
)

// TestCheckContained verifies canonical containment over the write
// directory, including the "/" sandbox root produced by relative
// templates on a memory backend.
func TestCheckContained(t *testing.T) {
	tests := []struct {
		name     string
		writeDir string
		path     string
		wantOK   bool
	}{
		{name: "Inside", writeDir: "/data/?", path: "/data/a.txt", wantOK: true},
		{name: "NestedInside", writeDir: "/data/?", path: "/data/sub/a.txt", wantOK: true},
		{name: "RootItself", writeDir: "/data/?", path: "/data/", wantOK: true},
		{name: "ClimbOut", writeDir: "/data/?", path: "/data/../etc/passwd", wantOK: false},
		{name: "Sibling", writeDir: "/data/?", path: "/database/a.txt", wantOK: false},
		{name: "SlashRoot", writeDir: "./?", path: "./a.txt", wantOK: true},
		{name: "SlashRootClimb", writeDir: "./box/?", path: "./box/../a.txt", wantOK: false},
		{name: "DotDotSubstring", writeDir: "/data/?", path: "/data/notes..txt", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := New(billy.NewMemory(), WithWriteDir(tt.writeDir))
			if err != nil {
				t.Fatalf("New(): got error %v, want nil", err)
			}

			err = fs.checkContained(tt.path)
			if tt.wantOK && err != nil {
				t.Errorf("checkContained(%q): got error %v, want nil", tt.path, err)
			}
			if !tt.wantOK && !fserrors.IsCode(err, fserrors.CodeWriteFail) {
				t.Errorf("checkContained(%q): code = %v, want %v", tt.path, fserrors.GetCode(err), fserrors.CodeWriteFail)
			}
		})
	}
}

// TestMakeDirs verifies root-to-leaf creation ordering and that only the
// leaf's outcome is reported.
func TestMakeDirs(t *testing.T) {
	fs, err := New(billy.NewMemory(), WithWriteDir("./?"))
	if err != nil {
		t.Fatalf("New(): got error %v, want nil", err)
	}

	if err := fs.makeDirs("/a/b/c"); err != nil {
		t.Fatalf("makeDirs(/a/b/c): got error %v, want nil", err)
	}
	for _, dir := range []string{"/a", "/a/b", "/a/b/c"} {
		info, err := fs.backend.Stat(dir)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir = false, want true", dir)
		}
	}

	// Existing ancestors are tolerated; an existing leaf is not.
	if err := fs.makeDirs("/a/b/d"); err != nil {
		t.Errorf("makeDirs(/a/b/d): got error %v, want nil", err)
	}
	if err := fs.makeDirs("/a/b/c"); err == nil {
		t.Error("makeDirs(existing leaf): got nil error, want error")
	}
}
