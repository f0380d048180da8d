package searchfs

import (
	"io"

	"github.com/jmgilman/searchfs/core"
	fserrors "github.com/jmgilman/searchfs/errors"
)

// Exists reports whether a logical name resolves to an existing file or
// directory anywhere on the search path.
//
// A probe miss returns (false, nil). Errors are reserved for configuration
// and capacity failures (NO_SEARCH_PATH, TOO_LONG).
func (f *FS) Exists(name string) (bool, error) {
	_, _, err := f.resolveForRead(name)
	if err != nil {
		if fserrors.IsCode(err, fserrors.CodeFailure) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetInfo resolves a logical name through the search path and returns
// metadata from a live stat of the first matching candidate.
func (f *FS) GetInfo(name string) (core.FileInfo, error) {
	_, fi, err := f.resolveForRead(name)
	if err != nil {
		return core.FileInfo{}, err
	}
	return core.InfoFromStat(fi), nil
}

// Read resolves a logical name through the search path, opens the first
// matching candidate, and returns its full contents.
//
// The buffer is sized from the probe's stat result; a file that shrinks
// between stat and read surfaces as a FAILURE (best-effort, not retried).
func (f *FS) Read(name string) ([]byte, error) {
	concrete, fi, err := f.resolveForRead(name)
	if err != nil {
		return nil, err
	}

	r, err := f.backend.Open(concrete)
	if err != nil {
		return nil, fserrors.Wrapf(err, fserrors.CodeFailure, "open %s", concrete)
	}
	defer func() { _ = r.Close() }()

	buf := make([]byte, fi.Size())
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fserrors.Wrapf(err, fserrors.CodeFailure, "read %s", concrete)
	}
	return buf, nil
}

// Write resolves a logical name against the write directory and replaces
// the file's contents with data, creating the file and any missing
// ancestor directories as needed.
func (f *FS) Write(name string, data []byte) error {
	return f.writeFile(name, data, false)
}

// Append resolves a logical name against the write directory and writes
// data at the end of the file, creating the file and any missing ancestor
// directories as needed. Existing content is preserved.
func (f *FS) Append(name string, data []byte) error {
	return f.writeFile(name, data, true)
}

func (f *FS) writeFile(name string, data []byte, appendMode bool) error {
	concrete, err := f.resolveForWrite(name)
	if err != nil {
		return err
	}
	f.ensureParentTree(concrete)

	var w io.WriteCloser
	if appendMode {
		w, err = f.backend.Append(concrete)
	} else {
		w, err = f.backend.Create(concrete)
	}
	if err != nil {
		return fserrors.Wrapf(err, fserrors.CodeWriteFail, "open %s", concrete)
	}

	n, werr := w.Write(data)
	cerr := w.Close()
	if werr != nil {
		return fserrors.Wrapf(werr, fserrors.CodeWriteFail, "write %s", concrete)
	}
	// A short write leaves the partial bytes in place; no cleanup is attempted.
	if n != len(data) {
		return fserrors.Newf(fserrors.CodeWriteFail, "short write to %s: %d of %d bytes", concrete, n, len(data))
	}
	if cerr != nil {
		return fserrors.Wrapf(cerr, fserrors.CodeWriteFail, "close %s", concrete)
	}
	return nil
}

// Mkdir resolves a logical name against the write directory and creates
// the full directory tree, including the final leaf. Missing ancestors are
// created root-to-leaf; a pre-existing leaf is an error.
func (f *FS) Mkdir(name string) error {
	concrete, err := f.resolveForWrite(name)
	if err != nil {
		return err
	}
	if err := f.makeDirs(concrete); err != nil {
		return fserrors.Wrapf(err, fserrors.CodeMkdirFail, "mkdir %s", concrete)
	}
	return nil
}

// Delete resolves a logical name against the write directory and removes
// the file or empty directory it names. Removing a non-empty directory is
// an error.
func (f *FS) Delete(name string) error {
	concrete, err := f.resolveForWrite(name)
	if err != nil {
		return err
	}
	if err := f.backend.Remove(concrete); err != nil {
		return fserrors.Wrapf(err, fserrors.CodeRemoveFail, "remove %s", concrete)
	}
	return nil
}

// Getwd returns the backend's current working directory.
func (f *FS) Getwd() (string, error) {
	return f.backend.Getwd()
}
