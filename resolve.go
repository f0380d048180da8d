package searchfs

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	fserrors "github.com/jmgilman/searchfs/errors"
)

// resolveForRead probes the search path templates in configured order and
// returns the first candidate that exists, along with its stat metadata.
// Earlier templates win ties.
func (f *FS) resolveForRead(name string) (string, fs.FileInfo, error) {
	if f.searchPath == "" {
		return "", nil, fserrors.New(fserrors.CodeNoSearchPath, "no search path")
	}

	rest := f.searchPath
	for {
		template, next, ok := nextTemplate(rest)
		if !ok {
			break
		}
		rest = next

		candidate, err := substitute(template, name, f.maxPathLen)
		if err != nil {
			return "", nil, err
		}
		info, err := f.backend.Stat(candidate)
		if err == nil {
			f.logger.Debug("resolved read path",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, info, nil
		}
	}

	f.logger.Debug("search path exhausted", zap.String("name", name))
	return "", nil, fserrors.Newf(fserrors.CodeFailure, "%s: not found in search path", name)
}

// resolveForWrite substitutes the logical name into the write directory
// template and verifies the result cannot escape the write directory.
func (f *FS) resolveForWrite(name string) (string, error) {
	if f.writeDir == "" {
		return "", fserrors.New(fserrors.CodeNoWriteDir, "no write directory")
	}

	candidate, err := substitute(f.writeDir, name, f.maxPathLen)
	if err != nil {
		return "", err
	}
	if err := f.checkContained(candidate); err != nil {
		return "", err
	}

	f.logger.Debug("resolved write path",
		zap.String("name", name),
		zap.String("path", candidate))
	return candidate, nil
}

// checkContained verifies a resolved path stays inside the write directory.
//
// The sandbox root is the directory part of the write directory template
// with the marker substituted away. Both paths are cleaned and absolutized
// against the backend's working directory before comparison, so a logical
// name carrying parent-traversal segments cannot step outside the root.
func (f *FS) checkContained(candidate string) error {
	anchor, err := substitute(f.writeDir, "", f.maxPathLen)
	if err != nil {
		return err
	}

	root, err := f.abs(path.Dir(anchor))
	if err != nil {
		return err
	}
	resolved, err := f.abs(candidate)
	if err != nil {
		return err
	}

	prefix := root
	if prefix != "/" {
		prefix += "/"
	}
	if resolved != root && !strings.HasPrefix(resolved, prefix) {
		f.logger.Debug("rejected path outside write directory",
			zap.String("path", resolved),
			zap.String("root", root))
		return fserrors.Newf(fserrors.CodeWriteFail, "%s escapes write directory %s", candidate, root)
	}
	return nil
}

// abs cleans a slash-separated path and anchors relative paths at the
// backend's working directory.
func (f *FS) abs(p string) (string, error) {
	if path.IsAbs(p) {
		return path.Clean(p), nil
	}
	wd, err := f.backend.Getwd()
	if err != nil {
		return "", fserrors.Wrap(err, fserrors.CodeFailure, "working directory unavailable")
	}
	return path.Join(filepath.ToSlash(wd), p), nil
}

// ensureParentTree creates every missing ancestor of the path's parent
// directory before a write. Pre-existing directories are not an error at
// this stage; a genuinely failed creation surfaces later when the write
// itself cannot open the file.
func (f *FS) ensureParentTree(concrete string) {
	dir := path.Dir(concrete)
	if dir == "." || dir == "/" {
		return
	}
	_ = f.makeDirs(dir)
}

// makeDirs creates the directory chain root-to-leaf: it descends to the
// most distant missing ancestor by stripping one trailing segment at a
// time, creates on the way back up, and returns only the leaf's result.
// Intermediate failures (typically pre-existing directories) are ignored.
func (f *FS) makeDirs(dir string) error {
	if parent := path.Dir(dir); parent != dir && parent != "." {
		_ = f.makeDirs(parent)
	}
	return f.backend.Mkdir(dir)
}
