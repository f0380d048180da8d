package core

import (
	"io/fs"
	"time"
)

// FileKind classifies the entry a stat probe found.
type FileKind int

const (
	// KindNone indicates no entry, or an entry of an unclassified kind.
	KindNone FileKind = iota
	// KindRegular indicates a regular file.
	KindRegular
	// KindDirectory indicates a directory.
	KindDirectory
	// KindSymlink indicates a symbolic link.
	KindSymlink
)

// String returns a string representation of the FileKind.
func (k FileKind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "none"
	}
}

// FileInfo is the metadata produced by a successful probe.
// It is built fresh from a live stat on every call and never cached.
type FileInfo struct {
	Kind    FileKind
	Size    int64
	ModTime time.Time
}

// InfoFromStat converts a stdlib stat result into a FileInfo.
func InfoFromStat(fi fs.FileInfo) FileInfo {
	info := FileInfo{
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
	}
	switch mode := fi.Mode(); {
	case mode.IsRegular():
		info.Kind = KindRegular
	case mode.IsDir():
		info.Kind = KindDirectory
	case mode&fs.ModeSymlink != 0:
		info.Kind = KindSymlink
	default:
		info.Kind = KindNone
	}
	return info
}
