// Package searchfs provides sandboxed filesystem access through path
// templates: reads resolve against an ordered search path of candidate
// locations, while writes, appends, deletions, and directory creation are
// confined to a single write directory.
//
// # Templates
//
// A template is a path pattern containing the marker "?", which is replaced
// by a logical name to produce a concrete path. The search path is a list of
// templates separated by ";". The write directory is a single template.
//
//	fs, err := searchfs.New(billy.NewLocal(),
//	    searchfs.WithSearchPath("./?;/usr/local/share/app/?"),
//	    searchfs.WithWriteDir("./save/?"),
//	)
//
// # Reading
//
// Read-side operations (Exists, GetInfo, Read) probe the search path in
// order and use the first candidate that exists. Earlier templates win ties.
//
//	data, err := fs.Read("config.json")
//
// # Writing
//
// Mutating operations (Write, Append, Mkdir, Delete) resolve against the
// write directory only. Resolved paths are checked to stay inside it, and
// missing ancestor directories are created automatically before a write.
//
//	err := fs.Write("save/slot1.dat", payload)
//
// # Backends
//
// All filesystem calls go through a core.Backend, so the same resolver works
// against local disks (billy.NewLocal, afero.NewOS) and in-memory stores
// (billy.NewMemory, afero.NewMemory).
package searchfs
