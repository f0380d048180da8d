// Package billy provides go-billy-backed storage backends for searchfs.
//
// Two backends are available:
//
//   - NewLocal: disk-backed, wrapping billy's osfs rooted at "/"
//   - NewMemory: in-memory, wrapping billy's memfs
//
// Both expose the underlying billy.Filesystem via Unwrap for integration
// with go-git and other billy consumers.
package billy
