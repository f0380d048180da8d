// Package afero provides afero-backed storage backends for searchfs.
//
// Three backends are available:
//
//   - NewOS: disk-backed, wrapping afero's OsFs
//   - NewMemory: in-memory, wrapping afero's MemMapFs
//   - NewScoped: any afero.Fs re-rooted at a base path
//
// MemMapFs is looser than a POSIX filesystem: parent directories appear
// implicitly and Remove does not reject non-empty directories. The fstest
// conformance configs document which guarantees each backend keeps.
package afero
