// Package core provides the foundational interfaces and types for a
// search-path filesystem resolver with pluggable storage backends.
//
// This package defines the contract that storage backends must implement,
// enabling the resolver to work against local disks, in-memory filesystems,
// or any other store that can answer stat/open/create/mkdir/remove calls.
//
// # Design Philosophy
//
// The core package follows these principles:
//
//   - Zero dependencies: Only uses Go standard library
//   - Small surface: One backend interface, a handful of value types
//   - Stdlib compatibility: Stat results are plain fs.FileInfo
//
// # Backend Contract
//
// A Backend is a thin primitive: it interprets concrete, slash-separated
// paths and performs exactly one OS-level call per method. All policy
// (search ordering, write sandboxing, ancestor creation) lives above it
// in the searchfs package.
//
// # Provider Implementations
//
// This package contains only interface definitions. Concrete implementations
// are provided by separate provider packages:
//
//   - github.com/jmgilman/searchfs/billy - go-billy-backed backends
//   - github.com/jmgilman/searchfs/afero - afero-backed backends
package core
