// Package filesystem provides file access behind small interfaces so the
// template store, shape loading and query output work the same against the
// local disk, embedded resources and in-memory fixtures.
//
// Implementations:
//   - OSFileSystem: the local disk, rooted at a directory, with atomic writes
//   - EmbedFileSystem: read-only access to an embed.FS subtree
//   - MemoryFileSystem: in-memory implementation for testing
package filesystem
