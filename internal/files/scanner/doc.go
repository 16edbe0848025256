// Package scanner discovers SQL files for glamgen fmt.
//
// A scan target is either a single file, taken as is, or a directory, which
// is walked recursively for files with a .sql extension. Hidden directories
// are skipped. Every file comes back with its content and two checksums: the
// raw one identifies the exact bytes, the normalized one identifies the token
// stream regardless of layout, comments and case.
//
// The scanner works through filesystem.FileSystemProvider, so tests run it
// against an in-memory filesystem.
package scanner
