package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// FileSystemProvider reads files and directory listings below a root.
// Relative paths are resolved against the root; absolute paths are used as-is.
// Missing paths produce errors matching fs.ErrNotExist.
type FileSystemProvider interface {
	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// ReadDir returns the entries of a directory, sorted by name.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}

// WritableFileSystem is a provider that can also persist files.
type WritableFileSystem interface {
	FileSystemProvider

	// WriteFile replaces the file at path with data, creating parent
	// directories as needed. Readers never observe a partially written file.
	WriteFile(path string, data []byte) error
}
