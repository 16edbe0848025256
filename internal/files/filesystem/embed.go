package filesystem

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// EmbedFileSystem implements FileSystemProvider for embed.FS
type EmbedFileSystem struct {
	embedFS embed.FS
	root    string // root path within the embed.FS (always uses forward slashes)
}

// NewEmbedFileSystem creates a new filesystem provider wrapping an embed.FS.
// The root parameter specifies the subdirectory within the embed.FS to treat as the root.
func NewEmbedFileSystem(embedFS embed.FS, root string) *EmbedFileSystem {
	return &EmbedFileSystem{
		embedFS: embedFS,
		root:    path.Clean(root),
	}
}

// resolve maps a caller path to a path inside the embed.FS. embed.FS paths
// are always unrooted and slash-separated.
func (efs *EmbedFileSystem) resolve(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	if p == "" || p == "." {
		return efs.root
	}
	if strings.HasPrefix(p, "/") {
		return path.Clean(strings.TrimPrefix(p, "/"))
	}
	return path.Join(efs.root, p)
}

// ReadFile implements FileSystemProvider.ReadFile
func (efs *EmbedFileSystem) ReadFile(filePath string) ([]byte, error) {
	content, err := efs.embedFS.ReadFile(efs.resolve(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return content, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (efs *EmbedFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	entries, err := efs.embedFS.ReadDir(efs.resolve(dirPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	result := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to get file info for %s: %w", entry.Name(), err)
		}
		result = append(result, info)
	}
	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (efs *EmbedFileSystem) Stat(statPath string) (FileInfo, error) {
	info, err := fs.Stat(efs.embedFS, efs.resolve(statPath))
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %s: %w", statPath, err)
	}
	return info, nil
}
