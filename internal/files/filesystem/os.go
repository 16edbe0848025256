package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// OSFileSystem implements WritableFileSystem on the local disk.
type OSFileSystem struct {
	root string
}

// NewOSFileSystem creates a provider rooted at root. An empty root means the
// working directory.
func NewOSFileSystem(root string) *OSFileSystem {
	if root == "" {
		root = "."
	}
	return &OSFileSystem{root: filepath.Clean(root)}
}

// Root returns the directory relative paths are resolved against.
func (p *OSFileSystem) Root() string { return p.root }

func (p *OSFileSystem) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.root, filepath.FromSlash(path))
}

func (p *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(p.resolve(path))
}

func (p *OSFileSystem) ReadDir(path string) ([]FileInfo, error) {
	entries, err := os.ReadDir(p.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	result := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to get file info for %s: %w", entry.Name(), err)
		}
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })

	return result, nil
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(p.resolve(path))
}

// WriteFile writes data to a temporary file next to path and renames it into
// place, so an interrupted write leaves the previous content intact.
func (p *OSFileSystem) WriteFile(path string, data []byte) error {
	target := p.resolve(path)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", target, err)
	}
	return nil
}
