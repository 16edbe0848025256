package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() any           { return nil }

type memoryFile struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements WritableFileSystem in memory. It is safe for
// concurrent use.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]*memoryFile // absolute path -> file or directory
	root  string
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}
	mfs.files[root] = newMemoryDir(root)
	return mfs
}

func newMemoryDir(p string) *memoryFile {
	return &memoryFile{info: &memoryFileInfo{
		name:    path.Base(p),
		mode:    0o755 | fs.ModeDir,
		modTime: time.Now(),
		isDir:   true,
	}}
}

func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if strings.HasPrefix(p, "/") {
		return path.Clean(p)
	}
	return path.Join(mfs.root, p)
}

func notExist(op, p string) error {
	return &fs.PathError{Op: op, Path: p, Err: fs.ErrNotExist}
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.put(mfs.resolve(filePath), []byte(content), modTime)
}

func (mfs *MemoryFileSystem) put(absPath string, content []byte, modTime time.Time) {
	mfs.files[absPath] = &memoryFile{
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0o644,
			modTime: modTime,
		},
	}
	for dir := path.Dir(absPath); ; dir = path.Dir(dir) {
		if _, exists := mfs.files[dir]; exists {
			break
		}
		mfs.files[dir] = newMemoryDir(dir)
		if dir == "/" || dir == "." {
			break
		}
	}
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, exists := mfs.files[mfs.resolve(filePath)]
	if !exists {
		return nil, notExist("open", filePath)
	}
	if file.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	out := make([]byte, len(file.content))
	copy(out, file.content)
	return out, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	absPath := mfs.resolve(dirPath)
	dir, exists := mfs.files[absPath]
	if !exists {
		return nil, notExist("readdir", dirPath)
	}
	if !dir.info.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var result []FileInfo
	for p, file := range mfs.files {
		if p != absPath && path.Dir(p) == absPath {
			result = append(result, file.info)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, exists := mfs.files[mfs.resolve(statPath)]
	if !exists {
		return nil, notExist("stat", statPath)
	}
	return file.info, nil
}

// WriteFile implements WritableFileSystem.WriteFile
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)
	if existing, ok := mfs.files[absPath]; ok && existing.info.isDir {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	content := make([]byte, len(data))
	copy(content, data)
	mfs.put(absPath, content, time.Now())
	return nil
}
