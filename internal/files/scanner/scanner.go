package scanner

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/glamgen/internal/checksum"
	"github.com/vvka-141/glamgen/internal/files/filesystem"
)

// File is a SQL file found by a scan.
type File struct {
	// Path is the file's path as given or discovered, slash-separated.
	Path        string
	Content     []byte
	Checksum    string
	ChecksumRaw string
}

// Scanner discovers SQL files. It is safe for concurrent use as long as the
// calculator and filesystem are.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a scanner over fsProvider.
// Panics if calculator or fsProvider is nil.
func NewScanner(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{calculator: calculator, fsProvider: fsProvider}
}

// Scan returns the files for each target in order. Files found under a
// directory target are sorted by path; a file found twice is returned once.
func (s *Scanner) Scan(targets ...string) ([]File, error) {
	var files []File
	seen := make(map[string]bool)

	for _, target := range targets {
		info, err := s.fsProvider.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", target, err)
		}

		var paths []string
		if info.IsDir() {
			if paths, err = s.walk(filepath.ToSlash(target)); err != nil {
				return nil, err
			}
		} else {
			paths = []string{filepath.ToSlash(target)}
		}

		for _, p := range paths {
			if seen[p] {
				continue
			}
			seen[p] = true

			f, err := s.Load(p)
			if err != nil {
				return nil, err
			}
			files = append(files, f)
		}
	}
	return files, nil
}

// Load reads one file and computes its checksums.
func (s *Scanner) Load(p string) (File, error) {
	content, err := s.fsProvider.ReadFile(p)
	if err != nil {
		return File{}, fmt.Errorf("failed to read %s: %w", p, err)
	}
	return File{
		Path:        p,
		Content:     content,
		Checksum:    s.calculator.CalculateNormalized(content),
		ChecksumRaw: s.calculator.CalculateRaw(content),
	}, nil
}

func (s *Scanner) walk(dir string) ([]string, error) {
	entries, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		name := e.Name()
		p := path.Join(dir, name)
		switch {
		case e.IsDir():
			if strings.HasPrefix(name, ".") {
				continue
			}
			sub, err := s.walk(p)
			if err != nil {
				return nil, err
			}
			paths = append(paths, sub...)
		case isSQLFile(name):
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func isSQLFile(name string) bool {
	return strings.EqualFold(path.Ext(name), ".sql")
}
