// Package output places generated queries in the dataset/table/query.sql
// layout and checks checked-in queries against freshly generated text.
package output

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vvka-141/glamgen/internal/checksum"
	"github.com/vvka-141/glamgen/internal/files/filesystem"
	"github.com/vvka-141/glamgen/pkg/glamgen"
)

// Status classifies a checked-in query relative to freshly generated text.
type Status int

const (
	StatusUpToDate Status = iota
	StatusMissing
	// StatusFormattingDrift means the tokens match but the layout differs.
	StatusFormattingDrift
	StatusContentDrift
)

func (s Status) String() string {
	switch s {
	case StatusUpToDate:
		return "up to date"
	case StatusMissing:
		return "missing"
	case StatusFormattingDrift:
		return "formatting drift"
	case StatusContentDrift:
		return "content drift"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Path returns <root>/<dataset>/<table>/query.sql.
func Path(root, dataset, table string) (string, error) {
	for _, seg := range []struct{ name, value string }{{"dataset", dataset}, {"table", table}} {
		if seg.value == "" || seg.value == "." || seg.value == ".." || strings.ContainsAny(seg.value, `/\`) {
			return "", fmt.Errorf("%w: %s %q is not a valid directory name", glamgen.ErrInvalidParameters, seg.name, seg.value)
		}
	}
	return filepath.Join(root, dataset, table, glamgen.QueryFileName), nil
}

// Writer persists and checks generated queries.
type Writer struct {
	fs   filesystem.WritableFileSystem
	calc checksum.Calculator
}

// NewWriter creates a Writer over fs.
func NewWriter(fs filesystem.WritableFileSystem) *Writer {
	return &Writer{fs: fs, calc: checksum.New()}
}

// Write stores text at path, creating directories as needed. The file is
// replaced atomically.
func (w *Writer) Write(path, text string) error {
	if err := w.fs.WriteFile(path, []byte(text)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Check compares the file at path with text.
func (w *Writer) Check(path, text string) (Status, error) {
	current, err := w.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return StatusMissing, nil
		}
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	want := []byte(text)
	switch {
	case w.calc.CalculateRaw(current) == w.calc.CalculateRaw(want):
		return StatusUpToDate, nil
	case w.calc.CalculateNormalized(current) == w.calc.CalculateNormalized(want):
		return StatusFormattingDrift, nil
	default:
		return StatusContentDrift, nil
	}
}
