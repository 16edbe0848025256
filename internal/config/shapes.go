package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/glamgen/internal/files/filesystem"
	"github.com/vvka-141/glamgen/internal/params"
	"github.com/vvka-141/glamgen/pkg/glamgen"
)

//go:embed shapes/*.yaml
var builtinShapes embed.FS

// shapeFile is the document layout of a shapes file.
type shapeFile struct {
	Shapes []params.Shape `yaml:"shapes"`
}

var shapeNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// ParseShapes decodes a shapes document. Unknown keys are rejected so a
// misspelled field does not silently fall back to an empty value.
func ParseShapes(data []byte, source string) ([]params.Shape, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc shapeFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: empty shapes file", glamgen.ErrInvalidConfig, source)
		}
		return nil, fmt.Errorf("%w: %s: %v", glamgen.ErrInvalidConfig, source, err)
	}
	if len(doc.Shapes) == 0 {
		return nil, fmt.Errorf("%w: %s: no shapes defined", glamgen.ErrInvalidConfig, source)
	}

	seen := make(map[string]bool, len(doc.Shapes))
	for i, s := range doc.Shapes {
		if !shapeNamePattern.MatchString(s.Name) {
			return nil, fmt.Errorf("%w: %s: shapes[%d]: invalid name %q (lowercase letters, digits, '_' and '-')",
				glamgen.ErrInvalidConfig, source, i, s.Name)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("%w: %s: duplicate shape %q", glamgen.ErrInvalidConfig, source, s.Name)
		}
		seen[s.Name] = true
	}
	return doc.Shapes, nil
}

// Catalog is the set of shapes available to a run, keyed by name.
type Catalog struct {
	shapes  map[string]params.Shape
	origins map[string]string
}

// CatalogEntry is one catalog entry with the file it came from.
type CatalogEntry struct {
	Shape  params.Shape
	Origin string
}

// LoadCatalog returns the built-in shapes, extended by the shapes in
// shapesFile when it is non-empty. A file shape replaces a built-in shape of
// the same name.
func LoadCatalog(fsys filesystem.FileSystemProvider, shapesFile string) (*Catalog, error) {
	c := &Catalog{shapes: map[string]params.Shape{}, origins: map[string]string{}}

	entries, err := builtinShapes.ReadDir("shapes")
	if err != nil {
		return nil, fmt.Errorf("failed to list built-in shapes: %w", err)
	}
	for _, e := range entries {
		name := path.Join("shapes", e.Name())
		data, err := builtinShapes.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read built-in shapes %s: %w", name, err)
		}
		if err := c.add(data, "builtin:"+e.Name()); err != nil {
			return nil, err
		}
	}

	if shapesFile != "" {
		data, err := fsys.ReadFile(shapesFile)
		if err != nil {
			return nil, fmt.Errorf("%w: shapes file: %v", glamgen.ErrInvalidConfig, err)
		}
		if err := c.add(data, shapesFile); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(data []byte, source string) error {
	shapes, err := ParseShapes(data, source)
	if err != nil {
		return err
	}
	for _, s := range shapes {
		c.shapes[s.Name] = s
		c.origins[s.Name] = source
	}
	return nil
}

// Lookup returns a copy of the named shape.
func (c *Catalog) Lookup(name string) (params.Shape, error) {
	s, ok := c.shapes[name]
	if !ok {
		return params.Shape{}, fmt.Errorf("%w: unknown shape %q (available: %s)",
			glamgen.ErrInvalidParameters, name, strings.Join(c.Names(), ", "))
	}
	return s.Clone(), nil
}

// Origin reports where the named shape was defined.
func (c *Catalog) Origin(name string) string {
	return c.origins[name]
}

// Names returns the shape names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.shapes))
	for n := range c.shapes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Entries returns every shape with its origin, sorted by name.
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, 0, len(c.shapes))
	for _, n := range c.Names() {
		out = append(out, CatalogEntry{Shape: c.shapes[n].Clone(), Origin: c.origins[n]})
	}
	return out
}

// MarshalShape encodes a shape as a single-entry shapes document.
func MarshalShape(s params.Shape) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(shapeFile{Shapes: []params.Shape{s}}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
