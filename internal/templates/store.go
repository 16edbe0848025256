package templates

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"text/template"

	"github.com/vvka-141/glamgen/internal/files/filesystem"
	"github.com/vvka-141/glamgen/pkg/glamgen"
)

//go:embed sql
var sqlFS embed.FS

// Ref names a template within a template set.
type Ref struct {
	Set  string
	Name string
}

func (r Ref) String() string {
	return r.Set + "/" + r.Name
}

// ParseRef splits a "<set>/<name>" reference.
func ParseRef(s string) (Ref, error) {
	set, name, ok := strings.Cut(s, "/")
	if !ok || !validSegment(set) || !validSegment(name) {
		return Ref{}, fmt.Errorf("%w: template reference %q must have the form <set>/<name>", glamgen.ErrInvalidParameters, s)
	}
	return Ref{Set: set, Name: name}, nil
}

func validSegment(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`)
}

// Store resolves templates from a directory tree where each top-level
// directory is a template set and each file in it is a template.
type Store struct {
	fs filesystem.FileSystemProvider
}

// NewStore creates a store over any filesystem provider.
func NewStore(fs filesystem.FileSystemProvider) *Store {
	return &Store{fs: fs}
}

// NewEmbeddedStore returns the store of templates compiled into the binary.
func NewEmbeddedStore() *Store {
	return NewStore(filesystem.NewEmbedFileSystem(sqlFS, "sql"))
}

// Resolve reads and parses the template <set>/<name>. The file is read in
// full and parsed on every call; nothing is cached.
func (s *Store) Resolve(set, name string) (glamgen.Template, error) {
	if !validSegment(set) || !validSegment(name) {
		return nil, &glamgen.TemplateNotFoundError{Set: set, Name: name, Err: fmt.Errorf("invalid template reference")}
	}

	if info, err := s.fs.Stat(set); err != nil || !info.IsDir() {
		return nil, &glamgen.TemplateNotFoundError{Set: set, Name: name, Err: fmt.Errorf("no template set %q", set)}
	}

	content, err := s.fs.ReadFile(path.Join(set, name))
	if err != nil {
		return nil, &glamgen.TemplateNotFoundError{Set: set, Name: name, Err: err}
	}

	ref := Ref{Set: set, Name: name}
	tmpl, err := template.New(ref.String()).
		Option("missingkey=error").
		Funcs(funcs).
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", glamgen.ErrRender, ref, err)
	}

	return &sqlTemplate{ref: ref, tmpl: tmpl}, nil
}

// List returns every template in the store, sorted by set and name.
func (s *Store) List() ([]Ref, error) {
	sets, err := s.fs.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to list template sets: %w", err)
	}

	var refs []Ref
	for _, set := range sets {
		if !set.IsDir() {
			continue
		}
		entries, err := s.fs.ReadDir(set.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to list templates in %s: %w", set.Name(), err)
		}
		for _, e := range entries {
			if !e.IsDir() {
				refs = append(refs, Ref{Set: set.Name(), Name: e.Name()})
			}
		}
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Set != refs[j].Set {
			return refs[i].Set < refs[j].Set
		}
		return refs[i].Name < refs[j].Name
	})
	return refs, nil
}

var _ glamgen.TemplateStore = (*Store)(nil)
