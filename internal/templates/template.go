package templates

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/vvka-141/glamgen/pkg/glamgen"
)

var funcs = template.FuncMap{
	"join": join,
}

// join concatenates list elements with sep. It accepts the []string list
// bindings and also generic []any values.
func join(sep string, list any) (string, error) {
	switch v := list.(type) {
	case []string:
		return strings.Join(v, sep), nil
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, sep), nil
	}
	return "", fmt.Errorf("join: unsupported list type %T", list)
}

type sqlTemplate struct {
	ref  Ref
	tmpl *template.Template
}

func (t *sqlTemplate) Name() string {
	return t.ref.String()
}

// Render substitutes bindings into the template. A reference to a binding that
// is not present fails instead of rendering "<no value>".
func (t *sqlTemplate) Render(bindings map[string]any) (string, error) {
	var b strings.Builder
	if err := t.tmpl.Execute(&b, bindings); err != nil {
		return "", fmt.Errorf("%w: %s: %v", glamgen.ErrRender, t.ref, err)
	}
	return b.String(), nil
}
