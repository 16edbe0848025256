package render

import (
	"fmt"

	"github.com/vvka-141/glamgen/internal/logging"
	"github.com/vvka-141/glamgen/internal/params"
	"github.com/vvka-141/glamgen/internal/sqlfmt"
	"github.com/vvka-141/glamgen/internal/templates"
	"github.com/vvka-141/glamgen/pkg/glamgen"
)

// Pipeline renders parameters through a template store and a formatter.
// It holds no mutable state and is safe for concurrent use.
type Pipeline struct {
	store     glamgen.TemplateStore
	formatter glamgen.Formatter
	logger    glamgen.Logger
}

// NewPipeline creates a Pipeline. It panics on nil dependencies.
func NewPipeline(store glamgen.TemplateStore, formatter glamgen.Formatter, logger glamgen.Logger) *Pipeline {
	if store == nil {
		panic("store cannot be nil")
	}
	if formatter == nil {
		panic("formatter cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Pipeline{store: store, formatter: formatter, logger: logger}
}

// Render produces the formatted statement for p.
//
// Errors:
//   - *glamgen.TemplateNotFoundError when the template set or name is unknown
//   - glamgen.ErrRender when substitution fails
//   - *glamgen.FormattingError when the substituted text is not valid SQL
func (pl *Pipeline) Render(p params.RenderParameters) (string, error) {
	ref := p.Template()
	pl.logger.Verbose("Resolving template %s", ref)

	tmpl, err := pl.store.Resolve(ref.Set, ref.Name)
	if err != nil {
		return "", err
	}

	raw, err := tmpl.Render(p.Bindings())
	if err != nil {
		return "", err
	}
	pl.logger.Verbose("Substituted %d bytes into %s", len(raw), tmpl.Name())

	out, err := pl.formatter.Reformat(raw)
	if err != nil {
		return "", fmt.Errorf("template %s: %w", tmpl.Name(), err)
	}
	pl.logger.Verbose("Formatted %s: %d bytes", tmpl.Name(), len(out))
	return out, nil
}

// Render renders p with the built-in templates and the BigQuery formatter.
func Render(p params.RenderParameters) (string, error) {
	return NewPipeline(templates.NewEmbeddedStore(), sqlfmt.New(), logging.NewNullLogger()).Render(p)
}
