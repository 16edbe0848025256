package glamgen

// Template is a named, parameterized text document with substitution points bound by name.
type Template interface {
	// Name returns the template's reference in "<set>/<name>" form.
	Name() string

	// Render substitutes bindings into the template and returns the raw text.
	Render(bindings map[string]any) (string, error)
}

// TemplateStore resolves templates by template set and template name.
// Resolve returns an error matching ErrTemplateNotFound when either is unknown.
type TemplateStore interface {
	Resolve(set, name string) (Template, error)
}

// Formatter normalizes SQL text into its canonical form.
// Reformat must fail with an error matching ErrFormatting when the text is not valid SQL,
// and must never return partially formatted text alongside an error.
type Formatter interface {
	Reformat(text string) (string, error)
}
