package sqlfmt

import (
	"errors"
	"fmt"

	"github.com/vvka-141/glamgen/pkg/glamgen"
)

// SyntaxError reports text the formatter refused. Line and Column are 1-based.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

func errorAt(line, col int, format string, args ...any) error {
	return &SyntaxError{Line: line, Column: col, Msg: fmt.Sprintf(format, args...)}
}

// Format lexes, validates and lays out sql in canonical form.
// On failure it returns a *SyntaxError and no text.
func Format(sql string) (string, error) {
	toks, err := Lex(sql)
	if err != nil {
		return "", err
	}
	if err := validate(toks); err != nil {
		return "", err
	}
	return layout(toks), nil
}

// Formatter implements glamgen.Formatter on top of Format.
type Formatter struct{}

// New returns the default BigQuery formatter.
func New() *Formatter {
	return &Formatter{}
}

// Reformat returns the canonical form of text. Syntax errors are reported as
// *glamgen.FormattingError.
func (f *Formatter) Reformat(text string) (string, error) {
	out, err := Format(text)
	if err == nil {
		return out, nil
	}
	var se *SyntaxError
	if errors.As(err, &se) {
		return "", &glamgen.FormattingError{Line: se.Line, Column: se.Column, Msg: se.Msg, Err: err}
	}
	return "", &glamgen.FormattingError{Msg: err.Error(), Err: err}
}

var _ glamgen.Formatter = (*Formatter)(nil)
