package glamgen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	sql, err := render.Render(p)
//	if errors.Is(err, glamgen.ErrFormatting) {
//	    // A caller-supplied fragment produced invalid SQL
//	}
var (
	// ErrInvalidConfig indicates the tool settings or a shape file are invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidParameters indicates a shape could not be assembled into render parameters.
	ErrInvalidParameters = errors.New("invalid render parameters")

	// ErrTemplateNotFound indicates the requested template set or template does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrRender indicates template substitution failed.
	ErrRender = errors.New("template rendering failed")

	// ErrFormatting indicates the substituted text is not valid, formattable SQL.
	ErrFormatting = errors.New("formatting failed")

	// ErrStaleOutput indicates a checked-in query differs from what would be generated.
	ErrStaleOutput = errors.New("generated query is out of date")
)

// TemplateNotFoundError reports a template lookup that failed.
type TemplateNotFoundError struct {
	Set  string
	Name string
	Err  error
}

func (e *TemplateNotFoundError) Error() string {
	msg := fmt.Sprintf("template %q not found in set %q", e.Name, e.Set)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports ErrTemplateNotFound so callers can match on the sentinel.
func (e *TemplateNotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}

func (e *TemplateNotFoundError) Unwrap() error { return e.Err }

// FormattingError reports that substituted text could not be normalized.
// Line and Column are 1-based positions in the substituted (unformatted) text.
type FormattingError struct {
	Line   int
	Column int
	Msg    string
	Err    error
}

func (e *FormattingError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("formatting failed at line %d, column %d: %s", e.Line, e.Column, e.Msg)
	}
	return "formatting failed: " + e.Msg
}

// Is reports ErrFormatting so callers can match on the sentinel.
func (e *FormattingError) Is(target error) bool {
	return target == ErrFormatting
}

func (e *FormattingError) Unwrap() error { return e.Err }

// usageErrorPrefixes are the message prefixes cobra and pflag use for misuse of the command line.
var usageErrorPrefixes = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"missing required argument",
	"flag needs an argument",
	"if any flags in the group",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrInvalidParameters):
		return ExitConfigError
	case errors.Is(err, ErrTemplateNotFound):
		return ExitTemplateNotFound
	case errors.Is(err, ErrFormatting):
		return ExitFormattingFailed
	case errors.Is(err, ErrStaleOutput):
		return ExitStaleOutput
	}

	errStr := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
