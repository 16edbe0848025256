package glamgen_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/glamgen/pkg/glamgen"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, glamgen.ExitSuccess},
		{"general error", errors.New("something went wrong"), glamgen.ExitGeneralError},
		{"unknown flag", errors.New("unknown flag: --foo"), glamgen.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), glamgen.ExitUsageError},
		{"invalid config", fmt.Errorf("load: %w", glamgen.ErrInvalidConfig), glamgen.ExitConfigError},
		{"invalid params", fmt.Errorf("assemble: %w", glamgen.ErrInvalidParameters), glamgen.ExitConfigError},
		{"template not found", &glamgen.TemplateNotFoundError{Set: "glam", Name: "x.sql"}, glamgen.ExitTemplateNotFound},
		{"formatting", fmt.Errorf("render: %w", &glamgen.FormattingError{Line: 1, Column: 2, Msg: "bad"}), glamgen.ExitFormattingFailed},
		{"stale", glamgen.ErrStaleOutput, glamgen.ExitStaleOutput},
		{"render", glamgen.ErrRender, glamgen.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, glamgen.ExitCodeForError(tt.err))
		})
	}
}

func TestTemplateNotFoundError(t *testing.T) {
	cause := errors.New("file does not exist")
	err := &glamgen.TemplateNotFoundError{Set: "glam", Name: "missing.sql", Err: cause}

	assert.True(t, errors.Is(err, glamgen.ErrTemplateNotFound))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, `template "missing.sql" not found in set "glam": file does not exist`, err.Error())
}

func TestFormattingError(t *testing.T) {
	err := &glamgen.FormattingError{Line: 3, Column: 7, Msg: "unbalanced parenthesis"}

	assert.True(t, errors.Is(err, glamgen.ErrFormatting))
	assert.False(t, errors.Is(err, glamgen.ErrTemplateNotFound))
	assert.Equal(t, "formatting failed at line 3, column 7: unbalanced parenthesis", err.Error())

	var target *glamgen.FormattingError
	wrapped := fmt.Errorf("render shape telemetry: %w", err)
	if assert.True(t, errors.As(wrapped, &target)) {
		assert.Equal(t, 3, target.Line)
	}
}
