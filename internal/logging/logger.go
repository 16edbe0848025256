package logging

import (
	"fmt"
	"io"

	"github.com/vvka-141/glamgen/pkg/glamgen"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New returns the logger for a --log-format value, writing to w.
func New(w io.Writer, format string, verbose bool) (glamgen.Logger, error) {
	switch format {
	case "", FormatConsole:
		return NewConsoleLoggerTo(w, verbose), nil
	case FormatJSON:
		return NewZapLoggerTo(w, verbose), nil
	}
	return nil, fmt.Errorf("%w: unknown log format %q (want console or json)", glamgen.ErrInvalidConfig, format)
}

var (
	_ glamgen.Logger = (*ConsoleLogger)(nil)
	_ glamgen.Logger = (*NullLogger)(nil)
	_ glamgen.Logger = (*ZapLogger)(nil)
)
