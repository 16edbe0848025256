package logging

// NullLogger discards everything. render.Render uses it so the library entry
// point writes nothing to stderr; tests use it where log output is not under
// test.
type NullLogger struct{}

// NewNullLogger returns a logger that drops all messages.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...any) {}

func (l *NullLogger) Info(format string, args ...any) {}

func (l *NullLogger) Error(format string, args ...any) {}
