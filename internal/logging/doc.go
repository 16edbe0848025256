// Package logging provides implementations of the glamgen.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: plain lines on stderr, [VERBOSE] and [ERROR] prefixes
//   - ZapLogger: JSON records on stderr via go.uber.org/zap
//   - NullLogger: discards all messages (useful for testing)
//
// None of them write to stdout, which carries generated SQL. All are safe for
// concurrent use by multiple goroutines.
package logging
