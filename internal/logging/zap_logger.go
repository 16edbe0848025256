package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger writes JSON log records through zap.
type ZapLogger struct {
	log *zap.SugaredLogger
}

// NewZapLogger creates a JSON logger writing to stderr. Verbose messages are
// logged at debug level and only emitted when verbose is true.
func NewZapLogger(verbose bool) *ZapLogger {
	return NewZapLoggerTo(os.Stderr, verbose)
}

// NewZapLoggerTo creates a JSON logger writing to w.
func NewZapLoggerTo(w io.Writer, verbose bool) *ZapLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.Lock(zapcore.AddSync(w)), level)

	return &ZapLogger{log: zap.New(core).Named("glamgen").Sugar()}
}

func (l *ZapLogger) Verbose(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

func (l *ZapLogger) Info(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

func (l *ZapLogger) Error(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

// Sync flushes buffered records.
func (l *ZapLogger) Sync() error {
	return l.log.Sync()
}
