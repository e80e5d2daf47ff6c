// Package zaplog adapts go.uber.org/zap to the domain Logger interface.
package zaplog

import (
	"io"

	"github.com/ochairo/lintgate/internal/domain/interfaces"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger implements interfaces.Logger on top of a zap.Logger
type Logger struct {
	zl *zap.Logger
}

// New builds a console logger writing to w. Only errors are logged unless
// verbose is set, so a normal gate run adds nothing to the tool's output.
func New(w io.Writer, verbose bool) *Logger {
	level := zapcore.ErrorLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)

	return Wrap(zap.New(core).Named("lintgate"))
}

// Wrap adapts an existing zap logger
func Wrap(zl *zap.Logger) *Logger {
	return &Logger{zl: zl}
}

// Debug logs debug-level messages
func (l *Logger) Debug(msg string, fields ...interfaces.Field) {
	l.zl.Debug(msg, toZap(fields)...)
}

// Info logs informational messages
func (l *Logger) Info(msg string, fields ...interfaces.Field) {
	l.zl.Info(msg, toZap(fields)...)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, fields ...interfaces.Field) {
	l.zl.Warn(msg, toZap(fields)...)
}

// Error logs error messages
func (l *Logger) Error(msg string, fields ...interfaces.Field) {
	l.zl.Error(msg, toZap(fields)...)
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.zl.Sync()
}

func toZap(fields []interfaces.Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}
