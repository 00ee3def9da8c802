// Package log wraps go.uber.org/zap behind a small structured logger
// used by the domain-stack packages. The core engine packages
// (position, ast, formula, cell, graph) never log: they are pure
// functions over the sheet, and a rejected edit is already reported to
// its caller as an error value.
package log

import "go.uber.org/zap"

// Logger is a thin façade over *zap.Logger so callers write
// log.Info("msg", log.String("k", v)) instead of importing zap
// directly everywhere.
type Logger struct {
	z *zap.Logger
}

// Field is re-exported so call sites don't import zap themselves.
type Field = zap.Field

var (
	String = zap.String
	Int    = zap.Int
	Error  = zap.Error
	Bool   = zap.Bool
)

// New builds a production logger (JSON, Info level and above) unless
// debug is set, in which case it builds a development logger
// (console-friendly, Debug level and above).
func New(debug bool) (*Logger, error) {
	var z *zap.Logger
	var err error
	if debug {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return &Logger{z: z}, nil
}

// Noop returns a logger that discards everything, for tests and
// short-lived CLI invocations that don't want production JSON on stderr.
func Noop() *Logger {
	return &Logger{z: zap.NewNop()}
}

func (l *Logger) Debug(msg string, fields ...Field) { l.z.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.z.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.z.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.z.Error(msg, fields...) }

// Sync flushes any buffered log entries; call before process exit.
func (l *Logger) Sync() error { return l.z.Sync() }

// With returns a child logger with the given fields attached to every entry.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{z: l.z.With(fields...)}
}
