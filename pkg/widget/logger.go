package widget

import "log/slog"

// Logger is the logging seam injected into the registry and factory. The
// framework only emits advisory messages (registration overwrites, render
// degradation); nothing is fatal. Arguments follow the slog key/value
// convention.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NopLogger discards everything. Useful in tests.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}

// DefaultLogger returns the slog-backed logger used when callers do not
// inject their own.
func DefaultLogger() Logger {
	return slog.Default()
}
