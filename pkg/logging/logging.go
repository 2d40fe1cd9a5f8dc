// Package logging provides structured logging for the binder system.
// Components log through the Logger interface; the default implementation
// is backed by zap, and a no-op implementation exists for tests and for
// callers that want silence.
package logging

// Logger is the logging interface used across the system. Fields carry
// structured context alongside the message.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, err error, fields map[string]any)
}
