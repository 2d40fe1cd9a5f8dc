package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLogger implements Logger on top of a zap.Logger.
type zapLogger struct {
	logger    *zap.Logger
	component string
}

// New creates a Logger for the given component at info level.
func New(component string) Logger {
	return NewAtLevel(component, "info")
}

// NewAtLevel creates a Logger for the given component at the named level
// (debug, info, warn, error). Unknown level names fall back to info.
func NewAtLevel(component, level string) Logger {
	config := zap.NewProductionConfig()

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := config.Build()
	if err != nil {
		// Fall back to a silent logger if configuration fails.
		logger = zap.NewNop()
	}

	return &zapLogger{
		logger:    logger,
		component: component,
	}
}

func (z *zapLogger) Debug(msg string, fields map[string]any) {
	z.logger.Debug(z.prefixed(msg), buildZapFields(fields)...)
}

func (z *zapLogger) Info(msg string, fields map[string]any) {
	z.logger.Info(z.prefixed(msg), buildZapFields(fields)...)
}

func (z *zapLogger) Warn(msg string, fields map[string]any) {
	z.logger.Warn(z.prefixed(msg), buildZapFields(fields)...)
}

func (z *zapLogger) Error(msg string, err error, fields map[string]any) {
	zapFields := buildZapFields(fields)
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}
	z.logger.Error(z.prefixed(msg), zapFields...)
}

func (z *zapLogger) prefixed(msg string) string {
	return fmt.Sprintf("[%s] %s", z.component, msg)
}

// buildZapFields converts a field map to zap fields.
func buildZapFields(fields map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}
