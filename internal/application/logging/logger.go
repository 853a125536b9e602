// Package logging carries the session logger through contexts so domain code
// never needs a concrete logging backend.
package logging

import "context"

// SimLogger is the logging port of the simulation. Levels are DEBUG, INFO,
// WARNING and ERROR.
type SimLogger interface {
	Log(level, message string, metadata map[string]interface{})
}

type loggerKey struct{}

// WithLogger returns a copy of ctx carrying logger
func WithLogger(ctx context.Context, logger SimLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// LoggerFromContext returns the context logger, or a logger that drops everything
func LoggerFromContext(ctx context.Context) SimLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(SimLogger); ok && logger != nil {
			return logger
		}
	}
	return discard{}
}

type discard struct{}

func (discard) Log(string, string, map[string]interface{}) {}
