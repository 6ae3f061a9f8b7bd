package fileconv

import "log/slog"

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger the engine logs conversions to.
// The default discards all log output.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}
