package utils

import "go.uber.org/zap"

// NewLogger returns a zap logger: the development config (human-readable,
// debug level) when debug is set, the production config (JSON, info level)
// otherwise.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
