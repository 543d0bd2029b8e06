package utils

import "go.uber.org/zap"

// NewLogger returns a zap logger tuned for the given environment.
func NewLogger(env string) *zap.Logger {
	if env == "production" {
		logger, _ := zap.NewProduction()
		return logger
	}
	logger, _ := zap.NewDevelopment()
	return logger
}
