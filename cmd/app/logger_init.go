package main

import (
	"recipebook/internal/config"
	"recipebook/internal/logger"
)

// Service identity reported in every log line
const (
	serviceName    = "recipebook"
	serviceVersion = "1.0.0"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Determine if we should add source info (only in dev)
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		serviceName,
		serviceVersion,
		cfg.Environment,
		addSource,
	)

	logger.Init(loggerConfig)
}
