package app

import (
	"github.com/guttosm/rocket-sim/config"
	"github.com/guttosm/rocket-sim/internal/logger"
)

// InitializeLogger initializes the JSON logger on stderr from configuration.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty, nil)
}
