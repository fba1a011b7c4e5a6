package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"pairctl/internal/config"
	"pairctl/pkg/logging"
)

// Application is the main application structure that bootstraps and runs pairctl
type Application struct {
	config *Config
	stdout io.Writer
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	logging.InitForCLI(logLevel(cfg), os.Stderr)

	var pairctlCfg config.PairctlConfig
	var err error

	if cfg.ConfigPath != "" {
		pairctlCfg, err = config.LoadConfigFrom(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load pairctl configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load pairctl configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		pairctlCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load pairctl configuration")
			return nil, fmt.Errorf("failed to load pairctl configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	cfg.PairctlConfig = &pairctlCfg

	return &Application{
		config: cfg,
		stdout: os.Stdout,
	}, nil
}

// Run starts an interactive session and writes the object if the user asks for it.
func (a *Application) Run(ctx context.Context) error {
	return a.runTUIMode(ctx)
}

func logLevel(cfg *Config) logging.LogLevel {
	if cfg.Debug {
		return logging.LevelDebug
	}
	return logging.LevelWarn
}
