package app

import (
	"pairctl/internal/config"
	"pairctl/internal/pairs"
)

// DefaultDebugLogPath is where --debug writes its log while the TUI owns the terminal.
const DefaultDebugLogPath = "pairctl-debug.log"

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug        bool
	DebugLogPath string

	// Explicit config file; empty means layered loading
	ConfigPath string

	// Output settings. Nil flags leave the config file value in place.
	OutputPath string
	Pretty     *bool
	Indent     *string

	// Loaded configuration
	PairctlConfig *config.PairctlConfig
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, debugLogPath, configPath, outputPath string) *Config {
	if debugLogPath == "" {
		debugLogPath = DefaultDebugLogPath
	}
	return &Config{
		Debug:        debug,
		DebugLogPath: debugLogPath,
		ConfigPath:   configPath,
		OutputPath:   outputPath,
	}
}

// EncodeOptions resolves the output layout from flags over the loaded config.
// An explicit indent implies pretty output.
func (c *Config) EncodeOptions() pairs.EncodeOptions {
	settings := config.GetDefaultConfig().Output
	if c.PairctlConfig != nil {
		settings = c.PairctlConfig.Output
	}

	pretty := settings.Pretty
	indent := settings.Indent
	if c.Pretty != nil {
		pretty = *c.Pretty
	}
	if c.Indent != nil {
		indent = *c.Indent
		if c.Pretty == nil {
			pretty = indent != ""
		}
	}

	if !pretty {
		return pairs.EncodeOptions{}
	}
	if indent == "" {
		indent = config.DefaultIndent
	}
	return pairs.EncodeOptions{Indent: indent}
}
