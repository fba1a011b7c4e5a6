package app

import (
	"testing"

	"pairctl/internal/config"
	"pairctl/internal/pairs"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }

func withOutput(pretty bool, indent string) *config.PairctlConfig {
	c := config.GetDefaultConfig()
	c.Output = config.OutputSettings{Pretty: pretty, Indent: indent}
	return &c
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true, "", "custom.yaml", "out.json")

	assert.True(t, cfg.Debug)
	assert.Equal(t, DefaultDebugLogPath, cfg.DebugLogPath)
	assert.Equal(t, "custom.yaml", cfg.ConfigPath)
	assert.Equal(t, "out.json", cfg.OutputPath)
	assert.Nil(t, cfg.PairctlConfig, "configuration is loaded by NewApplication")
}

func TestConfig_EncodeOptions(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want pairs.EncodeOptions
	}{
		{
			name: "no config loaded is compact",
			cfg:  Config{},
			want: pairs.EncodeOptions{},
		},
		{
			name: "config pretty uses config indent",
			cfg:  Config{PairctlConfig: withOutput(true, "\t")},
			want: pairs.EncodeOptions{Indent: "\t"},
		},
		{
			name: "config pretty without indent uses default",
			cfg:  Config{PairctlConfig: withOutput(true, "")},
			want: pairs.EncodeOptions{Indent: config.DefaultIndent},
		},
		{
			name: "--pretty over compact config",
			cfg:  Config{Pretty: boolPtr(true), PairctlConfig: withOutput(false, "  ")},
			want: pairs.EncodeOptions{Indent: "  "},
		},
		{
			name: "--pretty=false over pretty config",
			cfg:  Config{Pretty: boolPtr(false), PairctlConfig: withOutput(true, "  ")},
			want: pairs.EncodeOptions{},
		},
		{
			name: "--indent implies pretty",
			cfg:  Config{Indent: strPtr("    "), PairctlConfig: withOutput(false, "  ")},
			want: pairs.EncodeOptions{Indent: "    "},
		},
		{
			name: "--indent with --pretty=false stays compact",
			cfg:  Config{Indent: strPtr("    "), Pretty: boolPtr(false)},
			want: pairs.EncodeOptions{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.EncodeOptions())
		})
	}
}
