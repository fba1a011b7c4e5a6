package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"pairctl/internal/config"
)

func withConfigFlag(t *testing.T, path string) {
	t.Helper()
	original := flags.configPath
	flags.configPath = path
	t.Cleanup(func() { flags.configPath = original })
}

func TestConfigCommand_PrintsEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairctl.yaml")
	if err := os.WriteFile(path, []byte("output:\n  pretty: true\nkeys:\n  quit: [\"ctrl+q\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	withConfigFlag(t, path)

	configCmd := newConfigCmd()
	var buf bytes.Buffer
	configCmd.SetOut(&buf)
	configCmd.SetArgs([]string{})

	if err := configCmd.Execute(); err != nil {
		t.Fatalf("Error executing config command: %v", err)
	}

	var got config.PairctlConfig
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("config output is not YAML: %v\n%s", err, buf.String())
	}
	if !got.Output.Pretty {
		t.Error("Expected pretty output from the config file")
	}
	if len(got.Keys.Quit) != 1 || got.Keys.Quit[0] != "ctrl+q" {
		t.Errorf("Expected quit binding ctrl+q, got %v", got.Keys.Quit)
	}
	if len(got.Keys.NewPair) == 0 {
		t.Error("Expected defaults for bindings the file does not mention")
	}
}

func TestConfigCommand_InvalidFile(t *testing.T) {
	withConfigFlag(t, filepath.Join(t.TempDir(), "missing.yaml"))

	configCmd := newConfigCmd()
	configCmd.SetOut(&bytes.Buffer{})
	configCmd.SetErr(&bytes.Buffer{})
	configCmd.SetArgs([]string{})

	err := configCmd.Execute()
	if err == nil {
		t.Fatal("Expected an error for a missing config file")
	}
	if !strings.Contains(err.Error(), "failed to load pairctl configuration") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestConfigPathCommand(t *testing.T) {
	configCmd := newConfigCmd()
	var buf bytes.Buffer
	configCmd.SetOut(&buf)
	configCmd.SetArgs([]string{"path"})

	if err := configCmd.Execute(); err != nil {
		t.Skipf("user config path unavailable: %v", err)
	}

	if !strings.HasSuffix(strings.TrimSpace(buf.String()), filepath.Join("pairctl", "config.yaml")) {
		t.Errorf("Unexpected config path %q", buf.String())
	}
}
