package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"pairctl/pkg/logging"
)

// For mocking in tests
var osGetwd = os.Getwd

const (
	appDirName       = "pairctl"
	projectConfigDir = ".pairctl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the pairctl configuration by layering default, user, and project settings.
func LoadConfig() (PairctlConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		logging.Warn("Config", "could not determine user config path: %v", err)
	} else {
		config, err = overlayIfExists(config, userConfigPath)
		if err != nil {
			return PairctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "could not determine project config path: %v", err)
	} else {
		config, err = overlayIfExists(config, projectConfigPath)
		if err != nil {
			return PairctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	if err := Validate(config); err != nil {
		return PairctlConfig{}, err
	}
	return config, nil
}

// LoadConfigFrom loads a single explicit file over the defaults. Unlike the
// layered files, a missing explicit file is an error.
func LoadConfigFrom(path string) (PairctlConfig, error) {
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return PairctlConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(GetDefaultConfig(), overlay)
	if err := Validate(config); err != nil {
		return PairctlConfig{}, err
	}
	return config, nil
}

// UserConfigPath returns where the per-user config file is looked up.
func UserConfigPath() (string, error) {
	return getUserConfigPath()
}

var getUserConfigPath = func() (string, error) {
	if xdg.ConfigHome == "" {
		return "", errors.New("XDG config home is not set")
	}
	return filepath.Join(xdg.ConfigHome, appDirName, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func overlayIfExists(base PairctlConfig, path string) (PairctlConfig, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return PairctlConfig{}, err
	}
	logging.Debug("Config", "applied config layer %s", path)
	return mergeConfigs(base, overlay), nil
}

// loadConfigFromFile reads one YAML layer.
func loadConfigFromFile(filePath string) (fileConfig, error) {
	var config fileConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fileConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fileConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' into 'base'. Binding lists replace the base
// list as a whole.
func mergeConfigs(base PairctlConfig, overlay fileConfig) PairctlConfig {
	merged := base

	mergeBinding(&merged.Keys.Quit, overlay.Keys.Quit)
	mergeBinding(&merged.Keys.NewPair, overlay.Keys.NewPair)
	mergeBinding(&merged.Keys.Confirm, overlay.Keys.Confirm)
	mergeBinding(&merged.Keys.Decline, overlay.Keys.Decline)
	mergeBinding(&merged.Keys.Copy, overlay.Keys.Copy)
	mergeBinding(&merged.Keys.Help, overlay.Keys.Help)

	if overlay.Output.Pretty != nil {
		merged.Output.Pretty = *overlay.Output.Pretty
	}
	if overlay.Output.Indent != nil {
		merged.Output.Indent = *overlay.Output.Indent
	}

	if overlay.UI.KeyColumnWidth != nil {
		merged.UI.KeyColumnWidth = *overlay.UI.KeyColumnWidth
	}
	if overlay.UI.ShowPreview != nil {
		merged.UI.ShowPreview = *overlay.UI.ShowPreview
	}
	if overlay.UI.PreviewStyle != nil {
		merged.UI.PreviewStyle = *overlay.UI.PreviewStyle
	}

	return merged
}

func mergeBinding(dst *[]string, overlay []string) {
	if len(overlay) > 0 {
		*dst = append([]string(nil), overlay...)
	}
}

// Validate checks that every action has at least one key and that actions
// active in the same mode do not share a key.
func Validate(c PairctlConfig) error {
	named := map[string][]string{
		"quit":    c.Keys.Quit,
		"newPair": c.Keys.NewPair,
		"confirm": c.Keys.Confirm,
		"decline": c.Keys.Decline,
		"copy":    c.Keys.Copy,
		"help":    c.Keys.Help,
	}
	for _, name := range []string{"quit", "newPair", "confirm", "decline", "copy", "help"} {
		if len(named[name]) == 0 {
			return fmt.Errorf("invalid config: key binding %q has no keys", name)
		}
		for _, k := range named[name] {
			if strings.TrimSpace(k) == "" {
				return fmt.Errorf("invalid config: key binding %q contains an empty key", name)
			}
		}
	}

	groups := [][]string{
		{"quit", "newPair", "copy", "help"},
		{"confirm", "decline", "quit"},
	}
	for _, group := range groups {
		owner := make(map[string]string)
		for _, name := range group {
			for _, k := range named[name] {
				if prev, ok := owner[k]; ok && prev != name {
					return fmt.Errorf("invalid config: key %q is bound to both %q and %q", k, prev, name)
				}
				owner[k] = name
			}
		}
	}

	if c.UI.KeyColumnWidth < 0 {
		return fmt.Errorf("invalid config: ui.keyColumnWidth must not be negative, got %d", c.UI.KeyColumnWidth)
	}
	return nil
}
