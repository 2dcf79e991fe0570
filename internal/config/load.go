package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < preset < file < flags.
func Load() (*Config, error) {
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	cfg, err := LoadFile(configPath, *flagPreset)
	if err != nil {
		return nil, err
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile builds a config from defaults, a preset and an optional YAML file.
// An empty path skips the file. An empty preset uses the file's "preset" key,
// falling back to the landscape preset.
func LoadFile(path, preset string) (*Config, error) {
	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	if preset == "" {
		var head struct {
			Preset string `yaml:"preset"`
		}
		if err := yaml.Unmarshal(data, &head); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
		preset = head.Preset
	}
	if preset == "" {
		preset = PresetLandscape
	}

	cfg := Default()
	if err := ApplyPreset(cfg, preset); err != nil {
		return nil, err
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
		// The file's preset key only selects the base; the resolved name wins.
		cfg.Preset = preset
	}

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "CommandBlocker")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "CommandBlocker")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "command-blocker")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "command-blocker")
	}
}
