package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the BoxCoin configuration.
// Search order: customPath -> ~/.boxcoin/configs/boxcoin.{yaml,toml} ->
// ./configs/boxcoin.yaml -> embedded default.
//
// Files are decoded on top of the defaults, so a file only needs the keys
// it changes. An explicit customPath must exist, parse and validate; the
// implicit locations are skipped when unreadable or invalid.
func Load(customPath string) (BoxCoinConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := Validate(cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("boxcoin.yaml"),
		userConfigPath("boxcoin.toml"),
		filepath.Join("configs", "boxcoin.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && Validate(cfg) == nil {
			return cfg, nil
		}
	}

	return Embedded(), nil
}

// Embedded returns the embedded default configuration.
func Embedded() BoxCoinConfig {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// loadFile decodes a YAML or TOML file (chosen by extension) over the defaults.
func loadFile(path string) (BoxCoinConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := Decode(data, formatFor(path), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func formatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode parses data in the given format into cfg. Keys missing from data
// keep the values already present in cfg. Lists (coin tiers, milestones)
// are replaced as a whole.
func Decode(data []byte, format Format, cfg *BoxCoinConfig) error {
	switch format {
	case FormatTOML:
		tiers, milestones := cfg.Coins.Tiers, cfg.Difficulty.Milestones
		cfg.Coins.Tiers, cfg.Difficulty.Milestones = nil, nil

		if _, err := toml.Decode(string(data), cfg); err != nil {
			cfg.Coins.Tiers, cfg.Difficulty.Milestones = tiers, milestones
			return err
		}

		if cfg.Coins.Tiers == nil {
			cfg.Coins.Tiers = tiers
		}
		if cfg.Difficulty.Milestones == nil {
			cfg.Difficulty.Milestones = milestones
		}
		return nil
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// Encode renders cfg in the given format.
func Encode(cfg BoxCoinConfig, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var sb strings.Builder
		if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: cannot encode toml: %w", err)
		}
		return []byte(sb.String()), nil
	default:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
		}
		return data, nil
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".boxcoin", "configs", filename)
}
