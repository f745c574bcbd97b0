package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	embedded := Embedded()
	if !reflect.DeepEqual(embedded, DefaultConfig()) {
		t.Errorf("embedded YAML and DefaultConfig() disagree:\n%+v\n%+v", embedded, DefaultConfig())
	}
	if err := Validate(embedded); err != nil {
		t.Errorf("embedded config should validate: %v", err)
	}
}

func TestLoadCustomYAMLPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 1000\nplatforms:\n  speed: 150\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 1000 {
		t.Errorf("gravity = %v, expected 1000", cfg.Physics.Gravity)
	}
	if cfg.Platforms.Speed != 150 {
		t.Errorf("platform speed = %v, expected 150", cfg.Platforms.Speed)
	}
	// Untouched keys keep their defaults
	if cfg.Platforms.Gap != 120 {
		t.Errorf("platform gap = %v, expected default 120", cfg.Platforms.Gap)
	}
	if len(cfg.Coins.Tiers) != 4 {
		t.Errorf("coin tiers should default to 4 entries, got %d", len(cfg.Coins.Tiers))
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte(`
[player]
speed = 250

[difficulty]
milestones = [10, 30]

[[coins.tiers]]
value = 5
weight = 1
color = "gold"
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Speed != 250 {
		t.Errorf("player speed = %v, expected 250", cfg.Player.Speed)
	}
	if cfg.Player.Width != 57 {
		t.Errorf("player width = %v, expected default 57", cfg.Player.Width)
	}
	if !reflect.DeepEqual(cfg.Difficulty.Milestones, []float64{10, 30}) {
		t.Errorf("milestones = %v, expected [10 30]", cfg.Difficulty.Milestones)
	}
	if len(cfg.Coins.Tiers) != 1 || cfg.Coins.Tiers[0].Value != 5 {
		t.Errorf("coin tiers should be replaced, got %+v", cfg.Coins.Tiers)
	}
}

func TestLoadCustomMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing explicit path")
	}
}

func TestLoadCustomInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("difficulty:\n  milestones: [40, 20]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject descending milestones")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(DefaultConfig(), format)
			if err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}

			var cfg BoxCoinConfig
			if err := Decode(data, format, &cfg); err != nil {
				t.Fatalf("Decode() failed: %v", err)
			}
			if !reflect.DeepEqual(cfg, DefaultConfig()) {
				t.Errorf("decoded config differs from default:\n%+v", cfg)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BoxCoinConfig)
	}{
		{"zero world width", func(c *BoxCoinConfig) { c.World.Width = 0 }},
		{"no coin tiers", func(c *BoxCoinConfig) { c.Coins.Tiers = nil }},
		{"unknown coin color", func(c *BoxCoinConfig) { c.Coins.Tiers[0].Color = "plaid" }},
		{"zero weights", func(c *BoxCoinConfig) {
			for i := range c.Coins.Tiers {
				c.Coins.Tiers[i].Weight = 0
			}
		}},
		{"coin speed range inverted", func(c *BoxCoinConfig) { c.Coins.MaxSpeed = 10 }},
		{"platform wider than world", func(c *BoxCoinConfig) { c.Platforms.Width = 500 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := Validate(cfg); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Platforms.Speed != 80 || cfg.Platforms.Width != 120 {
		t.Errorf("easy preset: speed=%v width=%v", cfg.Platforms.Speed, cfg.Platforms.Width)
	}

	cfg = DefaultConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Platforms.Speed != 160 || cfg.Platforms.Width != 80 {
		t.Errorf("hard preset: speed=%v width=%v", cfg.Platforms.Speed, cfg.Platforms.Width)
	}

	cfg = DefaultConfig()
	ApplyPreset(&cfg, DifficultyNormal)
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("normal preset should keep the defaults")
	}
}

func TestPresetKeepsDisabledProgression(t *testing.T) {
	path := filepath.Join(t.TempDir(), "off.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  enabled: false\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		t.Run(string(preset), func(t *testing.T) {
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			ApplyPreset(&cfg, preset)
			if cfg.Difficulty.Enabled {
				t.Errorf("%s preset turned progression back on", preset)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "Normal", " hard ", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}
