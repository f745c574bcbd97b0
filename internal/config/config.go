// Package config provides YAML/TOML-based game configuration loading and
// difficulty management for BoxCoin.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/boxcoin/internal/core"
)

// BoxCoinConfig contains all tunables for the game.
type BoxCoinConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Platforms  PlatformConfig   `yaml:"platforms" toml:"platforms"`
	Coins      CoinConfig       `yaml:"coins" toml:"coins"`
	Clouds     CloudConfig      `yaml:"clouds" toml:"clouds"`
	Effects    EffectConfig     `yaml:"effects" toml:"effects"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Rules      RulesConfig      `yaml:"rules" toml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// WorldConfig defines the playfield size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PhysicsConfig defines global physics parameters.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity" toml:"gravity"` // units per second squared
}

// PlayerConfig defines the player box.
type PlayerConfig struct {
	Width             float64 `yaml:"width" toml:"width"`
	Height            float64 `yaml:"height" toml:"height"`
	Speed             float64 `yaml:"speed" toml:"speed"`
	BaseJumpPower     float64 `yaml:"base_jump_power" toml:"base_jump_power"`
	MaxJumpPower      float64 `yaml:"max_jump_power" toml:"max_jump_power"`
	MaxJumpDurationMS int     `yaml:"max_jump_duration_ms" toml:"max_jump_duration_ms"`
}

// MaxJumpDuration returns how long a held jump keeps ramping.
func (p PlayerConfig) MaxJumpDuration() time.Duration {
	return time.Duration(p.MaxJumpDurationMS) * time.Millisecond
}

// PlatformConfig defines the initial platform layout.
type PlatformConfig struct {
	Speed  float64 `yaml:"speed" toml:"speed"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Gap    float64 `yaml:"gap" toml:"gap"`
}

// CoinTier is one entry of the weighted coin value table.
type CoinTier struct {
	Value  int     `yaml:"value" toml:"value"`
	Weight float64 `yaml:"weight" toml:"weight"`
	Color  string  `yaml:"color" toml:"color"`
}

// CoinConfig defines coin spawning.
type CoinConfig struct {
	Width           float64    `yaml:"width" toml:"width"`
	Height          float64    `yaml:"height" toml:"height"`
	MinSpeed        float64    `yaml:"min_speed" toml:"min_speed"`
	MaxSpeed        float64    `yaml:"max_speed" toml:"max_speed"`
	SpawnIntervalMS int        `yaml:"spawn_interval_ms" toml:"spawn_interval_ms"`
	Tiers           []CoinTier `yaml:"tiers" toml:"tiers"`
}

// SpawnInterval returns the time between coin spawns.
func (c CoinConfig) SpawnInterval() time.Duration {
	return time.Duration(c.SpawnIntervalMS) * time.Millisecond
}

// CloudConfig defines the decorative background clouds.
type CloudConfig struct {
	Count  int     `yaml:"count" toml:"count"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"`
}

// EffectConfig defines floating text effects.
type EffectConfig struct {
	LifetimeFrames int     `yaml:"lifetime_frames" toml:"lifetime_frames"`
	RisePerFrame   float64 `yaml:"rise_per_frame" toml:"rise_per_frame"`
}

// ScoringConfig defines the passive survival score.
type ScoringConfig struct {
	PassiveIntervalMS int `yaml:"passive_interval_ms" toml:"passive_interval_ms"`
	PassivePoints     int `yaml:"passive_points" toml:"passive_points"`
}

// PassiveInterval returns the time between passive score ticks.
func (s ScoringConfig) PassiveInterval() time.Duration {
	return time.Duration(s.PassiveIntervalMS) * time.Millisecond
}

// RulesConfig defines lifecycle rules.
type RulesConfig struct {
	GracePeriodMS   int `yaml:"grace_period_ms" toml:"grace_period_ms"`
	MaxFrameDeltaMS int `yaml:"max_frame_delta_ms" toml:"max_frame_delta_ms"`
}

// GracePeriod returns how long falling off-screen is forgiven after start.
func (r RulesConfig) GracePeriod() time.Duration {
	return time.Duration(r.GracePeriodMS) * time.Millisecond
}

// MaxFrameDelta returns the cap applied to a single frame's delta.
func (r RulesConfig) MaxFrameDelta() time.Duration {
	return time.Duration(r.MaxFrameDeltaMS) * time.Millisecond
}

// DifficultyConfig defines the milestone-based level progression.
type DifficultyConfig struct {
	Enabled    bool      `yaml:"enabled" toml:"enabled"`
	Milestones []float64 `yaml:"milestones" toml:"milestones"` // elapsed seconds, ascending
	SpeedStep  float64   `yaml:"speed_step" toml:"speed_step"`
	MaxSpeed   float64   `yaml:"max_speed" toml:"max_speed"`
	WidthStep  float64   `yaml:"width_step" toml:"width_step"`
	MinWidth   float64   `yaml:"min_width" toml:"min_width"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a CLI string into a preset. An empty string means
// "use the config as loaded" and returns an empty preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset. Only
// fixed touches progression; the other presets keep the loaded
// difficulty.enabled so a config that turns milestones off stays off.
func ApplyPreset(cfg *BoxCoinConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Platforms.Speed = 80
		cfg.Platforms.Width = 120
		cfg.Rules.GracePeriodMS = 5000
	case DifficultyHard:
		cfg.Platforms.Speed = 160
		cfg.Platforms.Width = 80
		cfg.Coins.SpawnIntervalMS = 2000
	}
}

// Validate reports configuration values the simulation cannot run with.
func Validate(cfg BoxCoinConfig) error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("world.width", cfg.World.Width)
	positive("world.height", cfg.World.Height)
	positive("player.width", cfg.Player.Width)
	positive("player.height", cfg.Player.Height)
	positive("platforms.width", cfg.Platforms.Width)
	positive("platforms.height", cfg.Platforms.Height)
	positive("platforms.gap", cfg.Platforms.Gap)
	positive("coins.width", cfg.Coins.Width)
	positive("coins.height", cfg.Coins.Height)
	positive("coins.spawn_interval_ms", float64(cfg.Coins.SpawnIntervalMS))
	positive("scoring.passive_interval_ms", float64(cfg.Scoring.PassiveIntervalMS))
	positive("effects.lifetime_frames", float64(cfg.Effects.LifetimeFrames))
	positive("player.max_jump_duration_ms", float64(cfg.Player.MaxJumpDurationMS))

	if cfg.Player.Width > cfg.World.Width {
		errs = append(errs, errors.New("player.width exceeds world.width"))
	}
	if cfg.Platforms.Width > cfg.World.Width {
		errs = append(errs, errors.New("platforms.width exceeds world.width"))
	}
	if cfg.Coins.MaxSpeed < cfg.Coins.MinSpeed {
		errs = append(errs, errors.New("coins.max_speed is below coins.min_speed"))
	}

	if len(cfg.Coins.Tiers) == 0 {
		errs = append(errs, errors.New("coins.tiers must not be empty"))
	}
	var total float64
	for i, tier := range cfg.Coins.Tiers {
		if tier.Weight < 0 {
			errs = append(errs, fmt.Errorf("coins.tiers[%d].weight must not be negative", i))
		}
		if _, ok := core.ParseColor(tier.Color); !ok {
			errs = append(errs, fmt.Errorf("coins.tiers[%d].color %q is not a known color", i, tier.Color))
		}
		total += tier.Weight
	}
	if len(cfg.Coins.Tiers) > 0 && total <= 0 {
		errs = append(errs, errors.New("coins.tiers weights must sum to a positive value"))
	}

	for i := 1; i < len(cfg.Difficulty.Milestones); i++ {
		if cfg.Difficulty.Milestones[i] <= cfg.Difficulty.Milestones[i-1] {
			errs = append(errs, errors.New("difficulty.milestones must be strictly ascending"))
			break
		}
	}
	if cfg.Difficulty.MinWidth > cfg.Platforms.Width {
		errs = append(errs, errors.New("difficulty.min_width exceeds platforms.width"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
