package config

import (
	_ "embed"
)

//go:embed defaults/boxcoin.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in BoxCoin configuration.
// It mirrors defaults/boxcoin.yaml and is used when the embedded file
// cannot be parsed.
func DefaultConfig() BoxCoinConfig {
	return BoxCoinConfig{
		World: WorldConfig{
			Width:  400,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity: 800,
		},
		Player: PlayerConfig{
			Width:             57,
			Height:            50,
			Speed:             300,
			BaseJumpPower:     450,
			MaxJumpPower:      750,
			MaxJumpDurationMS: 1300,
		},
		Platforms: PlatformConfig{
			Speed:  100,
			Width:  100,
			Height: 30,
			Gap:    120,
		},
		Coins: CoinConfig{
			Width:           20,
			Height:          20,
			MinSpeed:        50,
			MaxSpeed:        100,
			SpawnIntervalMS: 3000,
			Tiers: []CoinTier{
				{Value: 10, Weight: 0.4, Color: "gold"},
				{Value: 20, Weight: 0.3, Color: "silver"},
				{Value: 50, Weight: 0.2, Color: "blue"},
				{Value: 100, Weight: 0.1, Color: "green"},
			},
		},
		Clouds: CloudConfig{
			Count:  3,
			Width:  128,
			Height: 72,
			Speed:  20,
		},
		Effects: EffectConfig{
			LifetimeFrames: 50,
			RisePerFrame:   1,
		},
		Scoring: ScoringConfig{
			PassiveIntervalMS: 500,
			PassivePoints:     1,
		},
		Rules: RulesConfig{
			GracePeriodMS:   3000,
			MaxFrameDeltaMS: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			Milestones: []float64{20, 40, 60, 80, 100, 120, 140, 160, 180, 200},
			SpeedStep:  20,
			MaxSpeed:   300,
			WidthStep:  10,
			MinWidth:   50,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
