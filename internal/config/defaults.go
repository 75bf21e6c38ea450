package config

import (
	_ "embed"
)

//go:embed defaults/pecktopia.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration, matching the browser
// game's constants.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 400,
		},
		Physics: PhysicsConfig{
			Gravity:  0.5,
			MaxDelta: 5,
			MinDelta: 0.001,
		},
		Player: PlayerConfig{
			SpawnX:       50,
			SpawnY:       50,
			Width:        40,
			Height:       40,
			Speed:        5,
			JumpStrength: 10,
		},
		Loop: LoopConfig{
			NominalFrameMs:  16,
			TickRate:        60,
			ReadyAttempts:   10,
			ReadyIntervalMs: 100,
		},
		Input: InputConfig{
			HoldMs:       550,
			RepeatHoldMs: 150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
