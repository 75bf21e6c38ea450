// Package config provides YAML-based configuration loading for the
// simulation and its frame loop.
package config

import (
	"errors"
	"fmt"
)

// DeltaCeiling is the largest frame delta, in nominal frames, the
// simulation integrates in one step. max_delta may lower it, never raise it.
const DeltaCeiling = 5.0

// Config contains every tunable of the game.
type Config struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Loop    LoopConfig    `yaml:"loop"`
	Input   InputConfig   `yaml:"input"`
}

// CanvasConfig defines the fixed simulation canvas in canvas units.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the integration parameters.
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`   // Added to vy per nominal frame
	MaxDelta float64 `yaml:"max_delta"` // Upper clamp for deltaTime, in nominal frames
	MinDelta float64 `yaml:"min_delta"` // Substituted for non-positive deltas
}

// PlayerConfig defines the player's box and movement.
type PlayerConfig struct {
	SpawnX       float64 `yaml:"spawn_x"`
	SpawnY       float64 `yaml:"spawn_y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	JumpStrength float64 `yaml:"jump_strength"`
}

// LoopConfig defines frame timing and render-target readiness polling.
type LoopConfig struct {
	NominalFrameMs  float64 `yaml:"nominal_frame_ms"`
	TickRate        int     `yaml:"tick_rate"`
	ReadyAttempts   int     `yaml:"ready_attempts"`
	ReadyIntervalMs int     `yaml:"ready_interval_ms"`
}

// InputConfig defines how key presses become movement intents.
type InputConfig struct {
	HoldMs       int `yaml:"hold_ms"`        // A new press stays held this long; covers the terminal's repeat delay
	RepeatHoldMs int `yaml:"repeat_hold_ms"` // Each auto-repeat extends the hold by this much
}

// Validate reports configuration values the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %gx%g must be positive", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size %gx%g must be positive", c.Player.Width, c.Player.Height))
	}
	if c.Player.Width > c.Canvas.Width || c.Player.Height > c.Canvas.Height {
		errs = append(errs, errors.New("player does not fit on the canvas"))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("gravity %g must be positive", c.Physics.Gravity))
	}
	if c.Physics.MinDelta <= 0 || c.Physics.MaxDelta < c.Physics.MinDelta {
		errs = append(errs, fmt.Errorf("delta range (%g, %g] is invalid", c.Physics.MinDelta, c.Physics.MaxDelta))
	}
	if c.Physics.MaxDelta > DeltaCeiling {
		errs = append(errs, fmt.Errorf("max delta %g exceeds the ceiling of %g frames", c.Physics.MaxDelta, DeltaCeiling))
	}
	if c.Loop.NominalFrameMs <= 0 {
		errs = append(errs, fmt.Errorf("nominal frame %gms must be positive", c.Loop.NominalFrameMs))
	}
	if c.Loop.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate %d must be positive", c.Loop.TickRate))
	}
	if c.Loop.ReadyAttempts <= 0 || c.Loop.ReadyIntervalMs <= 0 {
		errs = append(errs, errors.New("readiness polling needs positive attempts and interval"))
	}
	if c.Input.HoldMs <= 0 || c.Input.RepeatHoldMs <= 0 {
		errs = append(errs, fmt.Errorf("input hold %dms and repeat hold %dms must be positive", c.Input.HoldMs, c.Input.RepeatHoldMs))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
