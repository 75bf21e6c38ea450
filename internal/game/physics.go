package game

import (
	"math"

	"github.com/vovakirdan/pecktopia/internal/config"
)

// World advances the player under gravity and movement intents.
type World struct {
	Player Player

	gravity  float64
	speed    float64
	jump     float64
	minDelta float64
	maxDelta float64
	spawn    config.PlayerConfig
}

// NewWorld creates a world with a freshly spawned player.
func NewWorld(cfg config.Config) *World {
	return &World{
		Player:   NewPlayer(cfg.Player),
		gravity:  cfg.Physics.Gravity,
		speed:    cfg.Player.Speed,
		jump:     cfg.Player.JumpStrength,
		minDelta: cfg.Physics.MinDelta,
		maxDelta: math.Min(cfg.Physics.MaxDelta, config.DeltaCeiling),
		spawn:    cfg.Player,
	}
}

// Respawn replaces the player with a new one at the spawn point.
func (w *World) Respawn() {
	w.Player = NewPlayer(w.spawn)
}

// ClampDelta bounds a frame delta, in nominal frames, to (0, max].
// Non-positive or NaN deltas become min so every tick still advances.
func ClampDelta(raw, min, max float64) float64 {
	if math.IsNaN(raw) || raw <= 0 {
		return min
	}
	if raw > max {
		return max
	}
	return raw
}

// Step integrates one tick of dt nominal frames.
// A jump fires before integration and only from the ground.
func (w *World) Step(in Intents, dt float64) {
	dt = ClampDelta(dt, w.minDelta, w.maxDelta)
	p := &w.Player

	if in.Jump && p.Grounded {
		p.VY = -w.jump
		p.Grounded = false
	}

	switch {
	case in.MoveLeft && !in.MoveRight:
		p.VX = -w.speed
		p.Facing = FacingLeft
	case in.MoveRight && !in.MoveLeft:
		p.VX = w.speed
		p.Facing = FacingRight
	default:
		p.VX = 0
	}

	p.VY += w.gravity * dt

	p.Box.X += p.VX * dt
	p.Box.Y += p.VY * dt
}
