// Package game implements the Pecktopia simulation: a single chicken
// moving under gravity across the static platforms of one level.
// It has no terminal dependencies; the front end drives it through the
// Scheduler, InputSource and RenderTarget boundaries in loop.go.
package game

import (
	"github.com/vovakirdan/pecktopia/internal/config"
	"github.com/vovakirdan/pecktopia/internal/core"
)

// Direction is the way the player faces.
type Direction int

const (
	FacingRight Direction = 1
	FacingLeft  Direction = -1
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == FacingLeft {
		return "left"
	}
	return "right"
}

// Player is the one actor of a level attempt.
type Player struct {
	Box      core.Box  // Position and size in canvas units
	VX, VY   float64   // Velocity in canvas units per nominal frame
	Grounded bool      // Resting on a platform top or the canvas floor
	Facing   Direction // Last non-zero horizontal direction
}

// NewPlayer creates a player at the configured spawn point, at rest and
// facing right.
func NewPlayer(cfg config.PlayerConfig) Player {
	return Player{
		Box:    core.NewBox(cfg.SpawnX, cfg.SpawnY, cfg.Width, cfg.Height),
		Facing: FacingRight,
	}
}
