package game

import (
	"github.com/vovakirdan/pecktopia/internal/core"
	"github.com/vovakirdan/pecktopia/internal/level"
)

// Item is an uncollected collectible as seen by the renderer.
type Item struct {
	Name string
	Box  core.Box
}

// Snapshot is a read-only copy of one tick's state for rendering.
// Nothing in it aliases simulation memory.
type Snapshot struct {
	LevelID    int
	LevelName  string
	Tick       uint64
	CanvasW    float64
	CanvasH    float64
	Player     core.Box
	Facing     Direction
	VX, VY     float64
	Grounded   bool
	Platforms  []core.Box
	Items      []Item   // Uncollected only
	Collected  []string // Picked up in this level so far
	Background level.Background
	Character  core.Character
}

// takeSnapshot copies the state of a level attempt.
func takeSnapshot(tick uint64, w *World, lvl *level.Level, canvasW, canvasH float64, c core.Character) Snapshot {
	s := Snapshot{
		LevelID:    lvl.ID,
		LevelName:  lvl.Name,
		Tick:       tick,
		CanvasW:    canvasW,
		CanvasH:    canvasH,
		Player:     w.Player.Box,
		Facing:     w.Player.Facing,
		VX:         w.Player.VX,
		VY:         w.Player.VY,
		Grounded:   w.Player.Grounded,
		Platforms:  make([]core.Box, len(lvl.Platforms)),
		Collected:  lvl.CollectedNames(),
		Background: lvl.Background,
		Character:  c,
	}
	for i, p := range lvl.Platforms {
		s.Platforms[i] = p.Box
	}
	for i := range lvl.Collectibles {
		item := &lvl.Collectibles[i]
		if !item.Collected() {
			s.Items = append(s.Items, Item{Name: item.Name, Box: item.Box})
		}
	}
	return s
}
