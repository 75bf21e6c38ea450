package game

import (
	"math"

	"github.com/vovakirdan/pecktopia/internal/core"
	"github.com/vovakirdan/pecktopia/internal/level"
)

// Resolution is the outcome of one collision pass.
type Resolution struct {
	Collected []string // Items picked up this tick
	Complete  bool     // True only on the tick the level became complete
}

// Resolver pushes the player out of platforms, keeps it on the canvas
// and detects pickups. It remembers whether the level was already
// complete so completion fires once.
type Resolver struct {
	canvasW     float64
	canvasH     float64
	wasComplete bool
}

// NewResolver creates a resolver for a canvas of the given size.
func NewResolver(canvasW, canvasH float64) *Resolver {
	return &Resolver{canvasW: canvasW, canvasH: canvasH}
}

// Reset prepares the resolver for a new level instance.
func (r *Resolver) Reset(lvl *level.Level) {
	r.wasComplete = lvl.AllCollected()
}

// Resolve corrects the player against lvl and updates collectible flags.
func (r *Resolver) Resolve(p *Player, lvl *level.Level) Resolution {
	p.Grounded = false
	for i := range lvl.Platforms {
		resolvePlatform(p, lvl.Platforms[i].Box)
	}

	p.Box.X = core.ClampF(p.Box.X, 0, math.Max(0, r.canvasW-p.Box.W))
	if p.Box.Bottom() >= r.canvasH {
		p.Box.Y = r.canvasH - p.Box.H
		p.VY = 0
		p.Grounded = true
	}

	var res Resolution
	for i := range lvl.Collectibles {
		item := &lvl.Collectibles[i]
		if item.Collected() || !p.Box.Overlaps(item.Box) {
			continue
		}
		if item.Collect() {
			res.Collected = append(res.Collected, item.Name)
		}
	}

	complete := lvl.AllCollected()
	res.Complete = complete && !r.wasComplete
	r.wasComplete = complete
	return res
}

// resolvePlatform separates the player from one platform along the axis
// of least penetration. Equal depths favor top, then bottom, left, right.
// A side whose velocity condition fails is left unresolved this tick.
func resolvePlatform(p *Player, plat core.Box) {
	if !p.Box.Overlaps(plat) {
		return
	}

	fromLeft := p.Box.Right() - plat.X
	fromRight := plat.Right() - p.Box.X
	fromTop := p.Box.Bottom() - plat.Y
	fromBottom := plat.Bottom() - p.Box.Y
	least := math.Min(math.Min(fromLeft, fromRight), math.Min(fromTop, fromBottom))

	switch {
	case least == fromTop && p.VY >= 0:
		p.Box.Y = plat.Y - p.Box.H
		p.VY = 0
		p.Grounded = true
	case least == fromBottom && p.VY <= 0:
		p.Box.Y = plat.Bottom()
		p.VY = 0
		// Pushed below whatever it was standing on.
		p.Grounded = false
	case least == fromLeft && p.VX > 0:
		p.Box.X = plat.X - p.Box.W
		p.VX = 0
	case least == fromRight && p.VX < 0:
		p.Box.X = plat.Right()
		p.VX = 0
	}
}
