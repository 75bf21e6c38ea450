package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/pecktopia/internal/config"
	"github.com/vovakirdan/pecktopia/internal/core"
	"github.com/vovakirdan/pecktopia/internal/level"
)

func newResolver() *Resolver {
	return NewResolver(800, 400)
}

func platformLevel(boxes ...core.Box) *level.Level {
	lvl := &level.Level{ID: 1}
	for _, b := range boxes {
		lvl.Platforms = append(lvl.Platforms, level.Platform{Box: b})
	}
	return lvl
}

func player(x, y, vx, vy float64) Player {
	return Player{Box: core.NewBox(x, y, 40, 40), VX: vx, VY: vy, Facing: FacingRight}
}

func TestResolvePlatformSides(t *testing.T) {
	tall := core.NewBox(100, 100, 100, 100)

	tests := []struct {
		name     string
		plat     core.Box
		p        Player
		expected Player
	}{
		{
			name:     "landing on top",
			plat:     core.NewBox(200, 300, 150, 20),
			p:        player(220, 265, 0, 5),
			expected: Player{Box: core.NewBox(220, 260, 40, 40), Grounded: true, Facing: FacingRight},
		},
		{
			name:     "head hits bottom",
			plat:     core.NewBox(200, 300, 150, 20),
			p:        player(220, 318, 0, -3),
			expected: Player{Box: core.NewBox(220, 320, 40, 40), Facing: FacingRight},
		},
		{
			name:     "walking right into side",
			plat:     tall,
			p:        player(65, 120, 5, 0),
			expected: Player{Box: core.NewBox(60, 120, 40, 40), Facing: FacingRight},
		},
		{
			name:     "walking left into side",
			plat:     tall,
			p:        player(195, 120, -5, 0),
			expected: Player{Box: core.NewBox(200, 120, 40, 40), Facing: FacingRight},
		},
		{
			name:     "side contact without velocity stays put",
			plat:     tall,
			p:        player(65, 120, 0, 0),
			expected: player(65, 120, 0, 0),
		},
		{
			name:     "tie between top and left prefers top",
			plat:     core.NewBox(100, 100, 100, 20),
			p:        player(65, 65, 5, 1),
			expected: Player{Box: core.NewBox(65, 60, 40, 40), VX: 5, Grounded: true, Facing: FacingRight},
		},
		{
			name:     "touching edge is not a collision",
			plat:     core.NewBox(200, 300, 150, 20),
			p:        player(220, 260, 0, 0),
			expected: player(220, 260, 0, 0),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.p
			newResolver().Resolve(&p, platformLevel(tc.plat))
			if p != tc.expected {
				t.Errorf("Resolve() = %+v, expected %+v", p, tc.expected)
			}
		})
	}
}

func TestResolveCanvasBounds(t *testing.T) {
	tests := []struct {
		name     string
		p        Player
		expected core.Box
		grounded bool
	}{
		{"left wall", player(-12, 100, -5, 1), core.NewBox(0, 100, 40, 40), false},
		{"right wall", player(790, 100, 5, 1), core.NewBox(760, 100, 40, 40), false},
		{"below floor", player(300, 372, 0, 6), core.NewBox(300, 360, 40, 40), true},
		{"exactly on floor", player(300, 360, 0, 0), core.NewBox(300, 360, 40, 40), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.p
			newResolver().Resolve(&p, platformLevel())
			if p.Box != tc.expected {
				t.Errorf("Box = %+v, expected %+v", p.Box, tc.expected)
			}
			if p.Grounded != tc.grounded {
				t.Errorf("Grounded = %v, expected %v", p.Grounded, tc.grounded)
			}
			if p.Grounded && p.VY != 0 {
				t.Errorf("grounded player must have VY 0, got %v", p.VY)
			}
		})
	}
}

// Scenario A: with no input the player falls from spawn to the floor
// and stays there.
func TestFallToFloor(t *testing.T) {
	catalog, err := level.Default()
	if err != nil {
		t.Fatal(err)
	}
	lvl, _ := catalog.Lookup(1)
	w := NewWorld(config.Default())
	r := newResolver()
	r.Reset(&lvl)

	for i := 0; i < 200; i++ {
		w.Step(Intents{}, 1)
		r.Resolve(&w.Player, &lvl)
	}

	p := w.Player
	if p.Box.Y != 360 || !p.Grounded || p.VY != 0 {
		t.Errorf("after settling: y=%v grounded=%v vy=%v, expected 360/true/0", p.Box.Y, p.Grounded, p.VY)
	}
	if p.Box.X != 50 {
		t.Errorf("x drifted to %v", p.Box.X)
	}
}

// Scenario B: a rising player is blocked by a platform's underside only
// while the bottom face is the shallowest penetration. A player that
// pokes its head far enough through, so the top face is shallowest, is
// not stopped on the way up and lands on the platform once gravity turns
// it around while still overlapping.
func TestRisingIntoPlatform(t *testing.T) {
	plat := core.NewBox(200, 300, 150, 20)

	t.Run("blocked from below", func(t *testing.T) {
		p := player(220, 318, 0, -4)
		newResolver().Resolve(&p, platformLevel(plat))
		if p.Box.Y != 320 || p.VY != 0 || p.Grounded {
			t.Errorf("got y=%v vy=%v grounded=%v, expected 320/0/false", p.Box.Y, p.VY, p.Grounded)
		}
	})

	t.Run("passes through then lands", func(t *testing.T) {
		lvl := platformLevel(plat)
		r := newResolver()

		// Top face is the shallowest but the player still rises.
		p := player(220, 270, 0, -2)
		r.Resolve(&p, lvl)
		if p.Box.Y != 270 || p.VY != -2 {
			t.Fatalf("rising player should not be resolved, got y=%v vy=%v", p.Box.Y, p.VY)
		}

		// Same overlap, vy turned non-negative: now a landing.
		p.VY = 0.5
		r.Resolve(&p, lvl)
		if p.Box.Y != 260 || p.VY != 0 || !p.Grounded {
			t.Errorf("got y=%v vy=%v grounded=%v, expected landing at 260", p.Box.Y, p.VY, p.Grounded)
		}
	})

	t.Run("falling with underside shallowest is left alone", func(t *testing.T) {
		p := player(220, 318, 0, 1)
		newResolver().Resolve(&p, platformLevel(plat))
		if p.Box.Y != 318 || p.VY != 1 {
			t.Errorf("got y=%v vy=%v, expected no resolution", p.Box.Y, p.VY)
		}
	})
}

func TestBottomHitClearsGrounded(t *testing.T) {
	// Squeezed between a floor platform and a low ceiling.
	lvl := platformLevel(core.NewBox(100, 200, 200, 20), core.NewBox(100, 150, 200, 20))
	p := player(150, 165, 0, 0)

	newResolver().Resolve(&p, lvl)
	if p.Grounded {
		t.Errorf("player pushed down by a ceiling should not stay grounded, got %+v", p)
	}
}

func TestCollectibles(t *testing.T) {
	lvl := &level.Level{
		ID: 1,
		Collectibles: []level.Collectible{
			{Name: "Golden Feather", Box: core.NewBox(600, 170, 30, 30)},
		},
	}
	r := newResolver()
	r.Reset(lvl)

	far := player(50, 360, 0, 0)
	if res := r.Resolve(&far, lvl); res.Complete || len(res.Collected) != 0 {
		t.Fatalf("nothing should be collected yet, got %+v", res)
	}

	near := player(590, 160, 0, 0)
	res := r.Resolve(&near, lvl)
	if len(res.Collected) != 1 || res.Collected[0] != "Golden Feather" {
		t.Errorf("Collected = %v, expected [Golden Feather]", res.Collected)
	}
	if !res.Complete {
		t.Error("collecting the only item should complete the level")
	}

	// Still overlapping on the next tick: no second pickup, no second completion.
	res = r.Resolve(&near, lvl)
	if len(res.Collected) != 0 || res.Complete {
		t.Errorf("second tick should report nothing, got %+v", res)
	}
	if !lvl.Collectibles[0].Collected() {
		t.Error("collected flag must never revert")
	}
}

func TestCompletionNeedsEveryItem(t *testing.T) {
	lvl := &level.Level{
		ID: 1,
		Collectibles: []level.Collectible{
			{Name: "a", Box: core.NewBox(100, 100, 10, 10)},
			{Name: "b", Box: core.NewBox(500, 100, 10, 10)},
		},
	}
	r := newResolver()
	r.Reset(lvl)

	p := player(90, 90, 0, 0)
	if res := r.Resolve(&p, lvl); res.Complete {
		t.Fatal("one of two items should not complete the level")
	}
	p = player(490, 90, 0, 0)
	if res := r.Resolve(&p, lvl); !res.Complete {
		t.Error("second item should complete the level")
	}
}

func TestEmptyLevelNeverCompletes(t *testing.T) {
	lvl := &level.Level{ID: 42}
	r := newResolver()
	r.Reset(lvl)
	p := player(50, 50, 0, 0)
	for i := 0; i < 10; i++ {
		if res := r.Resolve(&p, lvl); res.Complete {
			t.Fatal("empty level must not complete")
		}
	}
}

func touchesSupport(p Player, lvl *level.Level, canvasH float64) bool {
	const eps = 1e-9
	if math.Abs(p.Box.Bottom()-canvasH) < eps {
		return true
	}
	for _, plat := range lvl.Platforms {
		b := plat.Box
		if math.Abs(p.Box.Bottom()-b.Y) < eps && p.Box.X <= b.Right() && p.Box.Right() >= b.X {
			return true
		}
	}
	return false
}

// Random play on every catalog level keeps the player on the canvas and
// never reports grounded without support.
func TestInvariantsUnderRandomInput(t *testing.T) {
	catalog, err := level.Default()
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	rng := rand.New(rand.NewSource(7))

	for _, id := range catalog.IDs() {
		lvl, _ := catalog.Lookup(id)
		w := NewWorld(cfg)
		r := NewResolver(cfg.Canvas.Width, cfg.Canvas.Height)
		r.Reset(&lvl)
		flips := 0

		for tick := 0; tick < 3000; tick++ {
			in := Intents{
				MoveLeft:  rng.Intn(3) == 0,
				MoveRight: rng.Intn(2) == 0,
				Jump:      rng.Intn(10) == 0,
			}
			w.Step(in, rng.Float64()*6)
			res := r.Resolve(&w.Player, &lvl)
			flips += len(res.Collected)

			p := w.Player
			if p.Box.X < 0 || p.Box.X > cfg.Canvas.Width-p.Box.W {
				t.Fatalf("level %d tick %d: x=%v out of bounds", id, tick, p.Box.X)
			}
			if p.Grounded && (p.VY != 0 || !touchesSupport(p, &lvl, cfg.Canvas.Height)) {
				t.Fatalf("level %d tick %d: grounded without support: %+v", id, tick, p)
			}
		}
		if flips > len(lvl.Collectibles) {
			t.Errorf("level %d: %d pickups for %d items", id, flips, len(lvl.Collectibles))
		}
	}
}
