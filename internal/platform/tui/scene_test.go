package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pecktopia/internal/core"
	"github.com/vovakirdan/pecktopia/internal/game"
	"github.com/vovakirdan/pecktopia/internal/level"
)

func testSnapshot() game.Snapshot {
	return game.Snapshot{
		LevelID:    1,
		LevelName:  "Chicken Coop",
		Tick:       20,
		CanvasW:    800,
		CanvasH:    400,
		Player:     core.NewBox(0, 360, 40, 40),
		Facing:     game.FacingRight,
		Grounded:   true,
		Platforms:  []core.Box{core.NewBox(200, 300, 150, 20)},
		Items:      []game.Item{{Name: "Golden Feather", Box: core.NewBox(600, 170, 30, 30)}},
		Background: level.BackgroundCoop,
		Character:  core.DefaultCharacter(),
	}
}

func TestDrawPlayingHUD(t *testing.T) {
	s := core.NewScreen(80, 21)
	drawPlaying(s, testSnapshot(), nil, "")

	row := strings.Split(s.String(), "\n")[0]
	if !strings.Contains(row, "Level 1: Chicken Coop") {
		t.Errorf("HUD = %q, expected the level name", row)
	}
	if !strings.Contains(row, "Items 0/1") {
		t.Errorf("HUD = %q, expected the item count", row)
	}
}

func TestDrawPlayingProjectsScene(t *testing.T) {
	s := core.NewScreen(80, 21)
	snap := testSnapshot()
	drawPlaying(s, snap, nil, "")

	// Canvas 800x400 onto 80x20 cells below the HUD: 10 units per column,
	// 20 units per row.
	platform := s.GetCell(25, 1+15)
	if platform.Rune != '█' || platform.Color != core.ColorBrown {
		t.Errorf("platform cell = %+v, expected brown block", platform)
	}

	body := s.GetCell(1, 20)
	if body.Rune != '█' || body.Color != snap.Character.Palette().Primary {
		t.Errorf("chicken body cell = %+v, expected primary block", body)
	}
	beak := s.GetCell(4, 19)
	if beak.Rune != '▶' {
		t.Errorf("beak cell = %+v, expected right-facing beak", beak)
	}

	r, _ := itemGlyph("Golden Feather")
	if got := s.GetCell(60, 1+8).Rune; got != r {
		t.Errorf("item cell rune = %q, expected %q", got, r)
	}
}

func TestDrawPlayingBanner(t *testing.T) {
	s := core.NewScreen(80, 21)
	drawPlaying(s, testSnapshot(), nil, "Welcome to the Chicken Coop!\nPress r to retry")

	text := s.String()
	for _, want := range []string{"Welcome to the Chicken Coop!", "Press r to retry"} {
		if !strings.Contains(text, want) {
			t.Errorf("banner missing %q", want)
		}
	}
}

func TestDrawPlayingTinyWindow(t *testing.T) {
	s := core.NewScreen(8, 2)
	drawPlaying(s, testSnapshot(), nil, "")
	if !strings.Contains(s.String(), "window") {
		t.Errorf("tiny window should show a notice, got %q", s.String())
	}
}

func TestDrawChickenFacingLeft(t *testing.T) {
	s := core.NewScreen(20, 10)
	c := core.Character{Accessory: 2}
	drawChicken(s, core.NewRect(5, 3, 6, 4), 0, c, game.FacingLeft, false, 0)

	if got := s.GetCell(4, 3).Rune; got != '◀' {
		t.Errorf("beak = %q, expected left-facing beak", got)
	}
	if got := s.GetCell(5, 3).Rune; got != '■' {
		t.Errorf("eye = %q, expected glasses", got)
	}
	if got := s.GetCell(6, 2); got.Rune != '^' || got.Color != core.ColorRed {
		t.Errorf("comb = %+v, expected red ^", got)
	}
}

func TestItemGlyph(t *testing.T) {
	tests := []struct {
		name string
		want rune
	}{
		{"Golden Feather", '≈'},
		{"Silver Egg", '●'},
		{"Holy Hat", '♛'},
		{"Mystery", '*'},
	}
	for _, tc := range tests {
		if got, _ := itemGlyph(tc.name); got != tc.want {
			t.Errorf("itemGlyph(%q) = %q, expected %q", tc.name, got, tc.want)
		}
	}
}

func TestNewStarsDeterministic(t *testing.T) {
	a, b := newStars(42, 10), newStars(42, 10)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("star %d differs for the same seed: %+v vs %+v", i, a[i], b[i])
		}
		if a[i].fx < 0 || a[i].fx >= 1 || a[i].fy < 0 || a[i].fy >= 0.6 {
			t.Errorf("star %d out of range: %+v", i, a[i])
		}
	}
}

func TestDrawDebugOutlinesHitboxes(t *testing.T) {
	s := core.NewScreen(80, 21)
	snap := testSnapshot()
	drawPlaying(s, snap, nil, "")
	drawDebug(s, snap)

	// The platform spans columns 20..34 on row 16.
	for _, x := range []int{20, 34} {
		if got := s.GetCell(x, 16); got.Color != core.ColorRed {
			t.Errorf("platform outline at (%d, 16) = %+v, expected red", x, got)
		}
	}

	status := strings.Split(s.String(), "\n")[20]
	for _, want := range []string{"x=0.0", "y=360.0", "grounded=true", "tick=20"} {
		if !strings.Contains(status, want) {
			t.Errorf("status row = %q, expected %q", status, want)
		}
	}
}

func TestDrawDebugSkipsTinyWindow(t *testing.T) {
	s := core.NewScreen(8, 2)
	drawDebug(s, testSnapshot())
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("tiny window should stay blank, got %q", s.String())
	}
}
