package tui

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/vovakirdan/pecktopia/internal/core"
	"github.com/vovakirdan/pecktopia/internal/game"
	"github.com/vovakirdan/pecktopia/internal/level"
)

// introTicks is how long the level intro banner stays up.
const introTicks = 150

// star is a temple sky decoration in canvas fractions.
type star struct {
	fx, fy float64
	phase  int
}

func newStars(seed int64, n int) []star {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
	stars := make([]star, n)
	for i := range stars {
		stars[i] = star{
			fx:    rng.Float64(),
			fy:    rng.Float64() * 0.6,
			phase: rng.IntN(60),
		}
	}
	return stars
}

// scene draws one snapshot: HUD on row 0, the canvas below it.
type scene struct {
	screen *core.Screen
	area   core.Rect
	snap   game.Snapshot
}

func newScene(s *core.Screen, snap game.Snapshot) scene {
	return scene{
		screen: s,
		area:   core.NewRect(0, 1, s.Width(), s.Height()-1),
		snap:   snap,
	}
}

// project maps a canvas box into the scene area.
func (sc scene) project(b core.Box) core.Rect {
	r := b.Project(sc.snap.CanvasW, sc.snap.CanvasH, sc.area.W, sc.area.H)
	r.X += sc.area.X
	r.Y += sc.area.Y
	return r
}

// drawPlaying renders a level in progress.
func drawPlaying(s *core.Screen, snap game.Snapshot, stars []star, banner string) {
	s.Clear()
	if s.Height() < 3 || s.Width() < 10 {
		s.DrawText(0, 0, "window too small")
		return
	}
	sc := newScene(s, snap)
	if snap.CanvasW > 0 && snap.CanvasH > 0 {
		sc.background(stars)
		sc.platforms()
		sc.items()
		sc.chicken()
		sc.hud()
	}
	if banner != "" {
		sc.banner(banner)
	}
}

func (sc scene) background(stars []star) {
	s, a := sc.screen, sc.area
	tick := int(sc.snap.Tick)

	switch sc.snap.Background {
	case level.BackgroundCoop:
		for y := a.Y + 3; y < a.Bottom()-1; y += 4 {
			s.DrawHLine(a.X+1, y, a.W-2, '─', core.ColorBrown)
		}
		s.DrawVLine(a.X, a.Y, a.H, '║', core.ColorBrown)
		s.DrawVLine(a.Right()-1, a.Y, a.H, '║', core.ColorBrown)
		s.DrawHLine(a.X, a.Bottom()-1, a.W, '▒', core.ColorYellow)

	case level.BackgroundFarmyard:
		s.DrawTextColored(a.Right()-6, a.Y+1, "\\|/", core.ColorYellow)
		s.DrawTextColored(a.Right()-6, a.Y+2, "-O-", core.ColorYellow)
		for i, base := range []int{5, 30, 55} {
			x := a.X + (base+tick/40+i*7)%core.Max(a.W, 1)
			s.DrawTextColored(x, a.Y+1+i%2, "~~~~", core.ColorSkyBlue)
		}
		fence := a.Bottom() - 3
		if fence > a.Y {
			for x := a.X; x < a.Right(); x++ {
				r := '─'
				if (x-a.X)%6 == 0 {
					r = '┼'
				}
				s.SetColored(x, fence, r, core.ColorBrown)
			}
		}
		s.DrawHLine(a.X, a.Bottom()-1, a.W, '"', core.ColorGreen)

	case level.BackgroundTemple:
		for _, st := range stars {
			x := a.X + int(st.fx*float64(a.W))
			y := a.Y + int(st.fy*float64(a.H))
			r, c := '.', core.ColorWhite
			if (tick+st.phase)%60 < 20 {
				r, c = '*', core.ColorGold
			}
			s.SetColored(x, y, r, c)
		}
		for _, x := range []int{a.X + 1, a.Right() - 2} {
			s.DrawVLine(x, a.Y+1, a.H-2, '║', core.ColorSilver)
			s.SetColored(x, a.Y, '╦', core.ColorGold)
		}
		s.DrawHLine(a.X, a.Bottom()-1, a.W, '▓', core.ColorGray)
	}
}

func (sc scene) platforms() {
	fill, color := '█', core.ColorBrown
	switch sc.snap.Background {
	case level.BackgroundFarmyard:
		color = core.ColorGreen
	case level.BackgroundTemple:
		fill, color = '▓', core.ColorSilver
	}
	for _, p := range sc.snap.Platforms {
		sc.screen.DrawRect(sc.project(p), fill, color)
	}
}

// itemGlyph picks a rune and color for a collectible by its name.
func itemGlyph(name string) (rune, core.Color) {
	switch {
	case strings.Contains(name, "Feather"):
		return '≈', core.ColorGold
	case strings.Contains(name, "Egg"):
		return '●', core.ColorSilver
	case strings.Contains(name, "Hat"):
		return '♛', core.ColorPurple
	default:
		return '*', core.ColorYellow
	}
}

func (sc scene) items() {
	shimmer := sc.snap.Tick/15%2 == 0
	for _, it := range sc.snap.Items {
		r, c := itemGlyph(it.Name)
		if shimmer {
			c = core.ColorBrightWhite
		}
		sc.screen.DrawRect(sc.project(it.Box), r, c)
	}
}

func (sc scene) chicken() {
	snap := sc.snap
	phase := float64(snap.Tick) * snap.Character.AnimSpeed()
	drawChicken(sc.screen, sc.project(snap.Player), sc.area.Y, snap.Character, snap.Facing, !snap.Grounded, phase)
}

func (sc scene) hud() {
	snap := sc.snap
	total := len(snap.Items) + len(snap.Collected)
	left := fmt.Sprintf(" Level %d: %s", snap.LevelID, snap.LevelName)
	right := fmt.Sprintf("Items %d/%d ", len(snap.Collected), total)
	if len(snap.Collected) > 0 {
		right = strings.Join(snap.Collected, ", ") + " | " + right
	}
	sc.screen.DrawHLine(0, 0, sc.screen.Width(), ' ', core.ColorDefault)
	sc.screen.DrawTextColored(0, 0, left, core.ColorBrightWhite)
	sc.screen.DrawTextColored(sc.screen.Width()-len([]rune(right)), 0, right, core.ColorGold)
}

// banner draws a boxed message in the middle of the scene.
func (sc scene) banner(text string) {
	lines := strings.Split(text, "\n")
	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	w = core.Min(w+4, sc.area.W)
	h := len(lines) + 2
	r := core.NewRect(sc.area.X+(sc.area.W-w)/2, sc.area.Y+(sc.area.H-h)/2, w, h)
	sc.screen.DrawRect(r, ' ', core.ColorDefault)
	sc.screen.DrawBox(r, core.ColorGold)
	for i, l := range lines {
		sc.screen.DrawTextCentered(r.Y+1+i, l, core.ColorBrightWhite)
	}
}

// drawChicken draws the character into r. Nothing is drawn above top.
// phase drives the wing flap while airborne.
func drawChicken(s *core.Screen, r core.Rect, top int, c core.Character, facing game.Direction, airborne bool, phase float64) {
	pal := c.Palette()
	s.DrawRect(r, '█', pal.Primary)

	front, back := r.Right()-1, r.X
	beak, beakRune := r.Right(), '▶'
	if facing == game.FacingLeft {
		front, back = r.X, r.Right()-1
		beak, beakRune = r.X-1, '◀'
	}

	// Head: the front half of the top row.
	headW := core.Max(r.W/2, 1)
	headX := front - headW + 1
	if facing == game.FacingLeft {
		headX = front
	}
	s.DrawHLine(headX, r.Y, headW, '█', pal.Secondary)
	if r.Y-1 >= top {
		s.SetColored(headX+headW/2, r.Y-1, '^', core.ColorRed)
	}
	s.SetColored(beak, r.Y, beakRune, pal.Tertiary)

	eye := [core.OptionCount]rune{'o', '0', '-'}[core.Clamp(c.EyeType, 0, core.OptionCount-1)]
	eyeColor := core.ColorBrightWhite
	if c.Accessory == 2 {
		eye, eyeColor = '■', core.ColorGray
	}
	s.SetColored(front, r.Y, eye, eyeColor)

	if r.H < 2 {
		return
	}
	mid := r.Y + r.H/2
	if r.H == 2 {
		mid = r.Y + 1
	}

	switch c.Pattern {
	case 0:
		s.SetColored(r.X+r.W/2, mid, '♦', pal.Secondary)
	case 1:
		for x := r.X; x < r.Right(); x += 2 {
			s.SetColored(x, mid, '✦', pal.Tertiary)
		}
	case 2:
		s.DrawHLine(r.X, mid, r.W, '=', pal.Secondary)
	}

	wing := [core.OptionCount]rune{'<', '}', 'V'}[core.Clamp(c.WingStyle, 0, core.OptionCount-1)]
	if facing == game.FacingLeft && c.WingStyle != 2 {
		wing = map[rune]rune{'<': '>', '}': '{'}[wing]
	}
	if airborne && int(math.Floor(phase*4))%2 == 1 {
		wing = '^'
	}
	s.SetColored(back, mid, wing, pal.Tertiary)

	if c.Accessory == 1 {
		s.SetColored(front, r.Y+1, '⋈', core.ColorRed)
	}

	if r.H >= 3 && r.W >= 3 {
		y := r.Bottom() - 1
		s.SetColored(r.X+r.W/3, y, '╨', pal.Tertiary)
		s.SetColored(r.X+2*r.W/3, y, '╨', pal.Tertiary)
	}
}

// drawDebug outlines every hitbox and prints the player's state on the
// bottom row.
func drawDebug(s *core.Screen, snap game.Snapshot) {
	if s.Height() < 3 || s.Width() < 10 || snap.CanvasW <= 0 || snap.CanvasH <= 0 {
		return
	}
	sc := newScene(s, snap)
	for _, p := range snap.Platforms {
		s.DrawBox(sc.project(p), core.ColorRed)
	}
	for _, it := range snap.Items {
		s.DrawBox(sc.project(it.Box), core.ColorGreen)
	}
	s.DrawBox(sc.project(snap.Player), core.ColorCyan)

	status := fmt.Sprintf(" x=%.1f y=%.1f vx=%.2f vy=%.2f grounded=%t tick=%d ",
		snap.Player.X, snap.Player.Y, snap.VX, snap.VY, snap.Grounded, snap.Tick)
	s.DrawHLine(0, s.Height()-1, s.Width(), ' ', core.ColorDefault)
	s.DrawTextColored(0, s.Height()-1, status, core.ColorBrightWhite)
}
