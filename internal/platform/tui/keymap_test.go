package tui

import (
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pecktopia/internal/core"
	"github.com/vovakirdan/pecktopia/internal/game"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapPlayAction(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey("a"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey("d"), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionJump},
		{"up arrow jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"down arrow stops", tea.KeyMsg{Type: tea.KeyDown}, core.ActionStop},
		{"r", runeKey("r"), core.ActionRestart},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("z"), core.ActionNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.PlayAction(tc.msg); got != tc.expected {
				t.Errorf("PlayAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapMenuAction(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"k", runeKey("k"), core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionRecords},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"q", runeKey("q"), core.ActionQuit},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MenuAction(tc.msg); got != tc.expected {
				t.Errorf("MenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

// recordInput subscribes to k and collects every event it emits.
func recordInput(k *keyInput) (*[]core.InputEvent, func()) {
	var events []core.InputEvent
	unsubscribe := k.Subscribe(func(e core.InputEvent) { events = append(events, e) })
	return &events, unsubscribe
}

func TestKeyInputHoldWindow(t *testing.T) {
	f := newFrameScheduler()
	k := newKeyInput(f, 550*time.Millisecond, 150*time.Millisecond)
	events, _ := recordInput(k)

	k.Press(core.ActionRight)
	k.Press(core.ActionRight) // auto-repeat
	if want := []core.InputEvent{core.MoveRightStart}; !slices.Equal(*events, want) {
		t.Fatalf("events = %v, expected %v", *events, want)
	}
	if f.Pending() != 1 {
		t.Fatalf("a repeat should re-arm a single release, Pending() = %d", f.Pending())
	}

	fireAll(f)
	want := []core.InputEvent{core.MoveRightStart, core.MoveRightEnd}
	if !slices.Equal(*events, want) {
		t.Errorf("events = %v, expected %v", *events, want)
	}
	if left, right := k.Held(); left || right {
		t.Errorf("Held() = %v, %v after release", left, right)
	}
}

// delayScheduler records the delay of every scheduled callback.
type delayScheduler struct {
	delays []time.Duration
}

func (d *delayScheduler) Schedule(delay time.Duration, _ func()) game.CancelFunc {
	d.delays = append(d.delays, delay)
	return func() {}
}

func TestKeyInputFirstPressOutlastsRepeatDelay(t *testing.T) {
	sched := &delayScheduler{}
	k := newKeyInput(sched, 550*time.Millisecond, 150*time.Millisecond)
	k.Subscribe(func(core.InputEvent) {})

	k.Press(core.ActionLeft)
	k.Press(core.ActionLeft)
	k.Press(core.ActionLeft)
	k.Press(core.ActionRight)

	want := []time.Duration{550 * time.Millisecond, 150 * time.Millisecond, 150 * time.Millisecond, 550 * time.Millisecond}
	if !slices.Equal(sched.delays, want) {
		t.Errorf("hold windows = %v, expected %v", sched.delays, want)
	}
}

func TestKeyInputOppositeDirection(t *testing.T) {
	f := newFrameScheduler()
	k := newKeyInput(f, time.Second, time.Second)
	events, _ := recordInput(k)

	k.Press(core.ActionRight)
	k.Press(core.ActionLeft)

	want := []core.InputEvent{core.MoveRightStart, core.MoveRightEnd, core.MoveLeftStart}
	if !slices.Equal(*events, want) {
		t.Errorf("events = %v, expected %v", *events, want)
	}
	if left, right := k.Held(); !left || right {
		t.Errorf("Held() = %v, %v, expected left only", left, right)
	}
}

func TestKeyInputStopAndJump(t *testing.T) {
	f := newFrameScheduler()
	k := newKeyInput(f, time.Second, time.Second)
	events, _ := recordInput(k)

	k.Press(core.ActionLeft)
	k.Press(core.ActionJump)
	k.Press(core.ActionStop)
	k.Press(core.ActionStop)

	want := []core.InputEvent{core.MoveLeftStart, core.JumpRequested, core.MoveLeftEnd}
	if !slices.Equal(*events, want) {
		t.Errorf("events = %v, expected %v", *events, want)
	}
	if f.Pending() != 0 {
		t.Errorf("stop should cancel the release timer, Pending() = %d", f.Pending())
	}
}

func TestKeyInputUnsubscribe(t *testing.T) {
	f := newFrameScheduler()
	k := newKeyInput(f, time.Second, time.Second)
	events, unsubscribe := recordInput(k)

	k.Press(core.ActionRight)
	unsubscribe()
	k.Press(core.ActionJump)
	fireAll(f)

	want := []core.InputEvent{core.MoveRightStart}
	if !slices.Equal(*events, want) {
		t.Errorf("events = %v, expected %v", *events, want)
	}
	if f.Pending() != 0 {
		t.Errorf("unsubscribe should cancel the release timer, Pending() = %d", f.Pending())
	}
}
