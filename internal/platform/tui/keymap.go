package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pecktopia/internal/core"
	"github.com/vovakirdan/pecktopia/internal/game"
)

// KeyMap holds every key binding of the game screens.
// Menus and play share physical keys, so they map through different
// binding sets.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Stop       key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Retry      key.Binding
	Records    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("left/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("right/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up", "jump"),
		),
		Stop: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "stop"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Records: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "records"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuAction translates a key on a menu screen to an action.
func (k KeyMap) MenuAction(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Confirm), msg.String() == " ":
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Records):
		return core.ActionRecords
	}
	return core.ActionNone
}

// PlayAction translates a key during a level to an action.
func (k KeyMap) PlayAction(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Stop):
		return core.ActionStop
	case key.Matches(msg, k.Retry):
		return core.ActionRestart
	}
	return core.ActionNone
}

// keyInput turns key presses into simulation input events.
//
// Terminals report presses and auto-repeats but never releases, so a
// held direction ends after its hold window passes without a repeat,
// when the opposite direction is pressed, or on the stop key. A fresh
// press gets the long window since the first repeat arrives late.
type keyInput struct {
	sched      game.Scheduler
	hold       time.Duration
	repeatHold time.Duration
	emit       func(core.InputEvent)

	left, right bool
	cancel      game.CancelFunc
}

func newKeyInput(sched game.Scheduler, hold, repeatHold time.Duration) *keyInput {
	return &keyInput{sched: sched, hold: hold, repeatHold: repeatHold}
}

// Subscribe implements game.InputSource.
func (k *keyInput) Subscribe(fn func(core.InputEvent)) func() {
	k.emit = fn
	return func() {
		k.disarm()
		k.left, k.right = false, false
		k.emit = nil
	}
}

// Press feeds one play action into the source.
func (k *keyInput) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		if k.right {
			k.right = false
			k.send(core.MoveRightEnd)
		}
		if k.left {
			k.arm(k.repeatHold)
			return
		}
		k.left = true
		k.send(core.MoveLeftStart)
		k.arm(k.hold)
	case core.ActionRight:
		if k.left {
			k.left = false
			k.send(core.MoveLeftEnd)
		}
		if k.right {
			k.arm(k.repeatHold)
			return
		}
		k.right = true
		k.send(core.MoveRightStart)
		k.arm(k.hold)
	case core.ActionJump:
		k.send(core.JumpRequested)
	case core.ActionStop:
		k.disarm()
		k.release()
	}
}

// Held reports which directions are currently held.
func (k *keyInput) Held() (left, right bool) {
	return k.left, k.right
}

func (k *keyInput) arm(d time.Duration) {
	k.disarm()
	k.cancel = k.sched.Schedule(d, func() {
		k.cancel = nil
		k.release()
	})
}

func (k *keyInput) disarm() {
	if k.cancel != nil {
		k.cancel()
		k.cancel = nil
	}
}

func (k *keyInput) release() {
	if k.left {
		k.left = false
		k.send(core.MoveLeftEnd)
	}
	if k.right {
		k.right = false
		k.send(core.MoveRightEnd)
	}
}

func (k *keyInput) send(e core.InputEvent) {
	if k.emit != nil {
		k.emit(e)
	}
}
