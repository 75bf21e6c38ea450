// Package session sequences the screens of a Pecktopia run:
// title, chicken designer, levels and the final celebration.
package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pecktopia/internal/core"
)

// State is the current screen of a session.
type State int

const (
	StateStart State = iota
	StateDesign
	StatePlaying
	StateLevelComplete
	StateGameComplete
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateDesign:
		return "Design"
	case StatePlaying:
		return "Playing"
	case StateLevelComplete:
		return "LevelComplete"
	case StateGameComplete:
		return "GameComplete"
	default:
		return "Unknown"
	}
}

// CharacterStore persists the cosmetic character per owner.
type CharacterStore interface {
	LoadCharacter(owner string) (core.Character, bool, error)
	SaveCharacter(owner string, c core.Character) error
}

// TransitionError is returned for a user event the current state does
// not accept. The machine is left unchanged.
type TransitionError struct {
	From  State
	Event string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("session: cannot %s from %s", e.Event, e.From)
}

// Machine is the session state machine. It is not safe for concurrent
// use; the front end drives it from its update loop.
type Machine struct {
	state     State
	level     int
	maxLevel  int
	collected []string
	character core.Character
	message   string

	owner  string
	store  CharacterStore
	logger *log.Logger
}

// New creates a session on the title screen and loads the owner's saved
// character. A missing record or a store error leaves the default one.
func New(owner string, maxLevel int, store CharacterStore, logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Machine{
		state:     StateStart,
		level:     1,
		maxLevel:  maxLevel,
		character: core.DefaultCharacter(),
		owner:     owner,
		store:     store,
		logger:    logger.With("owner", owner),
	}

	if store != nil {
		c, ok, err := store.LoadCharacter(owner)
		switch {
		case err != nil:
			m.logger.Warn("could not load character", "error", err)
		case ok:
			m.character = c.Clamp()
		}
	}
	return m
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Level returns the current level index, starting at 1.
func (m *Machine) Level() int { return m.level }

// MaxLevel returns the index of the final level.
func (m *Machine) MaxLevel() int { return m.maxLevel }

// Character returns the current cosmetic character.
func (m *Machine) Character() core.Character { return m.character }

// Owner returns the name the character is saved under.
func (m *Machine) Owner() string { return m.owner }

// Message returns the user-visible message, if any.
func (m *Machine) Message() string { return m.message }

// Collected returns every item collected this run, in pickup order.
func (m *Machine) Collected() []string {
	return append([]string(nil), m.collected...)
}

// Customize opens the designer from the title screen.
func (m *Machine) Customize() error {
	if m.state != StateStart {
		return &TransitionError{From: m.state, Event: "customize"}
	}
	m.state = StateDesign
	return nil
}

// SetCharacter replaces the character while in the designer.
func (m *Machine) SetCharacter(c core.Character) error {
	if m.state != StateDesign {
		return &TransitionError{From: m.state, Event: "edit character"}
	}
	if err := c.Validate(); err != nil {
		return err
	}
	m.character = c
	return nil
}

// StartGame commits the character and enters the first level.
func (m *Machine) StartGame() error {
	if m.state != StateDesign {
		return &TransitionError{From: m.state, Event: "start game"}
	}
	m.level = 1
	m.enterPlaying()
	return nil
}

// Complete consumes a level-complete signal raised on tick. It returns
// true if it caused a transition; signals outside Playing, or repeated
// after the transition, are ignored.
func (m *Machine) Complete(tick uint64, items []string) bool {
	if m.state != StatePlaying {
		m.logger.Debug("completion ignored", "state", m.state, "tick", tick)
		return false
	}
	m.collected = append(m.collected, items...)
	if m.level >= m.maxLevel {
		m.state = StateGameComplete
	} else {
		m.state = StateLevelComplete
	}
	m.logger.Info("level complete", "level", m.level, "tick", tick, "next", m.state)
	return true
}

// Continue moves from a completed level to the next one.
func (m *Machine) Continue() error {
	if m.state != StateLevelComplete {
		return &TransitionError{From: m.state, Event: "continue"}
	}
	m.level++
	m.enterPlaying()
	return nil
}

// Restart returns to the title screen after the final level and clears
// the run's progress.
func (m *Machine) Restart() error {
	if m.state != StateGameComplete {
		return &TransitionError{From: m.state, Event: "restart"}
	}
	m.state = StateStart
	m.level = 1
	m.collected = nil
	m.message = ""
	return nil
}

// Fail records a user-visible message for a failed level attempt.
// The state is unchanged.
func (m *Machine) Fail(err error) {
	if err == nil {
		return
	}
	m.logger.Error("level attempt failed", "level", m.level, "error", err)
	m.message = fmt.Sprintf("Something went wrong: %v", err)
}

// ClearMessage drops the current message, e.g. when retrying.
func (m *Machine) ClearMessage() {
	m.message = ""
}

func (m *Machine) enterPlaying() {
	m.state = StatePlaying
	m.message = ""
	if m.store == nil {
		return
	}
	if err := m.store.SaveCharacter(m.owner, m.character); err != nil {
		m.logger.Warn("could not save character", "error", err)
	}
}
