package game

import "github.com/vovakirdan/pecktopia/internal/core"

// Intents is the movement requested for one tick.
type Intents struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
}

// intentState accumulates input events between ticks.
// Movement flags are held until their End event; a jump request waits
// for the next tick and is then consumed whether or not it fired.
type intentState struct {
	cur Intents
}

// apply folds one input event into the pending intents.
func (s *intentState) apply(ev core.InputEvent) {
	switch ev {
	case core.MoveLeftStart:
		s.cur.MoveLeft = true
	case core.MoveLeftEnd:
		s.cur.MoveLeft = false
	case core.MoveRightStart:
		s.cur.MoveRight = true
	case core.MoveRightEnd:
		s.cur.MoveRight = false
	case core.JumpRequested:
		s.cur.Jump = true
	}
}

// take returns the intents for this tick and clears the jump request.
func (s *intentState) take() Intents {
	in := s.cur
	s.cur.Jump = false
	return in
}

// reset drops every held intent.
func (s *intentState) reset() {
	s.cur = Intents{}
}
