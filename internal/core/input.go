package core

// Action represents a semantic front-end action, abstracted from physical
// key presses. Menus and screens consume actions; the simulation consumes
// InputEvents.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, k - previous menu row
	ActionDown           // S, Down arrow, j - next menu row
	ActionLeft           // A, Left arrow, h - move left / previous option
	ActionRight          // D, Right arrow, l - move right / next option
	ActionJump           // Space, W, Up - jump while playing
	ActionStop           // S, Down - release movement while playing
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - retry after a failure
	ActionRecords        // Tab - records board
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionStop:
		return "Stop"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionRecords:
		return "Records"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputEvent is a discrete signal crossing the input boundary into the
// simulation. Movement is level-triggered (start/end pairs); jump is
// edge-triggered.
type InputEvent int

const (
	MoveLeftStart InputEvent = iota + 1
	MoveLeftEnd
	MoveRightStart
	MoveRightEnd
	JumpRequested
)

// String returns a human-readable name for the event.
func (e InputEvent) String() string {
	switch e {
	case MoveLeftStart:
		return "MoveLeftStart"
	case MoveLeftEnd:
		return "MoveLeftEnd"
	case MoveRightStart:
		return "MoveRightStart"
	case MoveRightEnd:
		return "MoveRightEnd"
	case JumpRequested:
		return "JumpRequested"
	default:
		return "Unknown"
	}
}
