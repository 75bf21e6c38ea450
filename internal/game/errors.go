package game

import (
	"errors"
	"fmt"
)

// ErrNoRenderTarget is wrapped by the ConfigurationError returned when a
// loop is built without somewhere to draw.
var ErrNoRenderTarget = errors.New("no render target")

// ConfigurationError means the loop could not start. It never ticks.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("game: cannot start loop: %s: %v", e.Reason, e.Err)
	}
	return "game: cannot start loop: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// TickFailure is a fault raised inside one tick. The loop halts after
// reporting it and does not retry the tick.
type TickFailure struct {
	Tick uint64
	Err  error
}

func (e *TickFailure) Error() string {
	return fmt.Sprintf("game: tick %d failed: %v", e.Tick, e.Err)
}

func (e *TickFailure) Unwrap() error {
	return e.Err
}
