package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pecktopia/internal/game"
)

// FrameMsg fires a callback registered with the frame scheduler.
type FrameMsg struct {
	ID uint64
}

// frameScheduler implements game.Scheduler on top of tea.Tick.
// Callbacks run inside Update, so the loop and the key input share
// Bubble Tea's single goroutine. Cancelled frames still arrive as
// messages but find nothing to run.
type frameScheduler struct {
	next    uint64
	pending map[uint64]func()
	queued  []tea.Cmd
}

func newFrameScheduler() *frameScheduler {
	return &frameScheduler{pending: make(map[uint64]func())}
}

// Schedule registers fn to run delay from now. The timer command is
// queued until the next Drain.
func (f *frameScheduler) Schedule(delay time.Duration, fn func()) game.CancelFunc {
	f.next++
	id := f.next
	f.pending[id] = fn
	f.queued = append(f.queued, frameCmd(id, delay))
	return func() { delete(f.pending, id) }
}

// Fire runs the callback for msg if it is still pending.
func (f *frameScheduler) Fire(msg FrameMsg) {
	fn, ok := f.pending[msg.ID]
	if !ok {
		return
	}
	delete(f.pending, msg.ID)
	fn()
}

// Drain returns the timer commands queued since the last call.
func (f *frameScheduler) Drain() tea.Cmd {
	if len(f.queued) == 0 {
		return nil
	}
	cmds := f.queued
	f.queued = nil
	return tea.Batch(cmds...)
}

// Pending returns the number of callbacks waiting to fire.
func (f *frameScheduler) Pending() int {
	return len(f.pending)
}

// CancelAll drops every pending callback.
func (f *frameScheduler) CancelAll() {
	clear(f.pending)
	f.queued = nil
}

// frameCmd returns a command that delivers FrameMsg{id} after delay.
func frameCmd(id uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return FrameMsg{ID: id}
	})
}
