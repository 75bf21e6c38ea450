package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pecktopia/internal/config"
	"github.com/vovakirdan/pecktopia/internal/core"
	"github.com/vovakirdan/pecktopia/internal/level"
)

// CancelFunc cancels a scheduled callback. Calling it after the callback
// ran, or more than once, is a no-op.
type CancelFunc func()

// Scheduler runs fn once after delay on the loop's single thread.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) CancelFunc
}

// InputSource delivers input events on the loop's thread until the
// returned function is called.
type InputSource interface {
	Subscribe(fn func(core.InputEvent)) (unsubscribe func())
}

// RenderTarget draws snapshots. Ready reports whether it can accept one.
type RenderTarget interface {
	Ready() bool
	Render(Snapshot) error
}

// Completion describes the tick on which a level became complete.
type Completion struct {
	LevelID int
	Tick    uint64
	Items   []string
	Elapsed time.Duration // Simulated wall time since the first tick was scheduled
}

// Options configure a Loop. Scheduler and Target are required.
type Options struct {
	Config    config.Config
	Level     level.Level
	Character core.Character
	Scheduler Scheduler
	Input     InputSource
	Target    RenderTarget
	Now       func() time.Time
	Logger    *log.Logger

	OnPickup   func(name string)
	OnComplete func(Completion)
	OnFailure  func(error)
}

type loopState int

const (
	stateIdle loopState = iota
	statePolling
	stateRunning
	stateStopped
)

// Loop is the cooperative frame driver of one level attempt.
// All methods must be called from the scheduler's thread.
type Loop struct {
	opts     Options
	world    *World
	resolver *Resolver
	lvl      level.Level
	intents  intentState
	logger   *log.Logger

	interval      time.Duration
	readyInterval time.Duration
	frameMs       float64

	state       loopState
	attempts    int
	tick        uint64
	last        time.Time
	started     time.Time
	cancel      CancelFunc
	unsubscribe func()
}

// NewLoop validates opts and builds a loop for opts.Level.
// The level is owned by the loop from here on.
func NewLoop(opts Options) (*Loop, error) {
	if opts.Target == nil {
		return nil, &ConfigurationError{Reason: "render target", Err: ErrNoRenderTarget}
	}
	if opts.Scheduler == nil {
		return nil, &ConfigurationError{Reason: "no scheduler"}
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, &ConfigurationError{Reason: "invalid config", Err: err}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Config
	l := &Loop{
		opts:          opts,
		world:         NewWorld(cfg),
		resolver:      NewResolver(cfg.Canvas.Width, cfg.Canvas.Height),
		lvl:           opts.Level,
		logger:        logger.With("level", opts.Level.ID),
		interval:      time.Second / time.Duration(cfg.Loop.TickRate),
		readyInterval: time.Duration(cfg.Loop.ReadyIntervalMs) * time.Millisecond,
		frameMs:       cfg.Loop.NominalFrameMs,
	}
	l.resolver.Reset(&l.lvl)
	return l, nil
}

// Start polls the render target until it is ready, then begins ticking.
// If the target stays unready for the configured number of attempts a
// ConfigurationError is reported through OnFailure and no tick ever runs.
func (l *Loop) Start() error {
	if l.opts.Target == nil {
		return &ConfigurationError{Reason: "render target", Err: ErrNoRenderTarget}
	}
	if l.state != stateIdle {
		return errors.New("game: loop already started")
	}
	l.state = statePolling
	l.poll()
	return nil
}

func (l *Loop) poll() {
	l.cancel = nil
	if l.state != statePolling {
		return
	}
	if l.opts.Target.Ready() {
		l.begin()
		return
	}

	l.attempts++
	if l.attempts >= l.opts.Config.Loop.ReadyAttempts {
		l.fail(&ConfigurationError{
			Reason: fmt.Sprintf("render target not ready after %d attempts", l.attempts),
		})
		return
	}
	l.cancel = l.opts.Scheduler.Schedule(l.readyInterval, l.poll)
}

func (l *Loop) begin() {
	l.state = stateRunning
	if l.opts.Input != nil {
		l.unsubscribe = l.opts.Input.Subscribe(l.intents.apply)
	}
	l.last = l.opts.Now()
	l.started = l.last
	l.logger.Debug("loop started", "attempts", l.attempts+1)
	l.cancel = l.opts.Scheduler.Schedule(l.interval, l.step)
}

// step is one tick: clamp delta, read intents once, integrate, resolve,
// report completion, render, reschedule.
func (l *Loop) step() {
	l.cancel = nil
	if l.state != stateRunning {
		return
	}

	now := l.opts.Now()
	raw := float64(now.Sub(l.last)) / float64(time.Millisecond) / l.frameMs
	l.last = now
	l.tick++
	tick := l.tick

	var res Resolution
	err := guard(func() error {
		l.world.Step(l.intents.take(), raw)
		res = l.resolver.Resolve(&l.world.Player, &l.lvl)
		return nil
	})
	if err != nil {
		l.fail(&TickFailure{Tick: tick, Err: err})
		return
	}

	for _, name := range res.Collected {
		l.logger.Info("item collected", "item", name, "tick", tick)
		if l.opts.OnPickup != nil {
			l.opts.OnPickup(name)
		}
	}
	if res.Complete {
		done := Completion{
			LevelID: l.lvl.ID,
			Tick:    tick,
			Items:   l.lvl.CollectedNames(),
			Elapsed: now.Sub(l.started),
		}
		l.logger.Info("level complete", "tick", tick, "elapsed", done.Elapsed)
		if l.opts.OnComplete != nil {
			if err := guard(func() error { l.opts.OnComplete(done); return nil }); err != nil {
				l.fail(&TickFailure{Tick: tick, Err: err})
				return
			}
		}
	}
	// The completion callback may have stopped us.
	if l.state != stateRunning {
		return
	}

	snap := l.Snapshot()
	if err := guard(func() error { return l.opts.Target.Render(snap) }); err != nil {
		l.fail(&TickFailure{Tick: tick, Err: err})
		return
	}
	if l.state != stateRunning {
		return
	}
	l.cancel = l.opts.Scheduler.Schedule(l.interval, l.step)
}

// guard runs fn, converting a panic into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

func (l *Loop) fail(err error) {
	l.logger.Error("loop halted", "tick", l.tick, "error", err)
	l.Stop()
	if l.opts.OnFailure != nil {
		l.opts.OnFailure(err)
	}
}

// Stop cancels the pending tick and drops the input subscription.
// It is final and idempotent; no tick body runs after it returns.
func (l *Loop) Stop() {
	if l.state == stateStopped {
		return
	}
	l.state = stateStopped
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
	l.intents.reset()
}

// Running reports whether ticks are being scheduled.
func (l *Loop) Running() bool {
	return l.state == stateRunning
}

// Stopped reports whether Stop has been called or the loop halted.
func (l *Loop) Stopped() bool {
	return l.state == stateStopped
}

// Tick returns the number of ticks run so far.
func (l *Loop) Tick() uint64 {
	return l.tick
}

// Player returns a copy of the current player.
func (l *Loop) Player() Player {
	return l.world.Player
}

// Snapshot returns the current state for rendering.
func (l *Loop) Snapshot() Snapshot {
	cfg := l.opts.Config.Canvas
	return takeSnapshot(l.tick, l.world, &l.lvl, cfg.Width, cfg.Height, l.opts.Character)
}
