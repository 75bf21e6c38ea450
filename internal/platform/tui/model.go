// Package tui is the terminal front end of Pecktopia: a Bubble Tea model
// that hosts the game loop, draws snapshots and menus, and serves the
// same model over SSH.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/pecktopia/internal/audio"
	"github.com/vovakirdan/pecktopia/internal/config"
	"github.com/vovakirdan/pecktopia/internal/core"
	"github.com/vovakirdan/pecktopia/internal/game"
	"github.com/vovakirdan/pecktopia/internal/level"
	"github.com/vovakirdan/pecktopia/internal/session"
	"github.com/vovakirdan/pecktopia/internal/storage"
)

// previewInterval paces the designer's idle animation.
const previewInterval = time.Second / 20

// Options configure a Model. Catalog is required.
type Options struct {
	Config  config.Config
	Catalog *level.Catalog
	Store   *storage.Store // nil runs without persistence
	Chimes  audio.Chimes
	Logger  *log.Logger
	Owner   string
	Seed    int64
	Now     func() time.Time
	Debug   bool // Outline hitboxes and show the player's state
}

// Model is the Bubble Tea model for one player's session.
type Model struct {
	cfg     config.Config
	catalog *level.Catalog
	store   *storage.Store
	chimes  audio.Chimes
	logger  *log.Logger
	now     func() time.Time

	session *session.Machine
	keys    KeyMap
	help    help.Model
	frames  *frameScheduler

	loop    *game.Loop
	input   *keyInput
	snap    game.Snapshot
	hasSnap bool
	intro   string
	outro   string
	done    game.Completion

	screen *core.Screen
	width  int
	height int
	stars  []star

	designCursor  int
	temperament   progress.Model
	previewPhase  float64
	previewCancel game.CancelFunc

	records  *RecordsModel
	debug    bool
	quitting bool
}

// NewModel creates a session model on the title screen.
func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Chimes == nil {
		opts.Chimes = audio.Silent{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Seed == 0 {
		opts.Seed = opts.Now().UnixNano()
	}
	if opts.Owner == "" {
		opts.Owner = "local"
	}

	var chars session.CharacterStore
	if opts.Store != nil {
		chars = opts.Store
	}

	h := help.New()
	h.ShowAll = false

	return &Model{
		cfg:         opts.Config,
		catalog:     opts.Catalog,
		store:       opts.Store,
		chimes:      opts.Chimes,
		logger:      logger,
		now:         opts.Now,
		session:     session.New(opts.Owner, opts.Catalog.MaxLevel(), chars, logger),
		keys:        DefaultKeyMap(),
		help:        h,
		frames:      newFrameScheduler(),
		screen:      core.NewScreen(0, 0),
		stars:       newStars(opts.Seed, 40),
		temperament: progress.New(progress.WithDefaultGradient(), progress.WithWidth(22), progress.WithoutPercentage()),
		debug:       opts.Debug,
	}
}

// Session exposes the state machine, mainly for tests.
func (m *Model) Session() *session.Machine {
	return m.session
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)
	case FrameMsg:
		m.frames.Fire(msg)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}

	return m, tea.Batch(cmd, m.frames.Drain())
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	if m.records != nil {
		r, _ := m.records.Update(msg)
		rm := r.(RecordsModel)
		m.records = &rm
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return nil
	}

	if m.records != nil {
		r, cmd := m.records.Update(msg)
		rm := r.(RecordsModel)
		switch {
		case rm.IsQuitting():
			return m.quit()
		case rm.IsGoingBack():
			m.records = nil
		default:
			m.records = &rm
		}
		return cmd
	}

	if m.session.State() == session.StatePlaying {
		return m.handlePlayKey(msg)
	}

	action := m.keys.MenuAction(msg)
	if action == core.ActionQuit {
		return m.quit()
	}

	switch m.session.State() {
	case session.StateStart:
		switch action {
		case core.ActionConfirm:
			if m.transition(m.session.Customize()) {
				m.startPreview()
			}
		case core.ActionRecords:
			m.openRecords(1)
		}

	case session.StateDesign:
		m.handleDesignAction(action)

	case session.StateLevelComplete:
		if action == core.ActionConfirm && m.transition(m.session.Continue()) {
			m.startLevel()
		}

	case session.StateGameComplete:
		switch action {
		case core.ActionConfirm:
			m.transition(m.session.Restart())
		case core.ActionRecords:
			m.openRecords(m.session.MaxLevel())
		}
	}
	return nil
}

func (m *Model) handleDesignAction(action core.Action) {
	switch action {
	case core.ActionUp:
		m.designCursor = (m.designCursor - 1 + len(designRows)) % len(designRows)
	case core.ActionDown:
		m.designCursor = (m.designCursor + 1) % len(designRows)
	case core.ActionLeft, core.ActionRight:
		delta := 1
		if action == core.ActionLeft {
			delta = -1
		}
		c := cycleOption(m.session.Character(), m.designCursor, delta)
		if err := m.session.SetCharacter(c); err != nil {
			m.logger.Warn("character rejected", "error", err)
		}
	case core.ActionConfirm:
		if m.transition(m.session.StartGame()) {
			m.stopPreview()
			m.startLevel()
		}
	}
}

func (m *Model) handlePlayKey(msg tea.KeyMsg) tea.Cmd {
	action := m.keys.PlayAction(msg)
	switch action {
	case core.ActionQuit:
		return m.quit()
	case core.ActionRestart:
		if m.session.Message() != "" {
			m.session.ClearMessage()
			m.startLevel()
		}
	case core.ActionNone:
	default:
		if m.input != nil {
			m.input.Press(action)
		}
	}
	return nil
}

// transition logs a rejected session event and reports success.
func (m *Model) transition(err error) bool {
	if err != nil {
		m.logger.Debug("event rejected", "error", err)
		return false
	}
	return true
}

// startLevel builds a fresh attempt at the session's current level.
func (m *Model) startLevel() {
	m.stopLoop()

	id := m.session.Level()
	lvl, err := m.catalog.Lookup(id)
	if err != nil {
		m.logger.Warn("playing an empty level", "level", id, "error", err)
	}
	m.intro, m.outro = lvl.Intro, lvl.CompleteMessage
	m.hasSnap = false

	m.input = newKeyInput(m.frames,
		time.Duration(m.cfg.Input.HoldMs)*time.Millisecond,
		time.Duration(m.cfg.Input.RepeatHoldMs)*time.Millisecond)
	loop, err := game.NewLoop(game.Options{
		Config:     m.cfg,
		Level:      lvl,
		Character:  m.session.Character(),
		Scheduler:  m.frames,
		Input:      m.input,
		Target:     snapshotTarget{m},
		Now:        m.now,
		Logger:     m.logger,
		OnPickup:   m.onPickup,
		OnComplete: m.onComplete,
		OnFailure:  m.session.Fail,
	})
	if err != nil {
		m.session.Fail(err)
		return
	}
	m.loop = loop
	if err := loop.Start(); err != nil {
		m.session.Fail(err)
	}
}

func (m *Model) stopLoop() {
	if m.loop != nil {
		m.loop.Stop()
		m.loop = nil
	}
}

func (m *Model) onPickup(string) {
	m.chimes.Pickup()
}

func (m *Model) onComplete(done game.Completion) {
	if !m.session.Complete(done.Tick, done.Items) {
		return
	}
	m.done = done
	m.stopLoop()
	m.chimes.LevelComplete()

	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.RunEntry{
		Owner:    m.session.Owner(),
		LevelID:  done.LevelID,
		Ticks:    done.Tick,
		Duration: done.Elapsed,
		Items:    done.Items,
	})
	if err != nil {
		m.logger.Warn("could not save run", "level", done.LevelID, "error", err)
	}
}

func (m *Model) startPreview() {
	m.stopPreview()
	m.previewCancel = m.frames.Schedule(previewInterval, m.animatePreview)
}

func (m *Model) stopPreview() {
	if m.previewCancel != nil {
		m.previewCancel()
		m.previewCancel = nil
	}
}

func (m *Model) animatePreview() {
	m.previewCancel = nil
	if m.session.State() != session.StateDesign {
		return
	}
	m.previewPhase += m.session.Character().AnimSpeed()
	m.previewCancel = m.frames.Schedule(previewInterval, m.animatePreview)
}

func (m *Model) openRecords(levelID int) {
	r := NewRecordsModel(m.store, m.catalog, levelID, m.width, m.height)
	m.records = &r
}

func (m *Model) quit() tea.Cmd {
	m.stopLoop()
	m.stopPreview()
	m.frames.CancelAll()
	m.quitting = true
	return tea.Quit
}

// Close stops any running level. Safe to call more than once.
func (m *Model) Close() {
	m.stopLoop()
	m.stopPreview()
}

// saveScreenshot writes the current view as plain text.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".pecktopia", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pecktopia_level%d_%s.txt", m.session.Level(), timestamp))
	if err := os.WriteFile(path, []byte(m.screenshotText()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// screenshotText is the current view without styling. A level in
// progress is taken straight from the cell buffer.
func (m *Model) screenshotText() string {
	if m.records == nil && m.session.State() == session.StatePlaying && m.width > 0 {
		m.renderPlaying()
		return m.screen.String()
	}
	return ansi.Strip(m.View())
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}
	if m.records != nil {
		return m.records.View()
	}

	var body string
	var bindings []key.Binding
	c := m.session.Character()

	switch m.session.State() {
	case session.StateStart:
		body = renderTitle(m.width, m.height, c, m.session.Message())
		bindings = []key.Binding{m.keys.Confirm, m.keys.Records, m.keys.Quit}
	case session.StateDesign:
		body = renderDesigner(m.width, m.height, c, m.designCursor, m.temperament, m.previewPhase)
		bindings = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Confirm, m.keys.Quit}
	case session.StatePlaying:
		body = m.renderPlaying()
		bindings = []key.Binding{m.keys.Left, m.keys.Right, m.keys.Jump, m.keys.Stop, m.keys.Quit}
		if m.session.Message() != "" {
			bindings = []key.Binding{m.keys.Retry, m.keys.Quit}
		}
	case session.StateLevelComplete:
		body = renderLevelComplete(m.width, m.height, m.session.Level(), m.outro, m.done)
		bindings = []key.Binding{m.keys.Confirm, m.keys.Quit}
	case session.StateGameComplete:
		body = renderGameComplete(m.width, m.height, m.session.Collected())
		bindings = []key.Binding{m.keys.Confirm, m.keys.Records, m.keys.Quit}
	}

	return body + "\n" + m.help.ShortHelpView(bindings)
}

func (m *Model) renderPlaying() string {
	snap := m.snap
	if !m.hasSnap && m.loop != nil {
		snap = m.loop.Snapshot()
	}

	banner := ""
	switch {
	case m.session.Message() != "":
		banner = m.session.Message() + "\nPress r to retry"
	case m.loop == nil:
	case snap.Tick < introTicks && m.intro != "":
		banner = m.intro
	}

	drawPlaying(m.screen, snap, m.stars, banner)
	if m.debug {
		drawDebug(m.screen, snap)
	}
	return RenderScreen(m.screen)
}

// snapshotTarget is the loop's render target. Drawing happens in View;
// the target only keeps the latest snapshot.
type snapshotTarget struct {
	m *Model
}

func (t snapshotTarget) Ready() bool {
	return t.m.width > 0 && t.m.height > 1
}

func (t snapshotTarget) Render(s game.Snapshot) error {
	t.m.snap = s
	t.m.hasSnap = true
	return nil
}

// Run starts the game in the current terminal and blocks until the
// player quits.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
