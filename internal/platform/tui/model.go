package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/corgi-arcade/internal/core"
	"github.com/vovakirdan/corgi-arcade/internal/metrics"
	"github.com/vovakirdan/corgi-arcade/internal/registry"
	"github.com/vovakirdan/corgi-arcade/internal/screenshot"
	"github.com/vovakirdan/corgi-arcade/internal/storage"
)

// loggerSetter is implemented by games that log gameplay events.
type loggerSetter interface {
	SetLogger(*log.Logger)
}

// Options tunes a Model. The zero value is valid.
type Options struct {
	Logger        *log.Logger      // Nil discards
	Player        string           // Recorded with saved runs
	ScreenshotDir string           // Empty means ~/.corgi/screenshots
	Renderer      *ScreenRenderer  // Nil uses the process-wide renderer
	Now           func() time.Time // Clock for key presses; nil means time.Now
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keys       *KeyMapper
	hold       *KeyHold
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	started    time.Time
	err        error
	quitting   bool
	scoreSaved bool // Whether the run has been saved for current game over
}

// NewModel resets game for cfg and wraps it in a Bubble Tea model.
// Reset errors (bad config, missing sprites) are returned.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Renderer == nil {
		opts.Renderer = defaultScreenRenderer
	}
	if opts.Player == "" {
		opts.Player = storage.DefaultPlayer
	}

	if ls, ok := game.(loggerSetter); ok {
		ls.SetLogger(opts.Logger)
	}
	if err := game.Reset(cfg); err != nil {
		return Model{}, fmt.Errorf("tui: start %s: %w", game.ID(), err)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		logger:     opts.Logger,
		keys:       NewKeyMapper(),
		hold:       NewKeyHold(DefaultInitialHold, DefaultRepeatHold),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		started:    opts.Now(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey folds held keys into the tracker and queues one-shot actions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k, ok := m.keys.MapKey(msg); ok {
		m.hold.Press(k, m.opts.Now())
		return m, nil
	}

	switch action := m.keys.MapAction(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionPause:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize resizes the screen buffer. The world has a fixed size, so
// the session keeps running; games draw a notice when the screen is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if err := m.game.Reset(m.config); err != nil {
			m.logger.Error("restart failed", "game", m.game.ID(), "error", err)
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.started = now
		m.lastTick = now
		m.hold.ReleaseAll()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Zero dt on the first tick means the nominal tick length
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.hold.Expire(now)
	m.hold.Fill(&m.inputFrame.Keys)
	m.inputFrame.DT = dt

	stepStart := time.Now()
	result := m.game.Step(m.inputFrame)
	metrics.ObserveTick(time.Since(stepStart))
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.finishRun(now)
		m.scoreSaved = true
	}

	// Clear actions for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// finishRun records a finished game. Storage errors are logged and play continues.
func (m Model) finishRun(now time.Time) {
	st := m.gameState
	metrics.RecordGameFinished(st.Won, st.Score)
	m.logger.Info("run finished",
		"game", m.game.ID(),
		"player", m.opts.Player,
		"score", st.Score,
		"won", st.Won,
		"lives", st.Lives,
	)

	if m.store == nil || (st.Score <= 0 && !st.Won) {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		GameID:    m.game.ID(),
		Player:    m.opts.Player,
		Score:     st.Score,
		LivesLeft: st.Lives,
		Won:       st.Won,
		Duration:  now.Sub(m.started),
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot writes the current frame as text and PNG.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		d, err := screenshot.DefaultDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = d
	}

	base, err := screenshot.Capture(dir, m.game.ID(), m.screen, m.opts.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", base)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.opts.Renderer.Render(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model, err := NewModel(game, store, cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
