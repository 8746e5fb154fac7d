package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilerush/internal/core"
	"github.com/vovakirdan/tilerush/internal/games/rush"
	"github.com/vovakirdan/tilerush/internal/registry"
	"github.com/vovakirdan/tilerush/internal/storage"
)

// Optional game capabilities the platform wires up when present. The
// registry interface stays minimal; rulesets opt in by implementing these.
type (
	// bestSetter receives the persisted high score after each reset.
	bestSetter interface{ SetBest(score int) }

	// cellLocator maps screen coordinates to a board cell, for mouse taps.
	cellLocator interface {
		CellAtScreen(x, y int) (int, bool)
	}

	// resulter exposes the terminal result of a finished game.
	resulter interface {
		Result() (rush.GameResult, bool)
	}

	// summarizer exposes running totals, saved when a game is abandoned
	// mid-run via restart.
	summarizer interface {
		Summary() rush.GameResult
		Moves() int
	}
)

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	keys        *KeyMapper
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	resultSaved bool // Whether the current game's result has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.injectBest()

	return tickCmd(m.config.TickRate)
}

// injectBest seeds the game's best-score display from storage.
func (m Model) injectBest() {
	setter, ok := m.game.(bestSetter)
	if !ok || m.store == nil {
		return
	}
	if best, err := m.store.HighScore(m.game.ID()); err == nil {
		setter.SetBest(best)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveAbandonedRun()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse translates a left click into a board-cell tap.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	locator, ok := m.game.(cellLocator)
	if !ok {
		return m, nil
	}

	if cell, ok := locator.CellAtScreen(msg.X, msg.Y); ok {
		m.inputFrame.SetTap(cell)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Resizing restarts the run; board geometry depends on the screen.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.injectBest()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveAbandonedRun()

		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.injectBest()
		m.gameState = m.game.State()
		m.resultSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save the terminal result once per game over
	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveResult persists the finished game, preferring the full result record
// over the bare score.
func (m Model) saveResult() {
	if m.store == nil {
		return
	}

	if r, ok := m.game.(resulter); ok {
		if res, done := r.Result(); done {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveResult(res)
			return
		}
	}

	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save
		m.store.SaveResult(rush.GameResult{
			RulesetID: m.game.ID(),
			Score:     m.gameState.Score,
			Timestamp: time.Now(),
		})
	}
}

// saveAbandonedRun persists the running totals of a game quit or restarted
// mid-run, so partial progress still counts toward stats.
func (m Model) saveAbandonedRun() {
	if m.store == nil || m.resultSaved || m.gameState.GameOver {
		return
	}

	s, ok := m.game.(summarizer)
	if !ok || s.Moves() == 0 {
		return
	}

	//nolint:errcheck // Best-effort save
	m.store.SaveResult(s.Summary())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local game session.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Powerups are activated by clicking
	)

	_, err := p.Run()
	return err
}
