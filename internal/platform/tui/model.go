package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Game is the deterministic game core driven by the TUI loop.
type Game interface {
	ID() string
	Title() string
	LevelID() string
	Reset(cfg core.RuntimeConfig)
	Step(input core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Model is the Bubble Tea model driving the game loop.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	clock      *core.Clock
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	ticks      int // simulation ticks in the current run
	quitting   bool
	runSaved   bool // Whether the run has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		clock:      core.NewClock(cfg.TickRate),
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The camera adapts to any
// viewport, so the running simulation is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by however many fixed steps the wall
// clock owes, so slow terminals slow rendering without slowing game time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	restarting := m.inputFrame.Has(core.ActionRestart)

	steps := m.clock.Advance(now)
	for i := 0; i < steps; i++ {
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
		if !m.gameState.GameOver && !m.gameState.Paused {
			m.ticks++
		}
		// Pause and restart are edge-triggered: a single press must apply
		// to exactly one step even when the clock owes several. Held
		// movement and jump intents carry into the remaining steps.
		m.inputFrame.Unset(core.ActionPause)
		m.inputFrame.Unset(core.ActionRestart)
	}

	if restarting {
		m.ticks = 0
		m.runSaved = false
	}

	// Record the finished run once.
	if m.gameState.GameOver && !m.runSaved {
		if m.store != nil {
			outcome := storage.OutcomeLoss
			if m.gameState.Won {
				outcome = storage.OutcomeWin
			}
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(m.game.LevelID(), m.gameState.Score, outcome, m.ticks)
		}
		m.runSaved = true
	}

	// Clear input for the next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".platformer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
