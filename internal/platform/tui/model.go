package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/vovakirdan/deadzone/internal/registry"
	"github.com/vovakirdan/deadzone/internal/storage"
)

// logger receives platform diagnostics; the alternate screen owns stdout.
var logger = log.New(io.Discard)

// SetLogger routes platform diagnostics to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	held       *heldKeys
	inputFrame core.InputFrame
	mouseFire  bool
	gameState  core.GameState
	now        func() time.Time
	embedded   bool // back-to-menu is handled by a parent model
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for current game over
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
		keyMapper:  NewKeyMapper(),
		held:       newHeldKeys(),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
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
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
		return m, nil

	case action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused):
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case Held(action):
		m.held.press(action, m.now())

	default:
		m.inputFrame.Set(action)
		// R reloads in play and restarts after game over.
		if action == core.ActionReload && m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleMouse aims at the pointer, fires while the left button is down,
// melees on right click and cycles weapons with the wheel.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.Pointer = core.Pointer{X: msg.X, Y: msg.Y, Valid: true}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.mouseFire = true
		case tea.MouseButtonRight:
			m.inputFrame.Set(core.ActionMelee)
		case tea.MouseButtonWheelUp:
			m.inputFrame.Set(core.ActionWeaponPrev)
		case tea.MouseButtonWheelDown:
			m.inputFrame.Set(core.ActionWeaponNext)
		}
	case tea.MouseActionRelease:
		m.mouseFire = false
	}

	return m, nil
}

// handleResize processes window resize events. The game adapts its
// viewport on the next Render, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.held.reset()
		m.mouseFire = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.frame()
	result := m.game.Step(frame)
	m.gameState = result.State

	// Save on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// frame merges one-shot presses, inferred held keys and the mouse button.
func (m Model) frame() core.InputFrame {
	f := m.inputFrame.Clone()
	m.held.apply(&f, m.now())
	if m.mouseFire {
		f.Set(core.ActionFire)
	}
	return f
}

// saveRun records the score and, when the game reports one, the run.
func (m Model) saveRun() {
	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		}
	}
	if rr, ok := m.game.(registry.RunReporter); ok {
		id, err := m.store.SaveRun(rr.Summary())
		if err != nil {
			logger.Warn("could not save run", "game", m.game.ID(), "error", err)
			return
		}
		logger.Info("run saved", "id", id, "game", m.game.ID(), "round", m.gameState.Score)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".deadzone", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer aim needs motion without a button held
	)

	_, err := p.Run()
	return err
}
