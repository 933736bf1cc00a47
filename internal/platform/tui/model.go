package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/river-rush/internal/core"
	"github.com/vovakirdan/river-rush/internal/registry"
	"github.com/vovakirdan/river-rush/internal/storage"
)

// ScreenshotDir is where ctrl+s writes plain-text frames. A leading ~
// expands to the home directory.
var ScreenshotDir = filepath.Join("~", ".river-rush", "screenshots")

// RunSaver persists finished runs. *storage.Store implements it.
type RunSaver interface {
	SaveRun(r storage.Run) (string, error)
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	saver      RunSaver
	log        *log.Logger
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool
	showHelp   bool
	lastShot   string
}

// NewModel creates a model for game. saver and logger may be nil.
func NewModel(game registry.Game, saver RunSaver, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		saver:      saver,
		log:        logger,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	return m
}

// gameHeight leaves the bottom row for the help line.
func (m Model) gameHeight() int {
	return max(1, m.config.ScreenH-1)
}

func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	return cfg
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, m.gameHeight())
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.log.Warn("screenshot failed", "err", err)
		} else {
			m.lastShot = path
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. A storage failure only logs.
func (m *Model) saveRun() {
	if m.saver == nil {
		return
	}
	run := RunFromSummary(m.summary())
	id, err := m.saver.SaveRun(run)
	if err != nil {
		m.log.Warn("cannot save run", "mode", run.Mode, "err", err)
		return
	}
	m.log.Info("run saved", "id", id, "mode", run.Mode, "score", run.Score)
}

func (m Model) summary() core.RunSummary {
	if s, ok := m.game.(registry.Summarizer); ok {
		return s.Summary()
	}
	return core.RunSummary{
		GameID:   m.game.ID(),
		Seed:     m.config.Seed,
		Score:    m.gameState.Score,
		Distance: m.gameState.Distance,
	}
}

// RunFromSummary converts a finished run into a storage record.
func RunFromSummary(s core.RunSummary) storage.Run {
	return storage.Run{
		Mode:       s.GameID,
		Seed:       s.Seed,
		Score:      s.Score,
		Distance:   s.Distance,
		Coins:      s.Coins,
		Gems:       s.Gems,
		NearMisses: s.NearMisses,
		MaxCombo:   s.MaxCombo,
		DurationMs: s.DurationMs,
	}
}

func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir, err := expandHome(ScreenshotDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

func expandHome(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot resolve home: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorDim.ANSI()))

// View renders the game frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.gameState.GameOver {
		footer = "r: restart  q: quit"
	}
	if m.lastShot != "" {
		footer += "  saved " + filepath.Base(m.lastShot)
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// GameState returns the last observed game state.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, saver RunSaver, logger *log.Logger, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, saver, logger, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
