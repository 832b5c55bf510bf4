package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dsemenov/retrocade/internal/core"
	"github.com/dsemenov/retrocade/internal/session"
	"github.com/dsemenov/retrocade/internal/storage"
)

// Model is the Bubble Tea model for running arcade games.
// It drives a session.Session: keys are buffered into the session and
// consumed on the next tick, so input never lands mid-step.
type Model struct {
	sess     *session.Session
	screen   *core.Screen
	keys     *KeyMapper
	interval time.Duration
	quitting bool
}

// NewModel creates a Bubble Tea model around an already-selected session.
func NewModel(sess *session.Session) Model {
	cfg := sess.Config()
	return Model{
		sess:     sess,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:     NewKeyMapper(),
		interval: tickInterval(cfg.TickRate),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(time.Now().Add(m.interval))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey buffers keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.sess.HandleInput(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.sess.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one step and re-arms the tick
// from the deadline that just fired.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	m.sess.Tick()

	if m.sess.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(nextDeadline(time.Time(msg), time.Now(), m.interval))
}

// saveScreenshot dumps the current board to ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	game := m.sess.Game()
	if game == nil {
		return
	}
	game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	game := m.sess.Game()
	if game == nil {
		return "No game selected"
	}

	game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts a full-screen Bubble Tea program for the given game ID.
func Run(gameID string, store *storage.Store, cfg core.RuntimeConfig) error {
	sess := session.New(scoreSink(store), cfg)
	if err := sess.Select(gameID); err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(sess),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// scoreSink hides a nil *storage.Store behind a nil interface so the
// session's nil check works.
func scoreSink(store *storage.Store) session.ScoreSink {
	if store == nil {
		return nil
	}
	return store
}
