package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

// Model is the Bubble Tea model for running the snake game.
// Key presses are buffered and handed to the game loop on the next tick.
type Model struct {
	loop     *snake.Loop
	renderer *ScreenRenderer
	keys     KeyMap
	help     help.Model
	pending  []snake.Event
	width    int // Terminal size, 0 until the first WindowSizeMsg
	height   int
	quitting bool
	err      error
}

// NewModel creates a new Bubble Tea model for a fresh game.
func NewModel(cfg core.RuntimeConfig, logger *log.Logger) Model {
	renderer := NewScreenRenderer(cfg.Grid)
	loop := snake.NewLoop(cfg, renderer, logger)

	h := help.New()
	h.ShowAll = false

	m := Model{
		loop:     loop,
		renderer: renderer,
		keys:     DefaultKeyMap(),
		help:     h,
	}
	m.redraw()
	return m
}

// redraw renders the current frame and its status line outside a tick.
func (m Model) redraw() {
	//nolint:errcheck // ScreenRenderer.Present never fails
	m.loop.Render()
	m.drawStatus()
}

func (m Model) drawStatus() {
	m.renderer.DrawStatus(m.loop.Snapshot().HUD())
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.loop.Config().TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleResize records the terminal size and redraws the board centered in it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.renderer.Resize(msg.Width)
	m.redraw()
	return m, nil
}

// handleKey buffers game events. A quit request is passed to the loop at
// once so the game stops without waiting for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev, ok := m.keys.MapKey(msg)
	if !ok {
		return m, nil
	}
	m.pending = append(m.pending, ev)
	if ev.Kind != snake.EventQuit {
		return m, nil
	}
	return m.step()
}

// handleTick runs one game tick with the buffered input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	next, cmd := m.step()
	if cmd != nil {
		return next, cmd
	}
	return next, tickCmd(m.loop.Config().TickRate)
}

// step hands the buffered events to the loop and returns tea.Quit when the
// game is over.
func (m Model) step() (Model, tea.Cmd) {
	events := m.pending
	m.pending = nil

	quit, err := m.loop.Step(events)
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	m.drawStatus()
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	needW, needH := BoardSize(m.loop.Config().Grid)
	needH += statusRows + 1 // Status and help lines
	if m.width > 0 && (m.width < needW || m.height < needH) {
		return warningStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d", needW, needH, m.width, m.height))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.renderer.Screen()),
		m.help.View(m.keys),
	)
}

// Snapshot returns the game snapshot.
func (m Model) Snapshot() snake.Snapshot {
	return m.loop.Snapshot()
}

// Err returns the error that ended the game, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for a local game and blocks until it ends.
func Run(cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
