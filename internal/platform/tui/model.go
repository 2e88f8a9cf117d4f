package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/autosnake/internal/core"
	"github.com/vovakirdan/autosnake/internal/engine"
)

// Model is the Bubble Tea model for one snake session. It forwards keys to
// the scheduler and redraws the latest published frame on a fixed rate.
type Model struct {
	sched    *engine.Scheduler
	frames   *FrameBuffer
	title    string
	keys     KeyMap
	help     help.Model
	fps      int
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for a scheduler that draws into frames.
// The scheduler is started by Init and stopped on quit.
func NewModel(sched *engine.Scheduler, frames *FrameBuffer, title string) Model {
	return Model{
		sched:  sched,
		frames: frames,
		title:  title,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		fps:    DefaultFPS,
	}
}

// Init starts the session and the redraw loop.
func (m Model) Init() tea.Cmd {
	m.sched.Start()
	return redrawCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case RedrawMsg:
		return m, redrawCmd(m.fps)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		m.sched.Stop()
		return m, tea.Quit
	default:
		m.sched.Input(action)
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	screen, _, scores := m.frames.Frame()
	hud := RenderHUD(HUD{
		Title:    m.title,
		Scores:   scores,
		State:    m.sched.State(),
		Interval: m.sched.Interval(),
	})

	var sb strings.Builder
	sb.WriteString(hud)
	sb.WriteRune('\n')
	sb.WriteString(RenderScreen(screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))

	view := sb.String()
	if m.width > 0 && m.height > 0 {
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(sched *engine.Scheduler, frames *FrameBuffer, title string) error {
	model := NewModel(sched, frames, title)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	sched.Stop()
	return err
}
