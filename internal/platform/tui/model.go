package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/device"
)

// FrameMsg carries a flushed panel to the view.
type FrameMsg struct {
	Frame    *core.Frame
	Inverted bool
}

// GameDoneMsg reports that the game loop returned.
type GameDoneMsg struct {
	Err error
}

// Model is the Bubble Tea model that shows the panel and feeds the buttons.
// It never touches game state: frames arrive as messages and key presses
// leave through the queue.
type Model struct {
	frame    *core.Frame
	inverted bool
	panelW   int
	panelH   int

	queue  *device.Queue
	cancel context.CancelFunc
	keys   KeyMap
	help   help.Model

	width    int
	height   int
	dropped  int // key presses lost to a full queue
	err      error
	quitting bool
}

// NewModel creates a model for a panel of the given pixel size. cancel is
// called when the user powers the device off.
func NewModel(queue *device.Queue, panelW, panelH int, cancel context.CancelFunc) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		panelW: panelW,
		panelH: panelH,
		queue:  queue,
		cancel: cancel,
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
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

	case FrameMsg:
		m.frame = msg.Frame
		m.inverted = msg.Inverted
		return m, nil

	case GameDoneMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	}

	if !m.queue.Push(cmd) {
		m.dropped++
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	needW, needH := panelFootprint(m.panelW, m.panelH)
	if m.width > 0 && (m.width < needW || m.height < needH+2) {
		return warnStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d", needW, needH+2, m.width, m.height))
	}

	view := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("PIXEL SNAKE"),
		RenderPanel(m.frame, m.inverted, m.panelW, m.panelH),
		helpStyle.Render(m.help.View(m.keys)),
	)
	if m.width > 0 {
		view = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, view)
	}
	return view
}

// Dropped returns the number of key presses lost to a full queue.
func (m Model) Dropped() int {
	return m.dropped
}

// Err returns the error the game loop ended with, if any.
func (m Model) Err() error {
	return m.err
}
