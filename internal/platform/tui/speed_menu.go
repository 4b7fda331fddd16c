package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-snake/internal/config"
)

type speedOption struct {
	preset config.DifficultyPreset
	label  string
}

var speedOptions = []speedOption{
	{config.DifficultyEasy, "Easy"},
	{config.DifficultyNormal, "Normal"},
	{config.DifficultyHard, "Hard"},
	{config.DifficultyFixed, "As configured"},
}

type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeys() menuKeys {
	return menuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// SpeedModel lets users choose a speed preset before powering on.
type SpeedModel struct {
	cursor   int
	tickMs   int // tick delay from the loaded config, shown for "As configured"
	width    int
	keys     menuKeys
	chosen   bool
	quitting bool
}

// NewSpeedModel creates the picker with Normal preselected.
func NewSpeedModel(configuredTickMs, width int) SpeedModel {
	return SpeedModel{
		cursor: 1,
		tickMs: configuredTickMs,
		width:  width,
		keys:   defaultMenuKeys(),
	}
}

// Init initializes the model.
func (m SpeedModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SpeedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(speedOptions)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.chosen = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the preset list.
func (m SpeedModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("S N A K E"))
	b.WriteString("\n\n")
	b.WriteString("Select speed:\n\n")

	for i, opt := range speedOptions {
		ms := config.TickMsForPreset(opt.preset)
		if opt.preset == config.DifficultyFixed {
			ms = m.tickMs
		}
		line := fmt.Sprintf("%-14s %4d ms", opt.label, ms)
		if i == m.cursor {
			b.WriteString(titleStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Enter: Select  |  Q: Quit"))

	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, b.String())
	}
	return b.String()
}

// Selected returns the chosen preset, or false if the user quit.
func (m SpeedModel) Selected() (config.DifficultyPreset, bool) {
	if !m.chosen {
		return "", false
	}
	return speedOptions[m.cursor].preset, true
}

// RunSpeedSelector shows the picker and returns the chosen preset.
// ok is false when the user quit instead of choosing.
func RunSpeedSelector(configuredTickMs, width int) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(NewSpeedModel(configuredTickMs, width), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isSpeed := finalModel.(SpeedModel)
	if !isSpeed {
		return "", false, nil
	}
	preset, ok = m.Selected()
	return preset, ok, nil
}
