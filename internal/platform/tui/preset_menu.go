package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var presetBlurbs = map[config.Preset]string{
	config.PresetClassic: "only standing still kills",
	config.PresetStrict:  "your own body kills too",
	config.PresetSteady:  "speed stops after ten apples",
}

// PresetKeyMap defines the key bindings for the preset picker.
type PresetKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultPresetKeyMap returns default key bindings.
func DefaultPresetKeyMap() PresetKeyMap {
	return PresetKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PresetModel lets users choose the rule preset before a game.
type PresetModel struct {
	presets  []config.Preset
	best     map[config.Preset]int
	cursor   int
	width    int
	height   int
	keys     PresetKeyMap
	selected bool
	quitting bool
}

// NewPresetModel creates a picker with the cursor on current. Best scores
// come from store when it is not nil.
func NewPresetModel(store *storage.Store, current config.Preset, width, height int) PresetModel {
	m := PresetModel{
		presets: config.Presets,
		best:    make(map[config.Preset]int),
		width:   width,
		height:  height,
		keys:    DefaultPresetKeyMap(),
	}
	for i, p := range m.presets {
		if p == current {
			m.cursor = i
		}
		if store != nil {
			if best, err := store.HighScore(string(p)); err == nil {
				m.best[p] = best
			}
		}
	}
	return m
}

// Init initializes the model.
func (m PresetModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PresetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.selected = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the preset list.
func (m PresetModel) View() string {
	if m.quitting || m.selected {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select rules:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		line := fmt.Sprintf("%-8s %-30s best %d", p, presetBlurbs[p], m.best[p])
		if i == m.cursor {
			line = activeStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter: Play  |  Q: Quit"), m.width))
	return b.String()
}

// Selected returns the chosen preset and true, or false if the user quit.
func (m PresetModel) Selected() (config.Preset, bool) {
	if !m.selected {
		return "", false
	}
	return m.presets[m.cursor], true
}

// RunPresetSelector shows the picker and returns the chosen preset.
// Returns false if the user quit.
func RunPresetSelector(store *storage.Store, current config.Preset, width, height int) (config.Preset, bool, error) {
	p := tea.NewProgram(
		NewPresetModel(store, current, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, ok := finalModel.(PresetModel)
	if !ok {
		return "", false, nil
	}
	preset, chosen := m.Selected()
	return preset, chosen, nil
}
