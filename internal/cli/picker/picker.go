// Package picker provides the Bubble Tea model for the interactive
// preset picker.
package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/74587/srec-dash/internal/cli/styles"
	"github.com/74587/srec-dash/internal/theme"
)

// Model is the Bubble Tea model for the preset picker.
type Model struct {
	help  help.Model
	keys  keyMap
	theme *styles.Theme

	presets     []theme.Preset
	selectedIdx int
	current     string

	// Chosen holds the picked preset name after the user confirms;
	// empty means cancelled.
	Chosen string
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Choose, k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "cancel"),
		),
	}
}

// New creates a picker preselecting the currently configured preset.
func New(current string, th *styles.Theme) Model {
	names := theme.PresetNames()
	presets := make([]theme.Preset, 0, len(names))
	selected := 0
	for i, name := range names {
		presets = append(presets, theme.PresetByName(name))
		if name == current {
			selected = i
		}
	}

	return Model{
		help:        help.New(),
		keys:        defaultKeyMap(),
		theme:       th,
		presets:     presets,
		selectedIdx: selected,
		current:     current,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.selectedIdx < len(m.presets)-1 {
			m.selectedIdx++
		}
	case key.Matches(keyMsg, m.keys.Choose):
		m.Chosen = m.presets[m.selectedIdx].Name
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.theme.Title.Render("Choose a preset"))
	sb.WriteString("\n\n")

	for i, p := range m.presets {
		line := p.Name
		if p.Name == m.current {
			line += " (current)"
		}
		if i == m.selectedIdx {
			sb.WriteString(m.theme.ListItemSelected.Render("› " + line))
			sb.WriteString("\n")
			sb.WriteString(m.theme.Subtle.Render("    " + p.Description))
		} else {
			sb.WriteString(m.theme.ListItem.Render(line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}
