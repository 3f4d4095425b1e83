// Package styles provides reusable lipgloss-based terminal styles for
// the CLI, derived from the active theme preset so CLI output matches
// the dashboard.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/74587/srec-dash/internal/theme"
)

// Theme holds lipgloss colors and styles derived from a preset.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color

	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Highlight lipgloss.Style
	ErrStyle  lipgloss.Style

	Badge            lipgloss.Style
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	Box              lipgloss.Style
}

// NewTheme derives terminal styles from the settings' resolved dark
// branch; terminals overwhelmingly run dark and the hex values there
// hold enough contrast either way.
func NewTheme(settings theme.Settings) *Theme {
	vars := theme.ResolveVars(settings, theme.Dark)

	pick := func(key, fallback string) lipgloss.Color {
		if v, ok := vars[key]; ok && v != "" {
			return lipgloss.Color(v)
		}
		return lipgloss.Color(fallback)
	}

	t := &Theme{
		Background: pick("background", "#0a0a0b"),
		Foreground: pick("foreground", "#ffffff"),
		Muted:      pick("muted-foreground", "#909090"),
		Accent:     pick("primary", "#4ade80"),
		Border:     pick("border", "#333333"),
		Error:      pick("destructive", "#ef4444"),
	}
	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Bold(true)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.ListItem = lipgloss.NewStyle().
		Foreground(t.Foreground).
		PaddingLeft(2)

	t.ListItemSelected = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		PaddingLeft(0)

	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}
