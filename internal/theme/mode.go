// Package theme implements the dashboard's theme model: modes, settings,
// presets and CSS custom property resolution.
package theme

import "strings"

// Mode is the user-facing theme preference. It persists across sessions.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

// DefaultMode is used when no preference has been persisted.
const DefaultMode = ModeSystem

// Valid reports whether m is one of the three known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeLight, ModeDark, ModeSystem:
		return true
	}
	return false
}

// ParseMode parses a stored or user-supplied mode string.
// Returns (DefaultMode, false) for anything unknown or empty.
func ParseMode(s string) (Mode, bool) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if m.Valid() {
		return m, true
	}
	return DefaultMode, false
}

// ResolvedMode is the concrete light/dark value actually applied.
type ResolvedMode string

const (
	Light ResolvedMode = "light"
	Dark  ResolvedMode = "dark"
)

// Resolve derives the concrete mode. "system" follows the OS preference.
func Resolve(m Mode, systemDark bool) ResolvedMode {
	switch m {
	case ModeLight:
		return Light
	case ModeDark:
		return Dark
	default:
		if systemDark {
			return Dark
		}
		return Light
	}
}
