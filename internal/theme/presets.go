package theme

import "sort"

// Preset is a named, built-in pair of light/dark variable maps.
type Preset struct {
	Name        string
	Description string
	Light       map[string]string
	Dark        map[string]string
}

// DefaultPresetName is used when settings name an unknown preset.
const DefaultPresetName = "default"

// Presets contains all built-in presets, keyed by name.
var Presets = map[string]Preset{
	"default": DefaultPreset,
	"slate":   SlatePreset,
	"emerald": EmeraldPreset,
	"sakura":  SakuraPreset,
}

// PresetByName returns the named preset, falling back to the default
// preset when the name is unknown.
func PresetByName(name string) Preset {
	if p, ok := Presets[name]; ok {
		return p
	}
	return DefaultPreset
}

// PresetNames returns the registry keys in stable sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultPreset is the neutral scheme the dashboard ships with.
// Sidebar variables are intentionally absent; they fill from their
// non-sidebar counterparts during resolution.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Neutral default scheme",
	Light: map[string]string{
		"background":             "#fafafa",
		"foreground":             "#1a1a1a",
		"card":                   "#ffffff",
		"card-foreground":        "#1a1a1a",
		"popover":                "#ffffff",
		"popover-foreground":     "#1a1a1a",
		"primary":                "#22c55e",
		"primary-foreground":     "#fafafa",
		"secondary":              "#f0f0f0",
		"secondary-foreground":   "#1a1a1a",
		"muted":                  "#f0f0f0",
		"muted-foreground":       "#666666",
		"accent":                 "#e8f7ee",
		"accent-foreground":      "#14532d",
		"destructive":            "#dc2626",
		"destructive-foreground": "#fafafa",
		"border":                 "#dddddd",
		"input":                  "#dddddd",
		"ring":                   "#22c55e",
	},
	Dark: map[string]string{
		"background":             "#0a0a0b",
		"foreground":             "#ffffff",
		"card":                   "#1a1a1b",
		"card-foreground":        "#ffffff",
		"popover":                "#1a1a1b",
		"popover-foreground":     "#ffffff",
		"primary":                "#4ade80",
		"primary-foreground":     "#0a0a0b",
		"secondary":              "#2d2d2d",
		"secondary-foreground":   "#ffffff",
		"muted":                  "#2d2d2d",
		"muted-foreground":       "#909090",
		"accent":                 "#14532d",
		"accent-foreground":      "#dcfce7",
		"destructive":            "#ef4444",
		"destructive-foreground": "#ffffff",
		"border":                 "#333333",
		"input":                  "#333333",
		"ring":                   "#4ade80",
	},
}

// SlatePreset carries explicit sidebar variables so the sidebar can
// contrast with the main surface.
var SlatePreset = Preset{
	Name:        "slate",
	Description: "Cool gray with a contrasting sidebar",
	Light: map[string]string{
		"background":             "#f8fafc",
		"foreground":             "#0f172a",
		"card":                   "#ffffff",
		"card-foreground":        "#0f172a",
		"popover":                "#ffffff",
		"popover-foreground":     "#0f172a",
		"primary":                "#0ea5e9",
		"primary-foreground":     "#f8fafc",
		"secondary":              "#e2e8f0",
		"secondary-foreground":   "#0f172a",
		"muted":                  "#e2e8f0",
		"muted-foreground":       "#64748b",
		"accent":                 "#e0f2fe",
		"accent-foreground":      "#0c4a6e",
		"destructive":            "#dc2626",
		"destructive-foreground": "#f8fafc",
		"border":                 "#cbd5e1",
		"input":                  "#cbd5e1",
		"ring":                   "#0ea5e9",
		"sidebar":                "#eef2f7",
		"sidebar-foreground":     "#0f172a",
		"sidebar-border":         "#d6dee8",
	},
	Dark: map[string]string{
		"background":             "#0f172a",
		"foreground":             "#f1f5f9",
		"card":                   "#1e293b",
		"card-foreground":        "#f1f5f9",
		"popover":                "#1e293b",
		"popover-foreground":     "#f1f5f9",
		"primary":                "#38bdf8",
		"primary-foreground":     "#0f172a",
		"secondary":              "#334155",
		"secondary-foreground":   "#f1f5f9",
		"muted":                  "#334155",
		"muted-foreground":       "#94a3b8",
		"accent":                 "#0c4a6e",
		"accent-foreground":      "#e0f2fe",
		"destructive":            "#ef4444",
		"destructive-foreground": "#f1f5f9",
		"border":                 "#334155",
		"input":                  "#334155",
		"ring":                   "#38bdf8",
		"sidebar":                "#0b1120",
		"sidebar-foreground":     "#e2e8f0",
		"sidebar-border":         "#1e293b",
	},
}

// EmeraldPreset favors the recorder's "live" green accent.
var EmeraldPreset = Preset{
	Name:        "emerald",
	Description: "Green accents on warm neutrals",
	Light: map[string]string{
		"background":             "#fdfdf9",
		"foreground":             "#1c1917",
		"card":                   "#ffffff",
		"card-foreground":        "#1c1917",
		"popover":                "#ffffff",
		"popover-foreground":     "#1c1917",
		"primary":                "#059669",
		"primary-foreground":     "#fdfdf9",
		"secondary":              "#f5f5f0",
		"secondary-foreground":   "#1c1917",
		"muted":                  "#f5f5f0",
		"muted-foreground":       "#78716c",
		"accent":                 "#d1fae5",
		"accent-foreground":      "#064e3b",
		"destructive":            "#dc2626",
		"destructive-foreground": "#fdfdf9",
		"border":                 "#e7e5e0",
		"input":                  "#e7e5e0",
		"ring":                   "#059669",
	},
	Dark: map[string]string{
		"background":             "#121210",
		"foreground":             "#fafaf5",
		"card":                   "#1c1c19",
		"card-foreground":        "#fafaf5",
		"popover":                "#1c1c19",
		"popover-foreground":     "#fafaf5",
		"primary":                "#34d399",
		"primary-foreground":     "#121210",
		"secondary":              "#292925",
		"secondary-foreground":   "#fafaf5",
		"muted":                  "#292925",
		"muted-foreground":       "#a8a29e",
		"accent":                 "#064e3b",
		"accent-foreground":      "#d1fae5",
		"destructive":            "#ef4444",
		"destructive-foreground": "#fafaf5",
		"border":                 "#33332e",
		"input":                  "#33332e",
		"ring":                   "#34d399",
	},
}

// SakuraPreset is the scheme mirrored from the live-chat overlay.
var SakuraPreset = Preset{
	Name:        "sakura",
	Description: "Pink accents matching the danmu overlay",
	Light: map[string]string{
		"background":             "#fffbfc",
		"foreground":             "#27141c",
		"card":                   "#ffffff",
		"card-foreground":        "#27141c",
		"popover":                "#ffffff",
		"popover-foreground":     "#27141c",
		"primary":                "#ec4899",
		"primary-foreground":     "#fffbfc",
		"secondary":              "#fce7f3",
		"secondary-foreground":   "#27141c",
		"muted":                  "#fce7f3",
		"muted-foreground":       "#9d6b84",
		"accent":                 "#fbcfe8",
		"accent-foreground":      "#831843",
		"destructive":            "#dc2626",
		"destructive-foreground": "#fffbfc",
		"border":                 "#f3d4e3",
		"input":                  "#f3d4e3",
		"ring":                   "#ec4899",
	},
	Dark: map[string]string{
		"background":             "#17070e",
		"foreground":             "#fdf2f8",
		"card":                   "#230d17",
		"card-foreground":        "#fdf2f8",
		"popover":                "#230d17",
		"popover-foreground":     "#fdf2f8",
		"primary":                "#f472b6",
		"primary-foreground":     "#17070e",
		"secondary":              "#3b1326",
		"secondary-foreground":   "#fdf2f8",
		"muted":                  "#3b1326",
		"muted-foreground":       "#c084a5",
		"accent":                 "#831843",
		"accent-foreground":      "#fbcfe8",
		"destructive":            "#ef4444",
		"destructive-foreground": "#fdf2f8",
		"border":                 "#451a2e",
		"input":                  "#451a2e",
		"ring":                   "#f472b6",
	},
}
