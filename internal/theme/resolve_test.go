package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVars_PresetBranches(t *testing.T) {
	s := Settings{Base: BasePreset, Preset: "default"}

	light := ResolveVars(s, Light)
	dark := ResolveVars(s, Dark)

	assert.Equal(t, "#fafafa", light["background"])
	assert.Equal(t, "#0a0a0b", dark["background"])
}

func TestResolveVars_UnknownPresetFallsBack(t *testing.T) {
	s := Settings{Base: BasePreset, Preset: "no-such-preset"}

	vars := ResolveVars(s, Light)

	assert.Equal(t, DefaultPreset.Light["background"], vars["background"])
}

func TestResolveVars_Pure(t *testing.T) {
	s := Settings{
		Base:      BasePreset,
		Preset:    "slate",
		Radius:    "0.75rem",
		Overrides: map[string]string{"primary": "#123456"},
	}

	first := ResolveVars(s, Dark)
	second := ResolveVars(s, Dark)

	assert.Equal(t, first, second)

	// Mutating the output must not leak back into later resolutions.
	first["primary"] = "#000000"
	third := ResolveVars(s, Dark)
	assert.Equal(t, "#123456", third["primary"])
}

func TestResolveVars_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		key      string
		want     string
	}{
		{
			name: "radius over base",
			settings: Settings{
				Base:   BasePreset,
				Preset: "default",
				Radius: "1rem",
			},
			key:  RadiusKey,
			want: "1rem",
		},
		{
			name: "override over base",
			settings: Settings{
				Base:      BasePreset,
				Preset:    "default",
				Overrides: map[string]string{"background": "#010101"},
			},
			key:  "background",
			want: "#010101",
		},
		{
			name: "override over radius",
			settings: Settings{
				Base:      BasePreset,
				Preset:    "default",
				Radius:    "1rem",
				Overrides: map[string]string{RadiusKey: "2rem"},
			},
			key:  RadiusKey,
			want: "2rem",
		},
		{
			name: "override over sidebar fallback",
			settings: Settings{
				Base:      BasePreset,
				Preset:    "default",
				Overrides: map[string]string{"sidebar": "#020202"},
			},
			key:  "sidebar",
			want: "#020202",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := ResolveVars(tt.settings, Light)
			assert.Equal(t, tt.want, vars[tt.key])
		})
	}
}

func TestResolveVars_SidebarFallbacks(t *testing.T) {
	s := Settings{Base: BasePreset, Preset: "default"}

	vars := ResolveVars(s, Light)

	// Default preset has no explicit sidebar values; they fill from
	// their non-sidebar counterparts.
	assert.Equal(t, vars["background"], vars["sidebar"])
	assert.Equal(t, vars["foreground"], vars["sidebar-foreground"])
	assert.Equal(t, vars["primary"], vars["sidebar-primary"])
	assert.Equal(t, vars["border"], vars["sidebar-border"])
	assert.Equal(t, vars["ring"], vars["sidebar-ring"])
}

func TestResolveVars_ExplicitSidebarWins(t *testing.T) {
	s := Settings{Base: BasePreset, Preset: "slate"}

	vars := ResolveVars(s, Light)

	// Slate carries its own sidebar values; the fallback must not
	// overwrite them.
	assert.Equal(t, SlatePreset.Light["sidebar"], vars["sidebar"])
	assert.NotEqual(t, vars["background"], vars["sidebar"])
	// Keys slate leaves out still fill from counterparts.
	assert.Equal(t, vars["primary"], vars["sidebar-primary"])
}

func TestResolveVars_ImportedTheme(t *testing.T) {
	imported := &ImportedTheme{
		Light: map[string]string{"background": "#eeeeee", "foreground": "#111111"},
		Dark:  map[string]string{"background": "#111111", "foreground": "#eeeeee"},
	}
	s := Settings{Base: BaseImported, Preset: "slate", Imported: imported}

	light := ResolveVars(s, Light)
	dark := ResolveVars(s, Dark)

	assert.Equal(t, "#eeeeee", light["background"])
	assert.Equal(t, "#111111", dark["background"])
	// Sidebar fallback applies to imported bases too.
	assert.Equal(t, "#eeeeee", light["sidebar"])
}

func TestResolveVars_ImportedSelectedButMissing(t *testing.T) {
	s := Settings{Base: BaseImported, Preset: "emerald"}

	vars := ResolveVars(s, Light)

	// No imported theme present: the named preset still applies.
	assert.Equal(t, EmeraldPreset.Light["background"], vars["background"])
}

func TestResolveVars_NoRadiusWithoutSetting(t *testing.T) {
	vars := ResolveVars(Settings{Base: BasePreset, Preset: "default"}, Light)
	_, ok := vars[RadiusKey]
	assert.False(t, ok)
}

func TestBuildVarsCache(t *testing.T) {
	s := Settings{Base: BasePreset, Preset: "default", Radius: "0.5rem"}

	cache := BuildVarsCache(s)

	require.NotNil(t, cache.Light)
	require.NotNil(t, cache.Dark)
	assert.Equal(t, ResolveVars(s, Light), cache.Light)
	assert.Equal(t, ResolveVars(s, Dark), cache.Dark)
	assert.Equal(t, "0.5rem", cache.Light[RadiusKey])
	assert.Equal(t, "0.5rem", cache.Dark[RadiusKey])
}
