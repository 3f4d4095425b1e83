package theme

// Base selects where the base variable maps come from.
type Base string

const (
	// BasePreset uses a named entry from the built-in preset registry.
	BasePreset Base = "preset"
	// BaseImported uses a user-supplied light/dark pair.
	BaseImported Base = "imported"
)

// ImportedTheme is an externally supplied pair of variable maps,
// typically loaded from a theme file exported by another tool.
type ImportedTheme struct {
	Light map[string]string `json:"light" mapstructure:"light" toml:"light"`
	Dark  map[string]string `json:"dark" mapstructure:"dark" toml:"dark"`
}

// Settings is the layered theme configuration. Resolution precedence is
// base variables (with sidebar fallbacks filled) < radius < overrides.
type Settings struct {
	// Base selects preset or imported colors. Empty means preset.
	Base Base `json:"base" mapstructure:"base" toml:"base" jsonschema:"enum=preset,enum=imported"`

	// Preset names an entry in the preset registry. Unknown names fall
	// back to the default preset.
	Preset string `json:"preset" mapstructure:"preset" toml:"preset"`

	// Radius is merged into the variable map under the reserved key
	// "radius" when non-empty, e.g. "0.5rem".
	Radius string `json:"radius,omitempty" mapstructure:"radius" toml:"radius,omitempty"`

	// Overrides are applied last and win over every other layer.
	Overrides map[string]string `json:"overrides,omitempty" mapstructure:"overrides" toml:"overrides,omitempty"`

	// Imported is only consulted when Base is "imported".
	Imported *ImportedTheme `json:"imported,omitempty" mapstructure:"imported" toml:"imported,omitempty"`
}

// DefaultSettings returns the configuration used before the user has
// customized anything.
func DefaultSettings() Settings {
	return Settings{
		Base:   BasePreset,
		Preset: DefaultPresetName,
	}
}
