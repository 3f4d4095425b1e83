package theme

// RadiusKey is the reserved variable key the radius setting maps to.
const RadiusKey = "radius"

// sidebarFallbacks maps sidebar-prefixed keys to the base key they fill
// from when the base map carries no explicit sidebar value.
var sidebarFallbacks = map[string]string{
	"sidebar":                    "background",
	"sidebar-foreground":         "foreground",
	"sidebar-primary":            "primary",
	"sidebar-primary-foreground": "primary-foreground",
	"sidebar-accent":             "accent",
	"sidebar-accent-foreground":  "accent-foreground",
	"sidebar-border":             "border",
	"sidebar-ring":               "ring",
}

// ResolveVars computes the full variable map for one resolved mode.
// It is a pure function; precedence is base (with sidebar fallbacks
// filled) < radius < overrides.
func ResolveVars(s Settings, rm ResolvedMode) map[string]string {
	base := baseVars(s, rm)

	vars := make(map[string]string, len(base)+len(sidebarFallbacks)+len(s.Overrides)+1)
	for k, v := range base {
		vars[k] = v
	}

	for sidebarKey, fallbackKey := range sidebarFallbacks {
		if _, ok := vars[sidebarKey]; ok {
			continue
		}
		if v, ok := vars[fallbackKey]; ok {
			vars[sidebarKey] = v
		}
	}

	if s.Radius != "" {
		vars[RadiusKey] = s.Radius
	}

	for k, v := range s.Overrides {
		vars[k] = v
	}

	return vars
}

// baseVars selects the base branch for the resolved mode.
func baseVars(s Settings, rm ResolvedMode) map[string]string {
	if s.Base == BaseImported && s.Imported != nil {
		if rm == Dark {
			return s.Imported.Dark
		}
		return s.Imported.Light
	}

	preset := PresetByName(s.Preset)
	if rm == Dark {
		return preset.Dark
	}
	return preset.Light
}

// VarsCache mirrors both resolved variants so the pre-paint bootstrap
// can restore either branch without recomputation.
type VarsCache struct {
	Light map[string]string `json:"light"`
	Dark  map[string]string `json:"dark"`
}

// BuildVarsCache resolves both branches of the given settings.
func BuildVarsCache(s Settings) VarsCache {
	return VarsCache{
		Light: ResolveVars(s, Light),
		Dark:  ResolveVars(s, Dark),
	}
}
