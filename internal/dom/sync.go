package dom

import (
	"github.com/74587/srec-dash/internal/theme"
)

// Synchronizer applies a resolved mode and a full variable map to one
// Root, diffing against the previously applied key set so a visible
// property is never transiently unset.
//
// It is not safe for concurrent use; all theme mutations funnel through
// a single owner.
type Synchronizer struct {
	root Root

	// applied is the snapshot of custom property names written by the
	// previous Apply. The first Apply starts from an empty snapshot.
	applied map[string]struct{}
}

// NewSynchronizer creates a synchronizer for the given root.
func NewSynchronizer(root Root) *Synchronizer {
	return &Synchronizer{
		root:    root,
		applied: make(map[string]struct{}),
	}
}

// Apply writes the mode class, color-scheme and variable map.
//
// Class handling removes the other mode class and adds exactly one, so
// there is no interim state with neither class. Variables are added or
// overwritten before stale ones are removed.
func (s *Synchronizer) Apply(rm theme.ResolvedMode, vars map[string]string) {
	ApplyMode(s.root, rm)

	next := make(map[string]struct{}, len(vars))
	for name, value := range vars {
		s.root.SetProperty("--"+name, value)
		next[name] = struct{}{}
	}

	for name := range s.applied {
		if _, ok := next[name]; !ok {
			s.root.RemoveProperty("--" + name)
		}
	}

	s.applied = next
}

// ApplyMode writes only the mode class and color-scheme, leaving
// custom properties untouched. The pre-paint fallback path uses this
// when the variable cache is unusable.
func ApplyMode(root Root, rm theme.ResolvedMode) {
	if rm == theme.Dark {
		root.RemoveClass(string(theme.Light))
		root.AddClass(string(theme.Dark))
	} else {
		root.RemoveClass(string(theme.Dark))
		root.AddClass(string(theme.Light))
	}
	root.SetColorScheme(string(rm))
}
