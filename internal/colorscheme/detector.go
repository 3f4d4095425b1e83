// Package colorscheme detects the operating system's light/dark
// preference and notifies the theme store when it changes.
package colorscheme

// Detector detects the system's color scheme preference.
// Multiple detectors can be registered with different priorities.
type Detector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority returns the detector's priority.
	// Higher values = higher priority (checked first).
	Priority() int

	// Available returns true if this detector can be used.
	Available() bool

	// Detect returns the detected preference and whether detection
	// succeeded.
	Detect() (prefersDark bool, ok bool)
}

// Preference is the resolved system color scheme preference.
type Preference struct {
	// PrefersDark indicates whether dark mode is preferred.
	PrefersDark bool

	// Source identifies which detector provided this preference.
	Source string
}
