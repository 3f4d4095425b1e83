package colorscheme

import (
	"sort"
	"sync"
)

// sourceFallback indicates no detector provided the preference.
const sourceFallback = "fallback"

// callbackWrapper wraps a callback function to enable pointer
// comparison for removal.
type callbackWrapper struct {
	fn func(Preference)
}

// Resolver queries registered detectors by priority and notifies
// subscribers when the resolved preference changes.
type Resolver struct {
	mu        sync.RWMutex
	detectors []Detector
	current   Preference
	callbacks []*callbackWrapper
}

// NewResolver creates a new color scheme resolver with no detectors.
func NewResolver() *Resolver {
	return &Resolver{
		detectors: make([]Detector, 0),
		current: Preference{
			// Light until first Resolve(), matching the dashboard's
			// stylesheet default.
			PrefersDark: false,
			Source:      sourceFallback,
		},
	}
}

// NewSystemResolver creates a resolver with the standard detector
// chain registered.
func NewSystemResolver() *Resolver {
	r := NewResolver()
	r.RegisterDetector(NewEnvDetector())
	r.RegisterDetector(NewGsettingsDetector())
	return r
}

// Resolve returns the current preference without notifying subscribers.
func (r *Resolver) Resolve() Preference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveInternal()
}

// resolveInternal performs the actual resolution without locking.
// Caller must hold at least a read lock.
func (r *Resolver) resolveInternal() Preference {
	// Sort detectors by priority (highest first)
	sorted := make([]Detector, len(r.detectors))
	copy(sorted, r.detectors)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})

	for _, detector := range sorted {
		if !detector.Available() {
			continue
		}
		if prefersDark, ok := detector.Detect(); ok {
			return Preference{
				PrefersDark: prefersDark,
				Source:      detector.Name(),
			}
		}
	}

	return Preference{
		PrefersDark: false,
		Source:      sourceFallback,
	}
}

// RegisterDetector adds a detector to the resolver.
// Safe to call at any time; the resolver re-evaluates on next Resolve().
func (r *Resolver) RegisterDetector(detector Detector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
}

// Refresh forces re-evaluation of the color scheme and invokes
// subscribers when the dark preference flipped. Returns the new
// preference.
func (r *Resolver) Refresh() Preference {
	r.mu.Lock()
	defer r.mu.Unlock()

	newPref := r.resolveInternal()

	// Only notify if preference changed
	if newPref.PrefersDark != r.current.PrefersDark {
		r.current = newPref
		// Copy callbacks to avoid holding lock during callback invocation
		callbacks := make([]*callbackWrapper, len(r.callbacks))
		copy(callbacks, r.callbacks)

		r.mu.Unlock()
		for _, cb := range callbacks {
			cb.fn(newPref)
		}
		r.mu.Lock()
	} else {
		r.current = newPref
	}

	return newPref
}

// OnChange registers a callback for preference changes.
// Returns a function to unregister the callback.
func (r *Resolver) OnChange(callback func(Preference)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	wrapper := &callbackWrapper{fn: callback}
	r.callbacks = append(r.callbacks, wrapper)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		for i, cb := range r.callbacks {
			if cb == wrapper {
				r.callbacks = append(r.callbacks[:i], r.callbacks[i+1:]...)
				return
			}
		}
	}
}
