package colorscheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDetector implements Detector with fixed answers.
type mockDetector struct {
	name      string
	priority  int
	available bool
	dark      bool
	ok        bool
}

func (m *mockDetector) Name() string         { return m.name }
func (m *mockDetector) Priority() int        { return m.priority }
func (m *mockDetector) Available() bool      { return m.available }
func (m *mockDetector) Detect() (bool, bool) { return m.dark, m.ok }

func TestResolver_NoDetectorsFallsBackToLight(t *testing.T) {
	r := NewResolver()

	pref := r.Resolve()

	assert.False(t, pref.PrefersDark)
	assert.Equal(t, "fallback", pref.Source)
}

func TestResolver_HighestPriorityWins(t *testing.T) {
	r := NewResolver()
	r.RegisterDetector(&mockDetector{name: "low", priority: 10, available: true, dark: false, ok: true})
	r.RegisterDetector(&mockDetector{name: "high", priority: 20, available: true, dark: true, ok: true})

	pref := r.Resolve()

	assert.True(t, pref.PrefersDark)
	assert.Equal(t, "high", pref.Source)
}

func TestResolver_SkipsUnavailable(t *testing.T) {
	r := NewResolver()
	r.RegisterDetector(&mockDetector{name: "high", priority: 20, available: false, dark: true, ok: true})
	r.RegisterDetector(&mockDetector{name: "low", priority: 10, available: true, dark: false, ok: true})

	pref := r.Resolve()

	assert.False(t, pref.PrefersDark)
	assert.Equal(t, "low", pref.Source)
}

func TestResolver_SkipsInconclusive(t *testing.T) {
	r := NewResolver()
	r.RegisterDetector(&mockDetector{name: "high", priority: 20, available: true, ok: false})
	r.RegisterDetector(&mockDetector{name: "low", priority: 10, available: true, dark: true, ok: true})

	pref := r.Resolve()

	assert.True(t, pref.PrefersDark)
	assert.Equal(t, "low", pref.Source)
}

func TestResolver_RefreshNotifiesOnFlip(t *testing.T) {
	det := &mockDetector{name: "mock", priority: 10, available: true, dark: false, ok: true}
	r := NewResolver()
	r.RegisterDetector(det)

	var got []Preference
	r.OnChange(func(p Preference) { got = append(got, p) })

	// Same preference as the initial fallback: no notification.
	r.Refresh()
	assert.Empty(t, got)

	det.dark = true
	pref := r.Refresh()
	require.Len(t, got, 1)
	assert.True(t, got[0].PrefersDark)
	assert.Equal(t, pref, got[0])

	// Unchanged again: still one notification.
	r.Refresh()
	assert.Len(t, got, 1)
}

func TestResolver_Unsubscribe(t *testing.T) {
	det := &mockDetector{name: "mock", priority: 10, available: true, dark: false, ok: true}
	r := NewResolver()
	r.RegisterDetector(det)

	var calls int
	unsubscribe := r.OnChange(func(Preference) { calls++ })
	unsubscribe()

	det.dark = true
	r.Refresh()

	assert.Zero(t, calls)
}

func TestResolver_SourceTracksRefresh(t *testing.T) {
	det := &mockDetector{name: "mock", priority: 10, available: true, dark: true, ok: true}
	r := NewResolver()
	r.RegisterDetector(det)

	pref := r.Refresh()
	assert.Equal(t, "mock", pref.Source)

	// Detector goes away; next refresh falls back to light.
	det.available = false
	pref = r.Refresh()
	assert.False(t, pref.PrefersDark)
	assert.Equal(t, "fallback", pref.Source)
}
