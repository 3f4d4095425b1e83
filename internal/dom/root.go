// Package dom models the dashboard's root document element and the
// synchronizer that applies resolved theme state to it. The served
// page mirrors these mutations client-side; keeping a Go-side root
// lets the server render the exact markup the first paint needs.
package dom

import "sort"

// Root is the mutable surface the theme pipeline writes to: the class
// list, the color-scheme style property and CSS custom properties of
// the document root.
type Root interface {
	AddClass(name string)
	RemoveClass(name string)
	SetColorScheme(value string)
	SetProperty(name, value string)
	RemoveProperty(name string)
}

// MemoryRoot is the in-process Root implementation backing server-side
// rendering and tests.
type MemoryRoot struct {
	classes     map[string]struct{}
	classOrder  []string
	colorScheme string
	props       map[string]string
}

// NewMemoryRoot returns an empty root.
func NewMemoryRoot() *MemoryRoot {
	return &MemoryRoot{
		classes: make(map[string]struct{}),
		props:   make(map[string]string),
	}
}

// AddClass implements Root.
func (r *MemoryRoot) AddClass(name string) {
	if _, ok := r.classes[name]; ok {
		return
	}
	r.classes[name] = struct{}{}
	r.classOrder = append(r.classOrder, name)
}

// RemoveClass implements Root.
func (r *MemoryRoot) RemoveClass(name string) {
	if _, ok := r.classes[name]; !ok {
		return
	}
	delete(r.classes, name)
	for i, c := range r.classOrder {
		if c == name {
			r.classOrder = append(r.classOrder[:i], r.classOrder[i+1:]...)
			break
		}
	}
}

// HasClass reports whether the class is present.
func (r *MemoryRoot) HasClass(name string) bool {
	_, ok := r.classes[name]
	return ok
}

// Classes returns the class list in insertion order.
func (r *MemoryRoot) Classes() []string {
	out := make([]string, len(r.classOrder))
	copy(out, r.classOrder)
	return out
}

// SetColorScheme implements Root.
func (r *MemoryRoot) SetColorScheme(value string) {
	r.colorScheme = value
}

// ColorScheme returns the current color-scheme style value.
func (r *MemoryRoot) ColorScheme() string {
	return r.colorScheme
}

// SetProperty implements Root.
func (r *MemoryRoot) SetProperty(name, value string) {
	r.props[name] = value
}

// RemoveProperty implements Root.
func (r *MemoryRoot) RemoveProperty(name string) {
	delete(r.props, name)
}

// Property returns a custom property value and whether it is set.
func (r *MemoryRoot) Property(name string) (string, bool) {
	v, ok := r.props[name]
	return v, ok
}

// Properties returns a copy of all set custom properties.
func (r *MemoryRoot) Properties() map[string]string {
	out := make(map[string]string, len(r.props))
	for k, v := range r.props {
		out[k] = v
	}
	return out
}

// PropertyNames returns the set property names in sorted order.
func (r *MemoryRoot) PropertyNames() []string {
	names := make([]string, 0, len(r.props))
	for k := range r.props {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
