// Package store owns the theme pipeline's state: the persisted mode,
// the live system preference, the derived resolved mode and the
// variable cache. Every mutation of the shared root element funnels
// through this store's single synchronizer.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/74587/srec-dash/internal/dom"
	"github.com/74587/srec-dash/internal/logging"
	"github.com/74587/srec-dash/internal/storage"
	"github.com/74587/srec-dash/internal/theme"
)

// Options configures a Store. The zero value yields a functional
// memory-only store with the default mode, so there is no "used
// outside provider" failure path.
type Options struct {
	// Storage persists mode and vars cache. Nil means memory-only.
	Storage *storage.Store

	// ServerMode is a caller-supplied fallback used when storage has no
	// mode, e.g. the mode a reverse proxy resolved from the request
	// cookie. Empty means none.
	ServerMode theme.Mode

	// SystemDark seeds the live system preference before the first
	// watcher refresh.
	SystemDark bool

	// Root receives all DOM mutations. Nil means an in-memory root.
	Root dom.Root

	// Settings is the layered theme configuration. Zero value means
	// defaults.
	Settings theme.Settings
}

// Event describes one observable store change.
type Event struct {
	Mode     theme.Mode
	Resolved theme.ResolvedMode
	Vars     map[string]string
}

type subscription struct {
	fn func(Event)
}

// Store holds theme state and keeps the root element synchronized.
type Store struct {
	mu sync.Mutex

	storage    *storage.Store
	root       dom.Root
	sync       *dom.Synchronizer
	settings   theme.Settings
	mode       theme.Mode
	systemDark bool
	resolved   theme.ResolvedMode

	subs []*subscription
}

// New initializes the store synchronously. Mode comes from storage,
// else opts.ServerMode, else the fixed default. The root is brought in
// line immediately, so when the pre-paint bootstrap already applied the
// same persisted state this first synchronization is a visual no-op.
func New(ctx context.Context, opts Options) *Store {
	log := logging.FromContext(ctx)

	root := opts.Root
	if root == nil {
		root = dom.NewMemoryRoot()
	}

	settings := opts.Settings
	if settings.Base == "" {
		settings = theme.DefaultSettings()
	}

	mode := theme.DefaultMode
	if opts.ServerMode.Valid() {
		mode = opts.ServerMode
	}
	source := "default"
	if opts.Storage != nil {
		raw, ok, err := opts.Storage.Get(storage.KeyMode)
		switch {
		case err != nil:
			// Storage may be unavailable; fall back silently.
			log.Debug().Err(err).Msg("mode read failed, using fallback")
		case ok:
			if parsed, valid := theme.ParseMode(raw); valid {
				mode = parsed
				source = "storage"
			}
		}
	}

	s := &Store{
		storage:    opts.Storage,
		root:       root,
		sync:       dom.NewSynchronizer(root),
		settings:   settings,
		mode:       mode,
		systemDark: opts.SystemDark,
	}
	s.resolved = theme.Resolve(mode, opts.SystemDark)
	s.applyLocked()

	log.Debug().
		Str("mode", string(mode)).
		Str("resolved", string(s.resolved)).
		Str("source", source).
		Msg("theme store initialized")
	return s
}

// Mode returns the user-selected mode.
func (s *Store) Mode() theme.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// ResolvedMode returns the concrete light/dark value in effect.
func (s *Store) ResolvedMode() theme.ResolvedMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolved
}

// SystemDark returns the live system preference the store last saw.
func (s *Store) SystemDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.systemDark
}

// Settings returns the current layered configuration.
func (s *Store) Settings() theme.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Vars returns the variable map for the current resolved mode.
func (s *Store) Vars() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return theme.ResolveVars(s.settings, s.resolved)
}

// Root returns the root element this store synchronizes.
func (s *Store) Root() dom.Root {
	return s.root
}

// SetMode updates the mode, persists it best-effort and re-synchronizes
// the root. Calling it twice with the same value produces the same
// observable state as calling it once.
func (s *Store) SetMode(ctx context.Context, mode theme.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("invalid mode %q", mode)
	}

	log := logging.FromContext(ctx)

	s.mu.Lock()
	s.mode = mode
	if s.storage != nil {
		if err := s.storage.Set(storage.KeyMode, string(mode)); err != nil {
			// Storage may be disabled or full; the in-memory state is
			// still authoritative for this process.
			log.Debug().Err(err).Msg("mode persist failed")
		}
	}
	s.recomputeLocked()
	s.mu.Unlock()

	log.Info().Str("mode", string(mode)).Msg("theme mode changed")
	return nil
}

// SetSystemDark feeds a system preference change into the store. It
// cascades into the resolved mode only while mode is "system".
func (s *Store) SetSystemDark(ctx context.Context, dark bool) {
	s.mu.Lock()
	s.systemDark = dark
	s.recomputeLocked()
	resolved := s.resolved
	s.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Bool("system_dark", dark).
		Str("resolved", string(resolved)).
		Msg("system preference updated")
}

// ApplyExternal accepts a mode value that already originated from
// storage (another process or tab wrote it) and applies it without
// writing back, so two contexts never feed each other notifications.
// Empty or unknown values fall back to the default mode.
func (s *Store) ApplyExternal(ctx context.Context, raw string) {
	log := logging.FromContext(ctx)

	mode, _ := theme.ParseMode(raw)
	s.mu.Lock()
	s.mode = mode
	s.recomputeLocked()
	s.mu.Unlock()

	log.Debug().Str("mode", string(mode)).Msg("mode applied from external change")
}

// UpdateSettings swaps the layered configuration, re-synchronizes the
// root and rewrites the vars cache.
func (s *Store) UpdateSettings(ctx context.Context, settings theme.Settings) {
	log := logging.FromContext(ctx)

	s.mu.Lock()
	if settings.Base == "" {
		settings = theme.DefaultSettings()
	}
	s.settings = settings
	s.applyLocked()
	subs, event := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(subs, event)
	s.RefreshVarsCache(ctx)
	log.Debug().Str("preset", settings.Preset).Msg("theme settings updated")
}

// RefreshVarsCache resolves both branches and persists them for the
// next pre-paint bootstrap run. Best-effort: a failed write only costs
// the next page load its instant variable restore.
func (s *Store) RefreshVarsCache(ctx context.Context) {
	s.mu.Lock()
	settings := s.settings
	st := s.storage
	s.mu.Unlock()

	if st == nil {
		return
	}

	cache := theme.BuildVarsCache(settings)
	data, err := marshalCache(cache)
	if err == nil {
		err = st.Set(storage.KeyVarsCache, data)
	}
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("vars cache write failed")
	}
}

// OnChange registers a callback invoked after every effective change.
// Returns a function to unregister the callback.
func (s *Store) OnChange(fn func(Event)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &subscription{fn: fn}
	s.subs = append(s.subs, sub)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, cur := range s.subs {
			if cur == sub {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// recomputeLocked re-derives the resolved mode and reapplies + notifies
// when it changed. Caller must hold mu; the lock is released around
// subscriber callbacks.
func (s *Store) recomputeLocked() {
	next := theme.Resolve(s.mode, s.systemDark)
	if next == s.resolved {
		return
	}
	s.resolved = next
	s.applyLocked()

	subs, event := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(subs, event)
	s.mu.Lock()
}

// applyLocked funnels the current state through the synchronizer.
func (s *Store) applyLocked() {
	s.sync.Apply(s.resolved, theme.ResolveVars(s.settings, s.resolved))
}

func (s *Store) snapshotLocked() ([]*subscription, Event) {
	subs := make([]*subscription, len(s.subs))
	copy(subs, s.subs)
	event := Event{
		Mode:     s.mode,
		Resolved: s.resolved,
		Vars:     theme.ResolveVars(s.settings, s.resolved),
	}
	return subs, event
}

func (s *Store) notify(subs []*subscription, event Event) {
	for _, sub := range subs {
		sub.fn(event)
	}
}
