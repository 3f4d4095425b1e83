package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/74587/srec-dash/internal/logging"
)

// Change describes one changed key as observed by Watch. Removed keys
// carry Present=false.
type Change struct {
	Key     string
	Value   string
	Present bool
}

// Watch observes the state file for writes made by other processes and
// invokes fn with the changed keys. Notifications for this store's own
// writes are suppressed, so a subscriber reacting to a change never
// loops back through its own persistence.
//
// Watch blocks until ctx is cancelled or the watcher fails.
func (s *Store) Watch(ctx context.Context, fn func([]Change)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create state watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: atomic rename replaces the file inode, so a
	// watch on the file itself would be lost after the first write.
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch state dir: %w", err)
	}

	log := logging.FromContext(ctx)

	prev, err := s.Snapshot()
	if err != nil {
		log.Warn().Err(err).Msg("state snapshot failed, starting watch from empty state")
		prev = map[string]string{}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.path) {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}

			next, err := s.Snapshot()
			if err != nil {
				log.Warn().Err(err).Msg("failed to reload state after change")
				continue
			}

			if s.consumeSelfWrite() {
				// Our own Set landed; the in-memory view is already
				// correct, just advance the diff baseline.
				prev = next
				continue
			}

			changes := diffState(prev, next)
			prev = next
			if len(changes) == 0 {
				continue
			}
			log.Debug().Int("changes", len(changes)).Str("file", s.path).Msg("external state change detected")
			fn(changes)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("state watcher error")
		}
	}
}

// diffState computes per-key changes between two snapshots.
func diffState(prev, next map[string]string) []Change {
	var changes []Change
	for k, v := range next {
		if old, ok := prev[k]; !ok || old != v {
			changes = append(changes, Change{Key: k, Value: v, Present: true})
		}
	}
	for k := range prev {
		if _, ok := next[k]; !ok {
			changes = append(changes, Change{Key: k, Present: false})
		}
	}
	return changes
}
