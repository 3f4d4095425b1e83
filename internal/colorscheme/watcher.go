package colorscheme

import (
	"context"
	"time"

	"github.com/74587/srec-dash/internal/logging"
)

// DefaultPollInterval is how often the watcher re-queries the system
// preference when the config does not say otherwise.
const DefaultPollInterval = 10 * time.Second

// Watch polls the resolver until ctx is cancelled. Subscribers
// registered via OnChange observe preference flips; there is no push
// notification channel for gsettings without a GTK main loop, so
// polling is the change source.
func Watch(ctx context.Context, r *Resolver, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	log := logging.FromContext(ctx)
	pref := r.Refresh()
	log.Debug().
		Bool("prefers_dark", pref.PrefersDark).
		Str("source", pref.Source).
		Dur("interval", interval).
		Msg("system preference watcher started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.Refresh()
		}
	}
}
