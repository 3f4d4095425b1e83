package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/74587/srec-dash/internal/colorscheme"
	"github.com/74587/srec-dash/internal/config"
	"github.com/74587/srec-dash/internal/logging"
	"github.com/74587/srec-dash/internal/server"
	"github.com/74587/srec-dash/internal/storage"
	themestore "github.com/74587/srec-dash/internal/theme/store"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := cfgManager.Get()
	if serveAddr != "" {
		cfg.Server.ListenAddr = serveAddr
	}

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: time.RFC3339,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithContext(ctx, logger)

	statePath := cfg.StateFile
	if statePath == "" {
		var err error
		statePath, err = config.GetStateFile()
		if err != nil {
			return err
		}
	}
	st := storage.New(statePath)

	resolver := colorscheme.NewSystemResolver()
	pref := resolver.Refresh()

	ts := themestore.New(ctx, themestore.Options{
		Storage:    st,
		SystemDark: pref.PrefersDark,
		Settings:   cfg.Theme,
	})
	// Seed the cache so the very next page load restores instantly.
	ts.RefreshVarsCache(ctx)

	unsubscribe := resolver.OnChange(func(p colorscheme.Preference) {
		ts.SetSystemDark(ctx, p.PrefersDark)
	})
	defer unsubscribe()

	cfgManager.OnConfigChange(func(c *config.Config) {
		ts.UpdateSettings(ctx, c.Theme)
	})
	if err := cfgManager.Watch(); err != nil {
		logger.Warn().Err(err).Msg("config watch unavailable")
	}

	srv := server.New(cfg.Server.ListenAddr, ts, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(ctx)
	})
	g.Go(func() error {
		return colorscheme.Watch(ctx, resolver, cfg.Server.PreferencePollInterval)
	})
	g.Go(func() error {
		// Another process (or the CLI) writing the mode key lands here;
		// ApplyExternal never writes back, so processes don't ping-pong.
		return st.Watch(ctx, func(changes []storage.Change) {
			for _, change := range changes {
				if change.Key != storage.KeyMode {
					continue
				}
				value := ""
				if change.Present {
					value = change.Value
				}
				ts.ApplyExternal(ctx, value)
			}
		})
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info().Msg("dashboard server stopped")
	return nil
}
