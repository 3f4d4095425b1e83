// Package server hosts the dashboard shell and the theme API. The
// shell page carries the pre-paint bootstrap script and the
// server-resolved initial theme, so the first paint matches the
// client's persisted preference.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/74587/srec-dash/internal/logging"
	themestore "github.com/74587/srec-dash/internal/theme/store"
)

// Server wires the router, the theme store and the event hub.
type Server struct {
	addr   string
	store  *themestore.Store
	hub    *Hub
	logger zerolog.Logger

	unsubscribe func()
}

// New creates a server around the given theme store.
func New(addr string, store *themestore.Store, logger zerolog.Logger) *Server {
	s := &Server{
		addr:   addr,
		store:  store,
		hub:    NewHub(logger),
		logger: logger,
	}
	// Push every effective theme change to connected dashboard tabs.
	s.unsubscribe = store.OnChange(func(ev themestore.Event) {
		s.hub.Broadcast(ev)
	})
	return s
}

// Router builds the chi router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(s.themeCookie)

	r.Get("/", s.handleShell)
	r.Route("/api/theme", func(r chi.Router) {
		r.Get("/", s.handleGetTheme)
		r.Put("/", s.handleSetTheme)
		r.Get("/presets", s.handlePresets)
		r.Get("/events", s.handleEvents)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ctx = logging.WithContext(ctx, s.logger)

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.addr).Msg("dashboard server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.hub.CloseAll()
		if s.unsubscribe != nil {
			s.unsubscribe()
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
