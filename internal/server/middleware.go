package server

import (
	"context"
	"net/http"

	"github.com/74587/srec-dash/internal/theme"
)

type contextKey string

const requestModeKey contextKey = "request-mode"

// themeCookie reads the mirrored mode cookie so rendering can pick the
// correct server-resolved mode before client code runs, and refreshes
// the cookie's expiry on every request.
func (s *Server) themeCookie(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mode, ok := theme.ModeFromRequest(r)
		if !ok {
			mode = s.store.Mode()
		} else {
			http.SetCookie(w, theme.ModeCookie(mode))
		}
		ctx := context.WithValue(r.Context(), requestModeKey, mode)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestMode returns the mode the cookie middleware resolved for this
// request, falling back to the store's mode.
func (s *Server) requestMode(r *http.Request) theme.Mode {
	if mode, ok := r.Context().Value(requestModeKey).(theme.Mode); ok {
		return mode
	}
	return s.store.Mode()
}
