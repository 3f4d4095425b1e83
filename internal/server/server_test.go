package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/74587/srec-dash/internal/storage"
	"github.com/74587/srec-dash/internal/theme"
	themestore "github.com/74587/srec-dash/internal/theme/store"
)

func newTestServer(t *testing.T, opts themestore.Options) (*Server, *themestore.Store) {
	t.Helper()
	st := themestore.New(context.Background(), opts)
	return New("127.0.0.1:0", st, zerolog.Nop()), st
}

func modeCookieFrom(t *testing.T, res *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range res.Cookies() {
		if c.Name == theme.CookieName {
			return c
		}
	}
	return nil
}

func TestShell_DefaultRender(t *testing.T) {
	srv, _ := newTestServer(t, themestore.Options{})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, `<html lang="en" class="light"`)
	assert.Contains(t, body, "color-scheme: light")
	assert.Contains(t, body, "--background:")
	// The pre-paint script is inlined ahead of the stylesheet.
	scriptIdx := strings.Index(body, "var MODE_KEY")
	styleIdx := strings.Index(body, "<style>")
	require.NotEqual(t, -1, scriptIdx)
	require.NotEqual(t, -1, styleIdx)
	assert.Less(t, scriptIdx, styleIdx)
}

func TestShell_CookieSelectsMode(t *testing.T) {
	srv, _ := newTestServer(t, themestore.Options{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: theme.CookieName, Value: "dark"})
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, `class="dark"`)
	assert.Contains(t, body, "color-scheme: dark")

	// The middleware refreshes the cookie expiry.
	c := modeCookieFrom(t, rec.Result())
	require.NotNil(t, c)
	assert.Equal(t, "dark", c.Value)
	assert.Equal(t, 31536000, c.MaxAge)
}

func TestShell_SystemModeFollowsSystemDark(t *testing.T) {
	srv, _ := newTestServer(t, themestore.Options{SystemDark: true})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: theme.CookieName, Value: "system"})
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Contains(t, rec.Body.String(), `class="dark"`)
}

func TestGetTheme(t *testing.T) {
	srv, st := newTestServer(t, themestore.Options{})
	require.NoError(t, st.SetMode(context.Background(), theme.ModeDark))

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/theme", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got themeState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, theme.ModeDark, got.Mode)
	assert.Equal(t, theme.Dark, got.Resolved)
	assert.NotEmpty(t, got.Vars)
}

func TestSetTheme(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.json")
	store := storage.New(statePath)
	srv, st := newTestServer(t, themestore.Options{Storage: store})

	req := httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(`{"mode":"dark"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, theme.ModeDark, st.Mode())

	// Cookie mirrors the new mode for the next server render.
	c := modeCookieFrom(t, rec.Result())
	require.NotNil(t, c)
	assert.Equal(t, "dark", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	// And storage holds it for the next bootstrap run.
	v, ok, err := store.Get(storage.KeyMode)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestSetTheme_BadRequests(t *testing.T) {
	srv, _ := newTestServer(t, themestore.Options{})

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", "{"},
		{"unknown mode", `{"mode":"sepia"}`},
		{"missing mode", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			srv.Router().ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPresets(t *testing.T) {
	srv, _ := newTestServer(t, themestore.Options{})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/theme/presets", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []presetInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotEmpty(t, got)

	names := make([]string, 0, len(got))
	for _, p := range got {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, theme.DefaultPresetName)
	assert.Contains(t, names, "slate")
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	client := &wsClient{send: make(chan themeState, 1)}
	hub.register(client)
	defer hub.unregister(client)

	hub.Broadcast(themestore.Event{Mode: theme.ModeDark, Resolved: theme.Dark})

	select {
	case st := <-client.send:
		assert.Equal(t, theme.ModeDark, st.Mode)
	default:
		t.Fatal("expected broadcast to reach registered client")
	}
}

func TestHub_DropsWhenClientStalls(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	client := &wsClient{send: make(chan themeState, 1)}
	hub.register(client)
	defer hub.unregister(client)

	hub.Broadcast(themestore.Event{Resolved: theme.Light})
	// The buffer is full; this must not block.
	hub.Broadcast(themestore.Event{Resolved: theme.Dark})

	st := <-client.send
	assert.Equal(t, theme.Light, st.Resolved)
}

func TestInlineVars(t *testing.T) {
	got := inlineVars(theme.Dark, map[string]string{"b": "2", "a": "1"})
	assert.Equal(t, "color-scheme: dark; --a: 1; --b: 2", got)
}
