package server

import (
	"encoding/json"
	"net/http"

	"github.com/74587/srec-dash/internal/theme"
	themestore "github.com/74587/srec-dash/internal/theme/store"
)

// themeState is the wire shape of the current theme.
type themeState struct {
	Mode     theme.Mode         `json:"mode"`
	Resolved theme.ResolvedMode `json:"resolved"`
	Vars     map[string]string  `json:"vars,omitempty"`
}

func stateFromEvent(ev themestore.Event) themeState {
	return themeState{Mode: ev.Mode, Resolved: ev.Resolved, Vars: ev.Vars}
}

// handleGetTheme reports the store's current state.
func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, themeState{
		Mode:     s.store.Mode(),
		Resolved: s.store.ResolvedMode(),
		Vars:     s.store.Vars(),
	})
}

// handleSetTheme changes the mode and mirrors it into the cookie.
func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	mode, ok := theme.ParseMode(req.Mode)
	if !ok {
		http.Error(w, "unknown mode", http.StatusBadRequest)
		return
	}

	if err := s.store.SetMode(r.Context(), mode); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	http.SetCookie(w, theme.ModeCookie(mode))
	writeJSON(w, http.StatusOK, themeState{
		Mode:     s.store.Mode(),
		Resolved: s.store.ResolvedMode(),
		Vars:     s.store.Vars(),
	})
}

// presetInfo describes one registry entry for the API.
type presetInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// handlePresets lists the built-in presets.
func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	names := theme.PresetNames()
	out := make([]presetInfo, 0, len(names))
	for _, name := range names {
		p := theme.PresetByName(name)
		out = append(out, presetInfo{Name: p.Name, Description: p.Description})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
