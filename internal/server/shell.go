package server

import (
	"net/http"
	"sort"
	"strings"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/74587/srec-dash/internal/bootstrap"
	"github.com/74587/srec-dash/internal/theme"
)

// handleShell renders the dashboard shell. The <html> element already
// carries the server-resolved mode class, color-scheme and variables,
// and the inline bootstrap script corrects them from the client's own
// storage before first paint, so neither path flashes.
func (s *Server) handleShell(w http.ResponseWriter, r *http.Request) {
	mode := s.requestMode(r)
	resolved := theme.Resolve(mode, s.store.SystemDark())
	vars := theme.ResolveVars(s.store.Settings(), resolved)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := shellPage(resolved, vars).Render(w); err != nil {
		s.logger.Warn().Err(err).Msg("shell render failed")
	}
}

func shellPage(resolved theme.ResolvedMode, vars map[string]string) Node {
	return Doctype(
		HTML(
			Lang("en"),
			Class(string(resolved)),
			Style(inlineVars(resolved, vars)),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(Text("Sessions | srec dashboard")),
				// Must precede every stylesheet: it restyles the root
				// synchronously from persisted state.
				Script(Raw(bootstrap.Script(bootstrap.DefaultOptions()))),
				StyleEl(Raw(shellCSS)),
			),
			Body(
				Header(Class("topbar"),
					H1(Text("srec dashboard")),
					Button(ID("mode-toggle"), Class("mode-toggle"), Text("theme")),
				),
				Main(ID("app"),
					P(Class("placeholder"), Text("Loading sessions…")),
				),
				Script(Raw(shellJS)),
			),
		),
	)
}

// inlineVars renders the style attribute for the root element with
// deterministic key order.
func inlineVars(resolved theme.ResolvedMode, vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("color-scheme: ")
	sb.WriteString(string(resolved))
	for _, k := range keys {
		sb.WriteString("; --")
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(vars[k])
	}
	return sb.String()
}

// shellCSS styles the shell purely through the custom properties the
// pipeline manages, so every theme change restyles without a reload.
const shellCSS = `
:root { font-family: system-ui, sans-serif; }
body {
  margin: 0;
  background: var(--background);
  color: var(--foreground);
}
.topbar {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 0.75rem 1.25rem;
  border-bottom: 1px solid var(--border);
}
.topbar h1 { font-size: 1rem; margin: 0; }
.mode-toggle {
  background: var(--secondary);
  color: var(--secondary-foreground);
  border: 1px solid var(--border);
  border-radius: var(--radius, 0.375rem);
  padding: 0.35rem 0.9rem;
  cursor: pointer;
}
.mode-toggle:hover { background: var(--accent); color: var(--accent-foreground); }
#app { padding: 1.25rem; }
.placeholder { color: var(--muted-foreground); }
`

// shellJS is the minimal client runtime: the toggle cycles modes and
// the event socket follows changes made from the CLI or another
// process. Both funnel through the same storage keys the bootstrap
// reads, so every context agrees on the next load.
const shellJS = `(function() {
  var MODES = ['light', 'dark', 'system'];

  function persist(mode) {
    try { window.localStorage.setItem('theme', mode); } catch (e) {}
  }

  function applyEvent(ev) {
    var doc = document.documentElement;
    if (ev.resolved === 'dark') {
      doc.classList.add('dark');
      doc.classList.remove('light');
    } else {
      doc.classList.add('light');
      doc.classList.remove('dark');
    }
    doc.style.colorScheme = ev.resolved;
    if (ev.vars) {
      for (var k in ev.vars) {
        if (Object.prototype.hasOwnProperty.call(ev.vars, k)) {
          doc.style.setProperty('--' + k, ev.vars[k]);
        }
      }
    }
  }

  var toggle = document.getElementById('mode-toggle');
  if (toggle) {
    toggle.addEventListener('click', function() {
      var current = 'system';
      try { current = window.localStorage.getItem('theme') || 'system'; } catch (e) {}
      var next = MODES[(MODES.indexOf(current) + 1) % MODES.length];
      persist(next);
      fetch('/api/theme', {
        method: 'PUT',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({ mode: next })
      }).then(function(resp) { return resp.json(); }).then(applyEvent).catch(function() {});
    });
  }

  try {
    var proto = window.location.protocol === 'https:' ? 'wss://' : 'ws://';
    var sock = new WebSocket(proto + window.location.host + '/api/theme/events');
    sock.onmessage = function(msg) {
      try { applyEvent(JSON.parse(msg.data)); } catch (e) {}
    };
  } catch (e) {}
})();`
