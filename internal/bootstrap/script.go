// Package bootstrap generates the pre-paint script inlined into the
// dashboard shell's <head>. The script runs before any stylesheet or
// component code, reads the persisted mode and variable cache, and
// styles the document root synchronously so the first paint is never
// wrong.
package bootstrap

import (
	"fmt"

	"github.com/74587/srec-dash/internal/storage"
	"github.com/74587/srec-dash/internal/theme"
)

// Options parameterize the generated script. The script references
// nothing but these values and browser globals, so it can run in an
// isolated scope before anything else loads.
type Options struct {
	// ModeKey is the localStorage key holding the mode.
	ModeKey string
	// CacheKey is the localStorage key holding the dual-branch
	// variable cache JSON.
	CacheKey string
	// DefaultMode applies when storage is empty or unreadable.
	DefaultMode theme.Mode
}

// DefaultOptions uses the store's reserved keys.
func DefaultOptions() Options {
	return Options{
		ModeKey:     storage.KeyMode,
		CacheKey:    storage.KeyVarsCache,
		DefaultMode: theme.DefaultMode,
	}
}

// scriptTemplate is the dependency-free pre-paint procedure. The three
// placeholders are the mode key, the cache key and the default mode,
// injected as JS string literals.
//
// Failure policy: everything is wrapped so this can never throw into
// the page load sequence. When the cache is missing or malformed the
// page keeps its stylesheet defaults and only the mode class and
// color-scheme are applied.
const scriptTemplate = `(function() {
  var MODE_KEY = %s;
  var CACHE_KEY = %s;
  var DEFAULT_MODE = %s;
  var doc = document.documentElement;

  function applyMode(resolved) {
    if (resolved === 'dark') {
      doc.classList.add('dark');
      doc.classList.remove('light');
    } else {
      doc.classList.add('light');
      doc.classList.remove('dark');
    }
    doc.style.colorScheme = resolved;
  }

  function resolveMode(mode) {
    if (mode === 'light' || mode === 'dark') return mode;
    try {
      if (window.matchMedia && window.matchMedia('(prefers-color-scheme: dark)').matches) {
        return 'dark';
      }
    } catch (e) {}
    return 'light';
  }

  function storedMode(raw) {
    if (raw === 'light' || raw === 'dark' || raw === 'system') return raw;
    return DEFAULT_MODE;
  }

  function applyVars(resolved) {
    var raw = window.localStorage.getItem(CACHE_KEY);
    if (!raw) return;
    var cache = JSON.parse(raw);
    var vars = resolved === 'dark' ? cache.dark : cache.light;
    if (!vars) return;
    for (var k in vars) {
      if (Object.prototype.hasOwnProperty.call(vars, k)) {
        doc.style.setProperty('--' + k, vars[k]);
      }
    }
  }

  var resolved;
  try {
    resolved = resolveMode(storedMode(window.localStorage.getItem(MODE_KEY)));
  } catch (e) {
    resolved = resolveMode(DEFAULT_MODE);
  }

  try {
    applyMode(resolved);
    applyVars(resolved);
  } catch (e) {
    try { applyMode(resolved); } catch (e2) {}
  }

  // Follow mode writes from other tabs sharing this storage. DOM only;
  // writing storage back here would ping-pong between tabs forever.
  try {
    window.addEventListener('storage', function(ev) {
      if (!ev || ev.key !== MODE_KEY) return;
      var next = resolveMode(storedMode(ev.newValue || ''));
      try {
        applyMode(next);
        applyVars(next);
      } catch (e) {
        try { applyMode(next); } catch (e2) {}
      }
    });
  } catch (e) {}
})();`

// Script renders the pre-paint script for the given options.
func Script(opts Options) string {
	if opts.ModeKey == "" {
		opts.ModeKey = storage.KeyMode
	}
	if opts.CacheKey == "" {
		opts.CacheKey = storage.KeyVarsCache
	}
	if !opts.DefaultMode.Valid() {
		opts.DefaultMode = theme.DefaultMode
	}
	return fmt.Sprintf(scriptTemplate,
		jsString(opts.ModeKey),
		jsString(opts.CacheKey),
		jsString(string(opts.DefaultMode)),
	)
}

// jsString renders a Go string as a single-quoted JS literal. Keys are
// plain identifiers; only quote and backslash need escaping.
func jsString(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '\'')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\'' || c == '\\' {
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	out = append(out, '\'')
	return string(out)
}
