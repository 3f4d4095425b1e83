package store

import (
	"encoding/json"

	"github.com/74587/srec-dash/internal/theme"
)

// marshalCache encodes the dual-branch cache as the JSON shape the
// pre-paint bootstrap script parses.
func marshalCache(c theme.VarsCache) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ParseCache decodes a persisted vars cache. Used by the server to
// seed initial page markup from the same state the bootstrap reads.
func ParseCache(raw string) (theme.VarsCache, error) {
	var c theme.VarsCache
	err := json.Unmarshal([]byte(raw), &c)
	return c, err
}
