package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	themestore "github.com/74587/srec-dash/internal/theme/store"
)

const writeTimeout = 5 * time.Second

// wsClient is one connected dashboard tab.
type wsClient struct {
	conn *websocket.Conn
	send chan themeState
}

// Hub fans theme change events out to every connected tab, so a mode
// change made in one context (CLI, another process, another tab) is
// reflected everywhere without a reload.
type Hub struct {
	mu      sync.RWMutex
	clients map[*wsClient]struct{}
	logger  zerolog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*wsClient]struct{}),
		logger:  logger,
	}
}

// Broadcast sends a theme event to all connected clients. Slow clients
// drop events rather than stalling the pipeline.
func (h *Hub) Broadcast(ev themestore.Event) {
	state := stateFromEvent(ev)

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- state:
		default:
			h.logger.Warn().Msg("event client send buffer full, dropping event")
		}
	}
}

// CloseAll disconnects every client, used during shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		_ = c.conn.Close(websocket.StatusGoingAway, "server shutting down")
		delete(h.clients, c)
	}
}

func (h *Hub) register(c *wsClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	h.logger.Debug().Int("clients", count).Msg("event client connected")
}

func (h *Hub) unregister(c *wsClient) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	count := len(h.clients)
	h.mu.Unlock()
	h.logger.Debug().Int("clients", count).Msg("event client disconnected")
}

// handleEvents upgrades the connection and streams theme changes.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// The dashboard may be reached through a proxy hostname.
		InsecureSkipVerify: true,
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket accept failed")
		return
	}

	client := &wsClient{
		conn: conn,
		send: make(chan themeState, 16),
	}
	s.hub.register(client)
	defer s.hub.unregister(client)

	// Snapshot first so a fresh tab is immediately consistent.
	client.send <- themeState{
		Mode:     s.store.Mode(),
		Resolved: s.store.ResolvedMode(),
		Vars:     s.store.Vars(),
	}

	ctx := r.Context()
	go func() {
		// Discard inbound frames; the socket is push-only. Returning
		// on error tears the connection down.
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			_ = conn.Close(websocket.StatusNormalClosure, "")
			return
		case state, ok := <-client.send:
			if !ok {
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(writeCtx, conn, state)
			cancel()
			if err != nil {
				return
			}
		}
	}
}
