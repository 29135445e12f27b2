// Package ws streams the active theme to WebSocket clients.
package ws

import (
	"context"
	"net/http"

	"github.com/HerbHall/salesdesk/internal/auth"
	"github.com/HerbHall/salesdesk/internal/theme"
	"github.com/coder/websocket"
	"go.uber.org/zap"
)

// TokenValidator validates the access token passed on the upgrade request.
type TokenValidator interface {
	ValidateAccessToken(token string) (*auth.Claims, error)
}

// SnapshotSource is the theme holder as seen by the stream.
type SnapshotSource interface {
	Current() theme.Snapshot
	Subscribe() (<-chan theme.Snapshot, func())
}

// Handler provides the WebSocket endpoint for live theme updates.
type Handler struct {
	hub    *Hub
	tokens TokenValidator
	source SnapshotSource
	logger *zap.Logger
}

// Compile-time check that Handler implements the server interface.
var _ interface {
	RegisterRoutes(mux *http.ServeMux)
} = (*Handler)(nil)

// NewHandler creates a WebSocket handler seeded with the source's current
// snapshot. Call Run to forward later snapshots.
func NewHandler(tokens TokenValidator, source SnapshotSource, logger *zap.Logger) *Handler {
	h := &Handler{
		hub:    NewHub(logger),
		tokens: tokens,
		source: source,
		logger: logger,
	}
	h.hub.Broadcast(snapshotMessage(source.Current()))
	return h
}

// RegisterRoutes registers WebSocket routes on the server mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/ws/theme", h.handleThemeStream)
}

// Run forwards every snapshot change to connected clients until ctx is done.
func (h *Handler) Run(ctx context.Context) {
	ch, cancel := h.source.Subscribe()
	defer cancel()

	// Cover any change made between NewHandler and Subscribe.
	h.hub.Broadcast(snapshotMessage(h.source.Current()))

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			// Broadcast the latest state, not the notification, so the
			// hub's sequence never goes backwards.
			h.hub.Broadcast(snapshotMessage(h.source.Current()))
		}
	}
}

// handleThemeStream upgrades the connection to WebSocket, sends the active
// theme and then every replacement.
func (h *Handler) handleThemeStream(w http.ResponseWriter, r *http.Request) {
	// Validate JWT from query parameter (browser WS API doesn't support headers).
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token parameter", http.StatusUnauthorized)
		return
	}

	claims, err := h.tokens.ValidateAccessToken(token)
	if err != nil {
		http.Error(w, "invalid or expired token", http.StatusUnauthorized)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Allow any origin since we validate via JWT token.
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.logger.Error("websocket accept failed", zap.Error(err))
		return
	}

	client := &Client{
		conn:   conn,
		userID: claims.UserID,
		send:   make(chan Message, sendBuffer),
		logger: h.logger,
	}

	h.hub.Register(client)

	// Run read and write pumps. When either exits, clean up.
	ctx := r.Context()
	done := make(chan struct{})
	go func() {
		client.writePump(ctx)
		close(done)
	}()

	// readPump blocks until client disconnects.
	client.readPump(ctx)

	h.hub.Unregister(client)
	conn.Close(websocket.StatusNormalClosure, "")
	<-done
}
