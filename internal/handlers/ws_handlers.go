package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"

	"github.com/yadi09/Slide-Editor-Foundation/internal/services"
)

// WebSocketHandler upgrades connections and hands them to the hub
type WebSocketHandler struct {
	hub      *services.Hub
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a new websocket handler. With allowAnyOrigin
// set (dev mode, where the editor UI runs on its own dev-server port)
// cross-origin handshakes are accepted; otherwise the Origin header must
// match the request host.
func NewWebSocketHandler(hub *services.Hub, allowAnyOrigin bool) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return allowAnyOrigin || sameOrigin(r)
			},
		},
	}
}

// sameOrigin accepts requests without an Origin header (non-browser
// clients) and browser requests whose origin host matches the request host
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}

// HandleWebSocket upgrades the request and starts the client pumps
// GET /ws
func (wh *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := wh.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}

	client := services.NewClient(wh.hub, conn)
	go client.WritePump()
	go client.ReadPump()
}
