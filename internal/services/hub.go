package services

import (
	"encoding/json"
	"log"
)

// StateMessage is the envelope broadcast to websocket clients whenever the
// presentation changes
type StateMessage struct {
	Type    string            `json:"type"`
	Payload PresentationState `json:"payload"`
}

// Hub fans presentation updates out to every connected websocket client.
// All client bookkeeping happens on the Run goroutine.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	// last broadcast frame, replayed to clients that connect between
	// mutations so a window opened mid-session paints the current deck
	last []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
	}
}

// Run owns the client set. Call it once, on its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Printf("Websocket client connected (%d active)", len(h.clients))
			if h.last != nil {
				select {
				case client.send <- h.last:
				default:
				}
			}
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("Websocket client disconnected (%d active)", len(h.clients))
			}
		case message := <-h.broadcast:
			h.last = message
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// BroadcastState pushes a presentation snapshot to every client
func (h *Hub) BroadcastState(state PresentationState) {
	data, err := json.Marshal(StateMessage{Type: "presentation", Payload: state})
	if err != nil {
		log.Printf("Failed to encode state broadcast: %v", err)
		return
	}
	h.broadcast <- data
}
