package websocket

import (
	"encoding/json"
	"log"
)

// Hub maintains the set of connected gallery viewers and fans events out to
// them. Events are fire-and-forget; a viewer that cannot keep up is dropped.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Outbound events for all clients
	broadcast chan []byte

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client
}

// Event is a gallery feed message pushed to connected viewers.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Event types emitted by the photo flows.
const (
	EventPhotoUploaded   = "photo_uploaded"
	EventCommentAdded    = "comment_added"
	EventReactionToggled = "reaction_toggled"
)

// NewHub creates a new hub instance
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Run starts the hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Broadcast pushes an event to every connected viewer.
func Broadcast(eventType string, payload interface{}) {
	if hub == nil {
		return
	}

	msg := Event{
		Type:    eventType,
		Payload: payload,
	}

	msgBytes, err := json.Marshal(msg)
	if err != nil {
		log.Printf("error marshaling event: %v", err)
		return
	}

	hub.broadcast <- msgBytes
}

// Global hub instance
var hub *Hub

// InitHub initializes the global hub
func InitHub() {
	hub = NewHub()
	go hub.Run()
}
