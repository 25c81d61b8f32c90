package ws

import (
	"encoding/json"
	"log"
	"sync"

	"envrt-site/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgLeadCaptured MessageType = "lead_captured"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages the admin lead-feed connections. Every connected admin
// dashboard receives every captured lead.
type Hub struct {
	conns map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *Message
}

// Connection represents one admin WebSocket connection
type Connection struct {
	AdminID string
	Send    chan []byte
	Hub     *Hub
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *Message, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.conns[conn] = true
			h.mu.Unlock()
			log.Printf("Admin %s connected to lead feed", conn.AdminID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if h.conns[conn] {
				delete(h.conns, conn)
				close(conn.Send)
				log.Printf("Admin %s disconnected from lead feed", conn.AdminID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg)
			for conn := range h.conns {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastLead pushes a captured lead to every connected admin
// (implements service.Broadcaster)
func (h *Hub) BroadcastLead(lead *model.Lead) {
	data, err := json.Marshal(lead)
	if err != nil {
		log.Printf("lead broadcast marshal failed: %v", err)
		return
	}
	h.broadcast <- &Message{
		Type:    MsgLeadCaptured,
		Payload: data,
	}
}
