package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans out form events (new responses) to dashboard viewers watching
// that form.
type Hub struct {
	mu    sync.RWMutex
	forms map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		forms: make(map[uint]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(formID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.forms[formID] == nil {
		h.forms[formID] = make(map[*websocket.Conn]bool)
	}
	h.forms[formID][conn] = true
	log.Printf("ws: client connected to form %d (total: %d)", formID, len(h.forms[formID]))
}

func (h *Hub) RemoveConnection(formID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.forms[formID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.forms, formID)
		}
		log.Printf("ws: client disconnected from form %d", formID)
	}
}

func (h *Hub) Broadcast(formID uint, message Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.forms[formID]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}
