package websocket

import (
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
)

// Hub fans pipeline activity events out to every connected dashboard client.
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan domain.ActivityEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	logger     zerolog.Logger
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan domain.ActivityEvent, 100),
		register:   make(chan *websocket.Conn, 100),
		unregister: make(chan *websocket.Conn, 100),
		logger:     logger.With().Str("component", "activity_hub").Logger(),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true
			h.logger.Info().Int("client_count", len(h.clients)).Msg("Activity stream client registered")

		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
				h.logger.Info().Int("client_count", len(h.clients)).Msg("Activity stream client unregistered")
			}

		case event := <-h.broadcast:
			for conn := range h.clients {
				if err := conn.WriteJSON(event); err != nil {
					h.logger.Err(err).
						Str("event", event.Event).
						Str("entity", event.Entity).
						Msg("Failed to send activity event")
					conn.Close()
					delete(h.clients, conn)
				}
			}
		}
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.register <- conn
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.unregister <- conn
}

// BroadcastEvent queues an activity event; a full queue drops the event
// rather than blocking the request path.
func (h *Hub) BroadcastEvent(event, entity, id, status string) {
	select {
	case h.broadcast <- domain.ActivityEvent{Event: event, Entity: entity, ID: id, Status: status}:
	default:
		h.logger.Warn().Str("event", event).Msg("Activity broadcast queue full, dropping event")
	}
}
