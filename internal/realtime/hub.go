package realtime

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"pressroom/internal/auth"
)

// Event is pushed to connected dashboard clients when a resource changes.
type Event struct {
	Event    string `json:"event"`
	Resource string `json:"resource"`
	ID       string `json:"id"`
}

// Hub maintains the set of connected clients and fans events out to
// them. Events are delivery-best-effort: a slow client is dropped, the
// dashboard reconciles on reconnect.
type Hub struct {
	tokens     *auth.TokenService
	log        zerolog.Logger
	upgrader   websocket.Upgrader
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	events     chan Event
	mu         sync.RWMutex
}

// NewHub creates a hub. Run must be started before ServeWS accepts clients.
func NewHub(tokens *auth.TokenService, log zerolog.Logger) *Hub {
	return &Hub{
		tokens: tokens,
		log:    log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		events:     make(chan Event, 256),
	}
}

// Run processes client lifecycle and event fan-out until the channel
// loop is abandoned at process exit.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Debug().Int("clients", total).Msg("websocket client connected")

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Debug().Int("clients", total).Msg("websocket client disconnected")

		case event := <-h.events:
			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.send <- event:
				default:
					// client is not draining; drop it
					go func(c *client) { h.unregister <- c }(c)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Publish queues an event for broadcast. Never blocks the caller: when
// the queue is full the event is dropped and logged.
func (h *Hub) Publish(event, resource, id string) {
	e := Event{Event: event, Resource: resource, ID: id}
	select {
	case h.events <- e:
	default:
		h.log.Warn().Str("resource", resource).Msg("event queue full, dropping broadcast")
	}
}

// ServeWS upgrades the connection. The access token travels as a query
// parameter since browsers cannot set headers on websocket dials. It is
// verified but the user row is not re-read: the hub only ever pushes
// change notifications, never data.
func (h *Hub) ServeWS(c echo.Context) error {
	token := c.QueryParam("token")
	if _, err := h.tokens.VerifyAccessToken(token); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	cl := &client{hub: h, conn: conn, send: make(chan Event, 64)}
	h.register <- cl
	go cl.writePump()
	go cl.readPump()
	return nil
}
