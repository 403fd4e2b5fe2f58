// Package ws pushes order events to staff screens over websockets.
package ws

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/AmaraNavaneetha/Flavour-Hub/services"
	"github.com/AmaraNavaneetha/Flavour-Hub/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 16
)

var ErrHubBusy = errors.New("order hub is not accepting events")

// Envelope is what a staff client receives.
type Envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// client is one staff screen. Only its writePump writes to conn.
type client struct {
	conn   *websocket.Conn
	userID uint
	send   chan Envelope
}

// OrderHub is the hub of the live order board. Run owns the client set;
// Serve and PublishOrderPlaced talk to it over channels.
type OrderHub struct {
	clients    map[*client]struct{}
	broadcast  chan Envelope
	register   chan *client
	unregister chan *client
	done       chan struct{}
	mu         sync.Mutex
	log        *slog.Logger
	upgrader   websocket.Upgrader
}

func NewOrderHub(log *slog.Logger) *OrderHub {
	return &OrderHub{
		clients:    make(map[*client]struct{}),
		broadcast:  make(chan Envelope, 64),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		log:        log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Run serves register/unregister/broadcast until ctx is cancelled, then
// tells every writer to close its connection.
func (h *OrderHub) Run(ctx context.Context) error {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for cl := range h.clients {
				h.drop(cl)
			}
			h.mu.Unlock()
			return nil

		case cl := <-h.register:
			h.mu.Lock()
			h.clients[cl] = struct{}{}
			h.mu.Unlock()

		case cl := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[cl]; ok {
				h.drop(cl)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for cl := range h.clients {
				select {
				case cl.send <- msg:
				default:
					h.log.Warn("ws client too slow, dropping", "user_id", cl.userID)
					h.drop(cl)
				}
			}
			h.mu.Unlock()
		}
	}
}

// drop must run with h.mu held.
func (h *OrderHub) drop(cl *client) {
	delete(h.clients, cl)
	close(cl.send)
}

// Clients is the number of connected staff screens.
func (h *OrderHub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// PublishOrderPlaced queues the event for every connected client. It never
// blocks on slow clients; a full queue drops the event.
func (h *OrderHub) PublishOrderPlaced(ctx context.Context, ev services.OrderPlaced) error {
	select {
	case <-h.done:
		return ErrHubBusy
	default:
	}
	select {
	case h.broadcast <- Envelope{Type: "order.placed", Data: ev}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrHubBusy
	}
}

// Serve upgrades GET /staff/orders/live. WSAuthMiddleware runs first.
func (h *OrderHub) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", "error", err)
		return
	}

	cl := &client{conn: conn, userID: utils.CurrentUserID(c), send: make(chan Envelope, sendBuffer)}
	select {
	case h.register <- cl:
	case <-h.done:
		conn.Close()
		return
	}

	go h.writePump(cl)
	h.readLoop(cl)
}

// readLoop drains the connection; staff clients only listen.
func (h *OrderHub) readLoop(cl *client) {
	defer func() {
		select {
		case h.unregister <- cl:
		case <-h.done:
		}
	}()

	cl.conn.SetReadLimit(512)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump sends queued events and pings until the hub closes send.
func (h *OrderHub) writePump(cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-cl.send:
			if !ok {
				_ = cl.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(writeWait))
				return
			}
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteJSON(msg); err != nil {
				h.log.Warn("ws write failed, dropping client", "user_id", cl.userID, "error", err)
				return
			}
		case <-ticker.C:
			if err := cl.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
