package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/linskybing/portal-go/pkg/logger"
	"github.com/linskybing/portal-go/pkg/metrics"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512
	sendBuffer     = 32
)

// Subscription receives the events one client is allowed to see.
type Subscription struct {
	UserID uint
	Staff  bool
	send   chan []byte
}

func (s *Subscription) C() <-chan []byte {
	return s.send
}

func (s *Subscription) wants(e Event) bool {
	return s.Staff || s.UserID == e.UserID
}

// Hub owns the subscriber set. Only the Run goroutine touches it.
type Hub struct {
	register   chan *Subscription
	unregister chan *Subscription
	broadcast  chan Event
	done       chan struct{}
	once       sync.Once
	log        logger.Logger
}

func NewHub(log logger.Logger) *Hub {
	if log == nil {
		log = logger.NewNop()
	}
	return &Hub{
		register:   make(chan *Subscription),
		unregister: make(chan *Subscription),
		broadcast:  make(chan Event, 256),
		done:       make(chan struct{}),
		log:        log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	subs := make(map[*Subscription]struct{})
	defer func() {
		for s := range subs {
			close(s.send)
		}
		h.once.Do(func() { close(h.done) })
	}()

	for {
		select {
		case s := <-h.register:
			subs[s] = struct{}{}
		case s := <-h.unregister:
			if _, ok := subs[s]; ok {
				delete(subs, s)
				close(s.send)
			}
		case e := <-h.broadcast:
			data, err := json.Marshal(e)
			if err != nil {
				h.log.Error("marshal event", logger.Error(err))
				continue
			}
			for s := range subs {
				if !s.wants(e) {
					continue
				}
				select {
				case s.send <- data:
				default:
					// slow client
					delete(subs, s)
					close(s.send)
					h.log.Warn("dropping slow event subscriber", logger.Uint("user_id", s.UserID))
				}
			}
		case <-ctx.Done():
			return
		}
	}
}

// Publish never blocks the caller; events are dropped when the hub is saturated or stopped.
func (h *Hub) Publish(e Event) {
	select {
	case h.broadcast <- e:
	case <-h.done:
	default:
		h.log.Warn("event hub saturated, dropping event", logger.String("type", string(e.Type)))
	}
}

// Subscribe returns nil once the hub has stopped.
func (h *Hub) Subscribe(userID uint, staff bool) *Subscription {
	s := &Subscription{UserID: userID, Staff: staff, send: make(chan []byte, sendBuffer)}
	select {
	case h.register <- s:
		return s
	case <-h.done:
		return nil
	}
}

func (h *Hub) Unsubscribe(s *Subscription) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}

// Serve pumps events to conn until the peer goes away.
func (h *Hub) Serve(conn *websocket.Conn, userID uint, staff bool) {
	sub := h.Subscribe(userID, staff)
	if sub == nil {
		_ = conn.Close()
		return
	}
	metrics.WebsocketOpened()
	defer metrics.WebsocketClosed()

	go h.readPump(conn, sub)
	h.writePump(conn, sub)
}

// readPump discards client messages and keeps the read deadline moving on pongs.
func (h *Hub) readPump(conn *websocket.Conn, sub *Subscription) {
	defer h.Unsubscribe(sub)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(conn *websocket.Conn, sub *Subscription) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case msg, ok := <-sub.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
