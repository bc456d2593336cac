// Package spectate streams read-only game snapshots to websocket viewers.
package spectate

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"snake-modes/game"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	sendBuffer   = 16
	writeTimeout = 2 * time.Second
)

// Logger is the logging surface used by the hub.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}

// Frame is the wire form of one snapshot.
type Frame struct {
	GridSize  int      `msgpack:"gridSize"`
	Snake     [][2]int `msgpack:"snake"`
	Food      [2]int   `msgpack:"food"`
	Direction string   `msgpack:"direction"`
	SpeedMS   int64    `msgpack:"speedMs"`
	Score     int      `msgpack:"score"`
	Status    string   `msgpack:"status"`
	Mode      string   `msgpack:"mode"`
	Collision string   `msgpack:"collision"`
}

// NewFrame converts a snapshot into its wire form.
func NewFrame(s game.Snapshot, gridSize int) Frame {
	snake := make([][2]int, len(s.Snake))
	for i, p := range s.Snake {
		snake[i] = [2]int{p.Row, p.Col}
	}
	return Frame{
		GridSize:  gridSize,
		Snake:     snake,
		Food:      [2]int{s.Food.Row, s.Food.Col},
		Direction: s.Direction.String(),
		SpeedMS:   s.Speed.Milliseconds(),
		Score:     s.Score,
		Status:    s.Status.String(),
		Mode:      s.Mode.String(),
		Collision: s.LastCollision.String(),
	}
}

type client struct {
	id   uuid.UUID
	conn *websocket.Conn
	send chan []byte
}

// Hub fans snapshots out to every connected viewer. Viewers that fall behind are dropped.
type Hub struct {
	gridSize int
	upgrader websocket.Upgrader
	logger   Logger

	mu      sync.Mutex
	clients map[uuid.UUID]*client
	last    []byte
}

func NewHub(gridSize int, logger Logger) *Hub {
	return &Hub{
		gridSize: gridSize,
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		logger:   logger,
		clients:  make(map[uuid.UUID]*client),
	}
}

// Publish encodes s and queues it for every viewer. It never blocks on the network.
func (h *Hub) Publish(s game.Snapshot) {
	frame := NewFrame(s, h.gridSize)
	data, err := msgpack.Marshal(&frame)
	if err != nil {
		h.logger.Error(errors.Wrap(err, "encoding frame").Error())
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = data
	for id, c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.Warning(fmt.Sprintf("dropping slow viewer %s", id))
			h.removeLocked(c)
		}
	}
}

// ServeHTTP upgrades the request and registers a viewer. Messages from viewers are ignored.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warning(errors.Wrap(err, "upgrading viewer").Error())
		return
	}

	c := &client{
		id:   uuid.New(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	h.mu.Lock()
	h.clients[c.id] = c
	if h.last != nil {
		c.send <- h.last
	}
	h.mu.Unlock()
	h.logger.Info(fmt.Sprintf("viewer %s connected from %s", c.id, r.RemoteAddr))

	go h.writePump(c)
	h.readPump(c)
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.clients {
		h.removeLocked(c)
	}
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
			h.logger.Warning(errors.Wrapf(err, "writing to viewer %s", c.id).Error())
			h.remove(c)
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (h *Hub) readPump(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(c)
	h.logger.Info(fmt.Sprintf("viewer %s disconnected", c.id))
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c.id]; !ok {
		return
	}
	delete(h.clients, c.id)
	close(c.send)
}
