// Package broadcast pushes cell-changed notifications from a
// single *actor.Actor-owned sheet out to connected clients: over
// WebSocket to interactive viewers, and optionally over a ZeroMQ PUB
// socket for broker-style consumers. Grounded on
// broyeztony-karl/spreadsheet/server.go's Server/HandleWebSocket/
// broadcastAll shape, adapted from Karl's interpreter-backed cells to
// this engine's Position/Cell model, and with sheet access going
// through the actor; a sync.Mutex guards only the client registry.
package broadcast

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/cellgraph/spreadsheet/actor"
	"github.com/cellgraph/spreadsheet/internal/log"
	"github.com/cellgraph/spreadsheet/sheet"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// CellChanged is the notification frame sent to every client after a
// successful SetCell/ClearCell.
type CellChanged struct {
	Type     string `json:"type"`
	Address  string `json:"address"`
	Value    string `json:"value"`
	ClientID string `json:"client_id"`
}

// Hub owns the actor and the set of live WebSocket connections, and
// optionally a ZeroMQ publisher alongside it.
type Hub struct {
	actor *actor.Actor
	log   *log.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]string // conn -> session id

	zmq *zmqPublisher // nil if not configured
}

// New creates a Hub over its own actor-owned sheet.
func New(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Noop()
	}
	return &Hub{
		actor:   actor.New(),
		log:     logger,
		clients: make(map[*websocket.Conn]string),
	}
}

// Actor exposes the hub's underlying actor so cmd/cellsheetd can wire
// the same sheet into persistence and export.
func (h *Hub) Actor() *actor.Actor { return h.actor }

// Close stops the actor and the ZeroMQ publisher, if any.
func (h *Hub) Close() {
	h.actor.Stop()
	if h.zmq != nil {
		h.zmq.Close()
	}
}

// ServeWS upgrades r into a WebSocket connection, registers it, and
// blocks reading "set"/"clear" requests from the client until it
// disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", log.Error(err))
		return
	}
	sessionID := uuid.NewString()

	h.mu.Lock()
	h.clients[conn] = sessionID
	h.mu.Unlock()
	h.log.Info("client connected", log.String("session", sessionID))

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
		h.log.Info("client disconnected", log.String("session", sessionID))
	}()

	for {
		var req clientRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		h.handleRequest(sessionID, req)
	}
}

type clientRequest struct {
	Type    string `json:"type"`
	Address string `json:"address"`
	Text    string `json:"text"`
}

func (h *Hub) handleRequest(sessionID string, req clientRequest) {
	switch req.Type {
	case "set":
		h.setCell(sessionID, req.Address, req.Text)
	case "clear":
		h.setCell(sessionID, req.Address, "")
	}
}

func (h *Hub) setCell(sessionID, address, text string) {
	var displayed string
	var setErr error

	h.actor.Do(func(s *sheet.Sheet) {
		if setErr = s.SetCell(address, text); setErr != nil {
			return
		}
		v, err := s.GetCell(address)
		if err != nil {
			setErr = err
			return
		}
		displayed = v.Display()
	})
	if setErr != nil {
		h.log.Debug("rejected edit",
			log.String("session", sessionID),
			log.String("address", address),
			log.Error(setErr))
		return
	}

	h.broadcast(CellChanged{Type: "cell-changed", Address: address, Value: displayed, ClientID: sessionID})
	if h.zmq != nil {
		h.zmq.Publish(address, displayed)
	}
}

func (h *Hub) broadcast(msg CellChanged) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(msg); err != nil {
			h.log.Warn("broadcast write failed", log.Error(err))
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// EnableZMQ starts a ZeroMQ PUB socket bound to addr, publishing every
// future cell-changed notification as a second channel alongside
// WebSocket (SPEC_FULL.md §11.2).
func (h *Hub) EnableZMQ(addr string) error {
	pub, err := newZMQPublisher(addr)
	if err != nil {
		return err
	}
	h.zmq = pub
	return nil
}
