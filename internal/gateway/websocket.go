package gateway

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"friendgraph/internal/common"
	"friendgraph/internal/realtime"
	"friendgraph/internal/relationship"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// snapshotMessage is pushed to the client after every reconciliation, so
// the UI re-renders from fresh sets instead of interpreting raw events.
type snapshotMessage struct {
	Type            string   `json:"type"`
	Friends         []string `json:"friends"`
	PendingSent     []string `json:"pending_sent"`
	PendingReceived []string `json:"pending_received"`
}

func toSnapshotMessage(snap *relationship.Snapshot) snapshotMessage {
	msg := snapshotMessage{
		Type:            "snapshot",
		Friends:         setToSlice(snap.Friends),
		PendingSent:     setToSlice(snap.PendingSent),
		PendingReceived: setToSlice(snap.PendingReceived),
	}
	return msg
}

func setToSlice(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// streamEvents upgrades the connection and runs a per-session
// synchronizer. Each connection owns its own subscription; closing the
// socket releases it.
func (s *Server) streamEvents(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	session := &wsSession{
		conn:   conn,
		send:   make(chan []byte, 16),
		logger: s.logger,
	}

	opts := s.syncOpts
	opts.OnReconcile = func(snap *relationship.Snapshot) {
		data, err := json.Marshal(toSnapshotMessage(snap))
		if err != nil {
			return
		}
		select {
		case session.send <- data:
		default:
			// slow client: the next reconciliation will carry newer truth
			s.logger.Warn("dropping snapshot push for slow client",
				zap.String("user_id", userID))
		}
	}

	sync := realtime.NewSynchronizer(userID, s.source, s.service, opts, s.logger)
	sync.Start()

	go session.writePump()
	session.readPump()

	// readPump returns when the client is gone
	sync.Close()
	close(session.send)
}

type wsSession struct {
	conn   *websocket.Conn
	send   chan []byte
	logger *zap.Logger
}

func (c *wsSession) readPump() {
	defer c.conn.Close()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		// Clients only listen on this feed; reads exist to detect close
		// and service pong frames.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug("websocket read error", zap.Error(err))
			}
			return
		}
	}
}

func (c *wsSession) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
