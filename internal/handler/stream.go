package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/templui/momentum/internal/metrics"
	"github.com/templui/momentum/internal/store"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Clients only send control frames
	maxMessageSize = 512
)

type snapshotMessage struct {
	Type  string      `json:"type"`
	State store.State `json:"state"`
}

// StreamHandler pushes a store snapshot over a websocket on connect and after
// every change. A slow client only ever receives the newest state.
type StreamHandler struct {
	store    *store.Store
	upgrader websocket.Upgrader
}

func NewStreamHandler(st *store.Store, checkOrigin func(r *http.Request) bool) *StreamHandler {
	return &StreamHandler{
		store: st,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin,
		},
	}
}

func (h *StreamHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	metrics.WSConnected()
	defer metrics.WSDisconnected()

	updates := make(chan store.State, 1)
	unsubscribe := h.store.SubscribeCurrent(func(st store.State) { offer(updates, st) })
	defer unsubscribe()

	closed := make(chan struct{})
	go readPump(conn, closed)
	writePump(conn, updates, closed)
}

// offer replaces whatever is still queued with st.
func offer(ch chan store.State, st store.State) {
	for {
		select {
		case ch <- st:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// readPump drains client frames so pongs and close frames are processed.
func readPump(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("websocket closed", "error", err)
			}
			return
		}
	}
}

func writePump(conn *websocket.Conn, updates <-chan store.State, closed <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return

		case st := <-updates:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(snapshotMessage{Type: "snapshot", State: st}); err != nil {
				slog.Debug("websocket write failed", "error", err)
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
