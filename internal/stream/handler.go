package stream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sukalov/periodiclyrics/internal/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Handler upgrades requests to websockets and streams frames from b as JSON
// text messages.
func Handler(b *Broadcaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error(fmt.Sprintf("websocket upgrade failed: %v", err))
			return
		}

		l := b.Subscribe()
		logger.Debug(fmt.Sprintf("listener %s connected (%d total)", l.ID, b.ListenerCount()))

		go writePump(conn, l)
		readPump(conn)

		b.Unsubscribe(l)
		logger.Debug(fmt.Sprintf("listener %s disconnected", l.ID))
	})
}

// readPump discards client messages and returns once the connection closes.
func readPump(conn *websocket.Conn) {
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error(fmt.Sprintf("websocket unexpected close: %v", err))
			}
			return
		}
	}
}

func writePump(conn *websocket.Conn, l *Listener) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case <-l.Done():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case f := <-l.C:
			data, err := json.Marshal(f)
			if err != nil {
				logger.Error(fmt.Sprintf("failed to marshal frame: %v", err))
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
