package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// connection serializes writes to one websocket; gorilla allows a single
// concurrent writer.
type connection struct {
	ws        *websocket.Conn
	sessionID string

	pingInterval time.Duration
	writeTimeout time.Duration

	writeMu   sync.Mutex
	closeOnce sync.Once
}

func newConnection(ws *websocket.Conn, config Config) *connection {
	conn := &connection{
		ws:           ws,
		pingInterval: config.PingInterval,
		writeTimeout: config.WriteTimeout,
	}

	pongWait := 2 * config.PingInterval
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	return conn
}

func (that *connection) ReadMessage() (int, []byte, error) {
	messageType, data, err := that.ws.ReadMessage()
	if err == nil {
		_ = that.ws.SetReadDeadline(time.Now().Add(2 * that.pingInterval))
	}
	return messageType, data, err
}

func (that *connection) WriteJSON(v any) error {
	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err := that.ws.SetWriteDeadline(time.Now().Add(that.writeTimeout)); err != nil {
		return err
	}

	return that.ws.WriteJSON(v)
}

// KeepAlive pings the peer until ctx is done, then closes the connection.
func (that *connection) KeepAlive(ctx context.Context) {
	ticker := time.NewTicker(that.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			that.CloseWithReason(websocket.CloseGoingAway, "server shutting down")
			return
		case <-ticker.C:
			that.writeMu.Lock()
			err := that.ws.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(that.writeTimeout))
			that.writeMu.Unlock()

			if err != nil {
				that.Close()
				return
			}
		}
	}
}

// CloseWithReason sends a close frame before closing the socket.
func (that *connection) CloseWithReason(code int, reason string) {
	that.writeMu.Lock()
	_ = that.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(that.writeTimeout))
	that.writeMu.Unlock()

	that.Close()
}

func (that *connection) Close() {
	that.closeOnce.Do(func() {
		_ = that.ws.Close()
	})
}
