package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

// client - one socket of a user watching a game. Only writePump writes to conn.
type client struct {
	conn   *websocket.Conn
	user   *entity.User
	gameID string

	send chan []byte
	done chan struct{}

	closeOnce sync.Once
}

func newClient(conn *websocket.Conn, user *entity.User, gameID string, buffer int) *client {
	return &client{
		conn:   conn,
		user:   user,
		gameID: gameID,
		send:   make(chan []byte, buffer),
		done:   make(chan struct{}),
	}
}

// enqueue - hands the message to the writer, a full buffer means the client is too slow and gets dropped.
func (that *client) enqueue(data []byte) bool {
	select {
	case <-that.done:
		return false
	default:
	}

	select {
	case that.send <- data:
		return true
	default:
		that.close()
		return false
	}
}

func (that *client) close() {
	that.closeOnce.Do(func() {
		close(that.done)
		_ = that.conn.Close()
	})
}

func (that *client) writePump(writeTimeout, pingPeriod time.Duration) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-that.done:
			return
		case data := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeTimeout))

			if err := that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				that.close()
				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeTimeout))

			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				that.close()
				return
			}
		}
	}
}
