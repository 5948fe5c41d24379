package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"empathos/backend/internal/apperrors"
	"empathos/backend/internal/chatbot"
	"empathos/backend/internal/logger"
	"empathos/backend/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Same-origin policy is handled by the session cookie; the socket is
	// useless without one.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsFrame is one outbound frame on the live chat socket: either a completed
// exchange or an error for a rejected message.
type wsFrame struct {
	Message   string `json:"message,omitempty"`
	Response  string `json:"response,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Error     string `json:"error,omitempty"`
}

// botClient is one live chat connection: inbound frames go through the
// conversation service (same persistence path as the HTTP endpoint) and
// the stored pair comes back on the same socket.
type botClient struct {
	sess *models.Session
	conn *websocket.Conn
	chat *chatbot.Service
	send chan wsFrame
}

// enqueue hands a frame to writePump without ever blocking. A full buffer
// means the writer is gone or the client has stopped reading; the frame is
// dropped and the caller must tear the connection down.
func (c *botClient) enqueue(frame wsFrame) bool {
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// ServeChatWS upgrades an authenticated request to a live chat session with
// the support bot.
func (h *Handler) ServeChatWS(c *gin.Context) {
	sess, ok := SessionFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already answered the request on failure.
		logger.Get().Warn("chat socket upgrade failed", "user_id", sess.UserID, "error", err)
		return
	}

	client := &botClient{
		sess: sess,
		conn: conn,
		chat: h.Chat,
		send: make(chan wsFrame, 256),
	}
	go client.writePump()
	client.readPump()
}

func (c *botClient) readPump() {
	defer func() {
		close(c.send)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Get().Warn("chat socket read failed", "user_id", c.sess.UserID, "error", err)
			}
			return
		}

		var inbound struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(data, &inbound); err != nil {
			if !c.enqueue(wsFrame{Error: "invalid frame"}) {
				return
			}
			continue
		}

		exchange, err := c.chat.Send(c.sess.UserID, c.sess.Username, inbound.Message)
		if err != nil {
			if !c.enqueue(wsFrame{Error: apperrors.AsAppError(err).Message}) {
				return
			}
			continue
		}
		if !c.enqueue(wsFrame{
			Message:   exchange.Message,
			Response:  exchange.Response,
			Timestamp: exchange.Timestamp,
		}) {
			return
		}
	}
}

func (c *botClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			data, err := json.Marshal(frame)
			if err != nil {
				logger.Get().Error("chat frame encode failed", "user_id", c.sess.UserID, "error", err)
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
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

// ServeOversightWS streams live chat activity across all users to an
// authority reviewer, forwarding events from the Redis chat event channel
// as they are published.
func (h *Handler) ServeOversightWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already answered the request on failure.
		logger.Get().Warn("oversight socket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	pubsub := h.Storage.SubscribeChatEvents()
	defer pubsub.Close()

	// Reader goroutine: the reviewer never sends data frames, but control
	// frames must still be processed and a closed socket must end the
	// subscription.
	go func() {
		conn.SetReadLimit(maxMessageSize)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				pubsub.Close()
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	events := pubsub.Channel()
	for {
		select {
		case msg, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
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
