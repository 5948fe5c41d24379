package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"empathos/backend/internal/chatbot"
	"empathos/backend/internal/config"
)

type sendMessageRequest struct {
	Message string `form:"message" json:"message"`
}

// SendMessage records one exchange with the support bot and returns the
// stored pair.
func (h *Handler) SendMessage(c *gin.Context) {
	sess, ok := SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	exchange, err := h.Chat.Send(sess.UserID, sess.Username, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exchange)
}

// ChatHistory returns the caller's most recent exchanges, newest first.
func (h *Handler) ChatHistory(c *gin.Context) {
	sess, ok := SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	messages, err := h.Chat.HistoryForUser(sess.UserID, config.ChatHistoryLimit)
	if err != nil {
		respondError(c, err)
		return
	}

	history := make([]chatbot.Exchange, 0, len(messages))
	for _, msg := range messages {
		history = append(history, chatbot.Exchange{
			Message:   msg.Message,
			Response:  msg.Response,
			Timestamp: msg.CreatedAt.Format(chatbot.TimestampLayout),
		})
	}
	c.JSON(http.StatusOK, gin.H{"messages": history})
}
