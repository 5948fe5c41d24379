// Package handler wires the HTTP surface: gin handlers for accounts,
// complaints and chat, the session middleware gating them, and the
// WebSocket endpoints for live chat and oversight.
package handler

import (
	"github.com/gin-gonic/gin"

	"empathos/backend/internal/apperrors"
	"empathos/backend/internal/auth"
	"empathos/backend/internal/chatbot"
	"empathos/backend/internal/complaint"
	"empathos/backend/internal/storage"
)

// Handler carries the services the HTTP layer dispatches into.
type Handler struct {
	Accounts   *auth.Service
	Sessions   *auth.SessionManager
	Complaints *complaint.Service
	Chat       *chatbot.Service
	Storage    storage.Storage
}

func NewHandler(accounts *auth.Service, sessions *auth.SessionManager, complaints *complaint.Service, chat *chatbot.Service, store storage.Storage) *Handler {
	return &Handler{
		Accounts:   accounts,
		Sessions:   sessions,
		Complaints: complaints,
		Chat:       chat,
		Storage:    store,
	}
}

// respondError maps a service error to its JSON shape and HTTP status.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.AsAppError(err)
	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}
