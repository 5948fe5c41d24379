// Package chatbot owns the conversation log: it generates a reply for each
// incoming message, persists the pair as one record, and serves chat
// history to users and reviewers.
package chatbot

import (
	"empathos/backend/internal/apperrors"
	"empathos/backend/internal/config"
	"empathos/backend/internal/logger"
	"empathos/backend/internal/models"
	"empathos/backend/internal/storage"
)

// TimestampLayout is the wire format for exchange timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Exchange is one completed message/response pair as returned to clients.
type Exchange struct {
	Message   string `json:"message"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// Service handles the conversation log.
type Service struct {
	Storage   storage.Storage
	Responder Responder
}

// NewService creates a new conversation service.
func NewService(s storage.Storage, r Responder) *Service {
	return &Service{Storage: s, Responder: r}
}

// Send records one exchange with the bot: it validates the message, asks
// the responder for a reply, and persists message and response together as
// a single atomic record. The stored pair is also broadcast on the chat
// event channel for oversight, best-effort.
func (s *Service) Send(userID uint, username, message string) (*Exchange, error) {
	if message == "" {
		return nil, apperrors.NewValidationError("message is required")
	}

	response := s.Responder.Respond(message)
	record := &models.ChatMessage{
		UserID:   userID,
		Message:  message,
		Response: response,
	}
	if err := s.Storage.CreateChatMessage(record); err != nil {
		logger.Get().Error("chat message insert failed", "user_id", userID, "error", err)
		return nil, apperrors.NewInternalError("failed to send message")
	}

	exchange := &Exchange{
		Message:   record.Message,
		Response:  record.Response,
		Timestamp: record.CreatedAt.Format(TimestampLayout),
	}

	event := storage.ChatEvent{
		UserID:    userID,
		Username:  username,
		Message:   exchange.Message,
		Response:  exchange.Response,
		Timestamp: exchange.Timestamp,
	}
	if err := s.Storage.PublishChatEvent(event); err != nil {
		// The exchange is already persisted; a dead event feed must not
		// fail the send.
		logger.Get().Warn("chat event publish failed", "user_id", userID, "error", err)
	}

	return exchange, nil
}

// HistoryForUser returns the caller's most recent exchanges, newest first.
// A non-positive limit falls back to the configured page size.
func (s *Service) HistoryForUser(userID uint, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = config.ChatHistoryLimit
	}
	messages, err := s.Storage.GetChatHistoryForUser(userID, limit)
	if err != nil {
		logger.Get().Error("chat history load failed", "user_id", userID, "error", err)
		return nil, apperrors.NewInternalError("failed to load chat history")
	}
	return messages, nil
}

// RecentGlobal returns the most recent exchanges across all users joined
// with usernames, newest first. Role gating happens at the HTTP layer.
func (s *Service) RecentGlobal(limit int) ([]storage.ChatMessageWithUser, error) {
	if limit <= 0 {
		limit = config.OversightChatLimit
	}
	messages, err := s.Storage.GetRecentChatMessages(limit)
	if err != nil {
		logger.Get().Error("recent chat load failed", "error", err)
		return nil, apperrors.NewInternalError("failed to load chat messages")
	}
	return messages, nil
}
