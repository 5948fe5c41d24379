package storage

import (
	"time"

	"empathos/backend/internal/models"
)

// ChatMessageWithUser is the oversight read model: one bot exchange joined
// with the username of the user who sent it.
type ChatMessageWithUser struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateChatMessage inserts a message/response pair as a single row. The
// pair is atomic: there is no code path that writes a message without its
// response.
func (s *Service) CreateChatMessage(msg *models.ChatMessage) error {
	return s.DB.Create(msg).Error
}

// GetChatHistoryForUser returns the most recent exchanges for one user,
// newest first, capped at limit.
func (s *Service) GetChatHistoryForUser(userID uint, limit int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// GetRecentChatMessages returns the most recent exchanges across all users
// joined with usernames, newest first, capped at limit.
func (s *Service) GetRecentChatMessages(limit int) ([]ChatMessageWithUser, error) {
	var messages []ChatMessageWithUser
	err := s.DB.Model(&models.ChatMessage{}).
		Select("chat_messages.id, chat_messages.user_id, users.username, chat_messages.message, chat_messages.response, chat_messages.created_at").
		Joins("JOIN users ON users.id = chat_messages.user_id").
		Order("chat_messages.created_at DESC").
		Limit(limit).
		Scan(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
