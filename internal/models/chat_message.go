package models

import "time"

// ChatMessage is one exchange with the support bot: the user's message and
// the generated response, written together as a single record. There is
// never a message without a response, and neither field is mutated after
// creation.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Response  string    `gorm:"type:text;not null" json:"response"`
	CreatedAt time.Time `json:"created_at"`
}
