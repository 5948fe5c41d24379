package storage

import (
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// chatEventChannel is the Redis Pub/Sub channel carrying live chat activity
// for the authority oversight stream.
const chatEventChannel = "chat:events"

// ChatEvent is the wire form of one bot exchange as broadcast to oversight
// subscribers.
type ChatEvent struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	Message   string `json:"message"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// PublishChatEvent broadcasts an exchange on the chat event channel.
func (s *Service) PublishChatEvent(event ChatEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, chatEventChannel, string(data)).Err()
}

// SubscribeChatEvents subscribes to the chat event channel. The caller owns
// the returned subscription and must Close it.
func (s *Service) SubscribeChatEvents() *redis.PubSub {
	return s.Redis.Subscribe(s.Ctx, chatEventChannel)
}
