package storage

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"empathos/backend/internal/models"
)

const sessionKeyPrefix = "session:"

// CreateSession stores a session in Redis under session:<id> with the given
// TTL. Expired sessions disappear on their own.
func (s *Service) CreateSession(sess *models.Session, ttl time.Duration) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.Redis.Set(s.Ctx, sessionKeyPrefix+sess.ID, data, ttl).Err()
}

// GetSession returns the session with the given id, or (nil, nil) when it
// does not exist or has expired.
func (s *Service) GetSession(id string) (*models.Session, error) {
	data, err := s.Redis.Get(s.Ctx, sessionKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// DeleteSession removes a session. Deleting an absent session is not an
// error; logout is idempotent.
func (s *Service) DeleteSession(id string) error {
	return s.Redis.Del(s.Ctx, sessionKeyPrefix+id).Err()
}
