package auth

import (
	"time"

	"github.com/google/uuid"

	"empathos/backend/internal/apperrors"
	"empathos/backend/internal/logger"
	"empathos/backend/internal/models"
	"empathos/backend/internal/storage"
)

// SessionManager is the access gate: it turns a verified identity into a
// live, role-scoped session and resolves tokens back into sessions on every
// request. A session is live only while its Redis record exists.
type SessionManager struct {
	Storage storage.Storage
	Tokens  *TokenManager
	TTL     time.Duration
}

func NewSessionManager(s storage.Storage, tokens *TokenManager, ttl time.Duration) *SessionManager {
	return &SessionManager{Storage: s, Tokens: tokens, TTL: ttl}
}

// Create opens a session for an authenticated user and returns the signed
// token to hand to the client.
func (m *SessionManager) Create(user *models.User) (string, *models.Session, error) {
	sess := &models.Session{
		ID:       uuid.New().String(),
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
	if err := m.Storage.CreateSession(sess, m.TTL); err != nil {
		logger.Get().Error("session create failed", "user_id", user.ID, "error", err)
		return "", nil, apperrors.NewInternalError("login failed")
	}
	token, err := m.Tokens.Issue(sess)
	if err != nil {
		logger.Get().Error("token issue failed", "user_id", user.ID, "error", err)
		return "", nil, apperrors.NewInternalError("login failed")
	}
	return token, sess, nil
}

// Resolve verifies a token and confirms its session is still live in Redis.
// Any failure, token or store side, comes back as Unauthorized.
func (m *SessionManager) Resolve(token string) (*models.Session, error) {
	claims, err := m.Tokens.Parse(token)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("please log in")
	}
	sess, err := m.Storage.GetSession(claims.ID)
	if err != nil {
		logger.Get().Error("session lookup failed", "session_id", claims.ID, "error", err)
		return nil, apperrors.NewUnauthorizedError("please log in")
	}
	if sess == nil {
		return nil, apperrors.NewUnauthorizedError("please log in")
	}
	return sess, nil
}

// Destroy ends the session a token refers to. It is idempotent and always
// succeeds from the caller's point of view: an invalid token or an already
// deleted session is not an error.
func (m *SessionManager) Destroy(token string) {
	claims, err := m.Tokens.Parse(token)
	if err != nil {
		return
	}
	if err := m.Storage.DeleteSession(claims.ID); err != nil {
		logger.Get().Warn("session delete failed", "session_id", claims.ID, "error", err)
	}
}
