package auth

import (
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"empathos/backend/internal/models"
)

const tokenIssuer = "empathos-backend"

// TokenManager issues and verifies the signed session tokens carried in the
// session cookie. The token references a Redis-backed session by id, so a
// logged-out session is dead even while its token is still unexpired.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given session.
func (t *TokenManager) Issue(sess *models.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":      sess.ID,
		"uid":      sess.UserID,
		"username": sess.Username,
		"role":     sess.Role.String(),
		"exp":      time.Now().Add(t.ttl).Unix(),
		"iss":      tokenIssuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse verifies a token and reconstructs the session claims it carries.
func (t *TokenManager) Parse(tokenString string) (*models.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token claims")
	}

	sid, _ := claims["sid"].(string)
	username, _ := claims["username"].(string)
	roleStr, _ := claims["role"].(string)
	uid, _ := claims["uid"].(float64)
	if sid == "" || username == "" || uid <= 0 {
		return nil, fmt.Errorf("incomplete session token claims")
	}
	role, err := models.ParseRole(roleStr)
	if err != nil {
		return nil, fmt.Errorf("invalid session token role: %w", err)
	}

	return &models.Session{
		ID:       sid,
		UserID:   uint(uid),
		Username: username,
		Role:     role,
	}, nil
}
