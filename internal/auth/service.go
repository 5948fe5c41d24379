// Package auth owns account identity: registration, role-scoped credential
// verification, and the session tokens issued after login.
package auth

import (
	"empathos/backend/internal/apperrors"
	"empathos/backend/internal/logger"
	"empathos/backend/internal/models"
	"empathos/backend/internal/storage"
)

// Service handles registration and authentication.
type Service struct {
	Storage storage.Storage
	Hasher  PasswordHasher
}

// NewService creates a new account service.
func NewService(s storage.Storage, h PasswordHasher) *Service {
	return &Service{Storage: s, Hasher: h}
}

// Register creates a new account. The username must be free; the password
// is stored only as a bcrypt hash. Email uniqueness is enforced by the
// database index alone, so a collision there surfaces as a generic failure
// rather than a duplicate-identity one.
func (s *Service) Register(username, email, password string, role models.Role) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, apperrors.NewValidationError("username, email and password are required")
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role must be individual or authority")
	}

	existing, err := s.Storage.GetUserByUsername(username)
	if err != nil {
		logger.Get().Error("registration lookup failed", "username", username, "error", err)
		return nil, apperrors.NewInternalError("registration failed")
	}
	if existing != nil {
		return nil, apperrors.NewDuplicateIdentityError("username already exists")
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		logger.Get().Error("password hashing failed", "error", err)
		return nil, apperrors.NewInternalError("registration failed")
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.Storage.CreateUser(user); err != nil {
		if storage.IsUniqueViolation(err) {
			// Lost a race on the username index, or hit the email index
			// (email is not pre-checked). Either way the write rolled back.
			logger.Get().Warn("registration hit unique constraint", "username", username)
		} else {
			logger.Get().Error("user insert failed", "username", username, "error", err)
		}
		return nil, apperrors.NewInternalError("registration failed")
	}

	return user, nil
}

// Authenticate verifies a username/password pair under a claimed role. The
// lookup is scoped by both username and role; an absent user, a role
// mismatch and a wrong password all produce the identical
// InvalidCredentials error.
func (s *Service) Authenticate(username, password string, role models.Role) (*models.User, error) {
	user, err := s.Storage.GetUserByUsernameAndRole(username, role)
	if err != nil {
		logger.Get().Error("authentication lookup failed", "username", username, "error", err)
		return nil, apperrors.NewInternalError("login failed")
	}
	if user == nil {
		return nil, apperrors.NewInvalidCredentialsError()
	}
	if err := s.Hasher.Verify(password, user.PasswordHash); err != nil {
		return nil, apperrors.NewInvalidCredentialsError()
	}
	return user, nil
}
