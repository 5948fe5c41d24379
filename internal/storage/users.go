package storage

import (
	"errors"

	"gorm.io/gorm"

	"empathos/backend/internal/models"
)

// CreateUser inserts a new user row. The write is atomic: on a constraint
// violation nothing is persisted and the database error is returned.
func (s *Service) CreateUser(user *models.User) error {
	return s.DB.Create(user).Error
}

// GetUserByID returns the user with the given id, or ErrNotFound.
func (s *Service) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername returns the user with the given username regardless of
// role, or (nil, nil) when no such user exists.
func (s *Service) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsernameAndRole returns the user matching both username and role,
// or (nil, nil) when no row matches. Login is role-scoped: the same
// username under a different role does not match.
func (s *Service) GetUserByUsernameAndRole(username string, role models.Role) (*models.User, error) {
	var user models.User
	err := s.DB.Where("username = ? AND role = ?", username, role).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
