// Package mocks provides a testify mock of the storage.Storage interface
// for use in service and handler tests.
package mocks

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"

	"empathos/backend/internal/models"
	"empathos/backend/internal/storage"
)

// MockStorage is a mock implementation of the storage.Storage interface.
// It uses testify/mock to allow flexible expectation setting in tests.
type MockStorage struct {
	mock.Mock
}

// User operations

func (m *MockStorage) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStorage) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) GetUserByUsernameAndRole(username string, role models.Role) (*models.User, error) {
	args := m.Called(username, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Complaint operations

func (m *MockStorage) CreateComplaint(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}

func (m *MockStorage) GetComplaintByID(id uint) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStorage) GetComplaintsForUser(userID uint) ([]models.Complaint, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) GetAllComplaints() ([]storage.ComplaintWithUser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ComplaintWithUser), args.Error(1)
}

func (m *MockStorage) UpdateComplaintStatus(id uint, status models.ComplaintStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// Chat operations

func (m *MockStorage) CreateChatMessage(msg *models.ChatMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockStorage) GetChatHistoryForUser(userID uint, limit int) ([]models.ChatMessage, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

func (m *MockStorage) GetRecentChatMessages(limit int) ([]storage.ChatMessageWithUser, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ChatMessageWithUser), args.Error(1)
}

// Session operations

func (m *MockStorage) CreateSession(sess *models.Session, ttl time.Duration) error {
	args := m.Called(sess, ttl)
	return args.Error(0)
}

func (m *MockStorage) GetSession(id string) (*models.Session, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockStorage) DeleteSession(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// Event operations

func (m *MockStorage) PublishChatEvent(event storage.ChatEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockStorage) SubscribeChatEvents() *redis.PubSub {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*redis.PubSub)
}
