package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"empathos/backend/internal/models"
)

// ErrNotFound is returned by lookups whose subject does not exist.
var ErrNotFound = errors.New("record not found")

// Storage is the persistence boundary for the application. Durable records
// (users, complaints, chat messages) live in PostgreSQL; sessions and the
// chat event feed live in Redis.
type Storage interface {
	// Users
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByUsernameAndRole(username string, role models.Role) (*models.User, error)

	// Complaints
	CreateComplaint(complaint *models.Complaint) error
	GetComplaintByID(id uint) (*models.Complaint, error)
	GetComplaintsForUser(userID uint) ([]models.Complaint, error)
	GetAllComplaints() ([]ComplaintWithUser, error)
	UpdateComplaintStatus(id uint, status models.ComplaintStatus) error

	// Chat messages
	CreateChatMessage(msg *models.ChatMessage) error
	GetChatHistoryForUser(userID uint, limit int) ([]models.ChatMessage, error)
	GetRecentChatMessages(limit int) ([]ChatMessageWithUser, error)

	// Sessions (Redis, ephemeral)
	CreateSession(sess *models.Session, ttl time.Duration) error
	GetSession(id string) (*models.Session, error)
	DeleteSession(id string) error

	// Chat event feed (Redis Pub/Sub)
	PublishChatEvent(event ChatEvent) error
	SubscribeChatEvents() *redis.PubSub
}

// Service implements Storage on top of GORM and go-redis.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505). Used to tell constraint races apart from
// other write failures when logging; callers still report a generic
// failure either way.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
