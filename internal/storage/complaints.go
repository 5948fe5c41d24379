package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"empathos/backend/internal/models"
)

// ComplaintWithUser is the authority-side read model: a complaint joined
// with the username of its owner.
type ComplaintWithUser struct {
	ID          uint                   `json:"id"`
	UserID      uint                   `json:"user_id"`
	Username    string                 `json:"username"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Status      models.ComplaintStatus `json:"status"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// CreateComplaint inserts a new complaint row.
func (s *Service) CreateComplaint(complaint *models.Complaint) error {
	return s.DB.Create(complaint).Error
}

// GetComplaintByID returns the complaint with the given id, or ErrNotFound.
func (s *Service) GetComplaintByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.First(&complaint, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// GetComplaintsForUser returns all complaints owned by userID, newest first.
func (s *Service) GetComplaintsForUser(userID uint) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

// GetAllComplaints returns every complaint joined with the owning username,
// newest first.
func (s *Service) GetAllComplaints() ([]ComplaintWithUser, error) {
	var complaints []ComplaintWithUser
	err := s.DB.Model(&models.Complaint{}).
		Select("complaints.id, complaints.user_id, users.username, complaints.title, complaints.description, complaints.category, complaints.status, complaints.created_at, complaints.updated_at").
		Joins("JOIN users ON users.id = complaints.user_id").
		Order("complaints.created_at DESC").
		Scan(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

// UpdateComplaintStatus overwrites the status of an existing complaint and
// refreshes its updated timestamp. The status value is stored as-is; no
// check against the known states is performed here. Returns ErrNotFound if
// the complaint does not exist.
func (s *Service) UpdateComplaintStatus(id uint, status models.ComplaintStatus) error {
	result := s.DB.Model(&models.Complaint{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
