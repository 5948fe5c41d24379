// Package complaint provides the core logic for the complaint ledger:
// submission by individual users and status review by authority members.
package complaint

import (
	"errors"

	"empathos/backend/internal/apperrors"
	"empathos/backend/internal/logger"
	"empathos/backend/internal/models"
	"empathos/backend/internal/storage"
)

// Categories are the suggested classification tags offered on the help
// form. Submission does not restrict category to this list.
var Categories = []string{"mental_health", "finance", "abuse", "other"}

// Service handles the business logic for complaints.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new complaint service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Submit files a new complaint for the given owner. Title, description and
// category are all required. The complaint starts in the pending state with
// created and updated timestamps set together.
func (s *Service) Submit(userID uint, title, description, category string) (*models.Complaint, error) {
	if title == "" || description == "" || category == "" {
		return nil, apperrors.NewValidationError("all fields are required")
	}

	complaint := &models.Complaint{
		UserID:      userID,
		Title:       title,
		Description: description,
		Category:    category,
		Status:      models.StatusPending,
	}
	if err := s.Storage.CreateComplaint(complaint); err != nil {
		logger.Get().Error("complaint insert failed", "user_id", userID, "error", err)
		return nil, apperrors.NewInternalError("failed to submit complaint")
	}
	return complaint, nil
}

// ListForUser returns the caller's own complaints, newest first.
func (s *Service) ListForUser(userID uint) ([]models.Complaint, error) {
	complaints, err := s.Storage.GetComplaintsForUser(userID)
	if err != nil {
		logger.Get().Error("complaint list failed", "user_id", userID, "error", err)
		return nil, apperrors.NewInternalError("failed to load complaints")
	}
	return complaints, nil
}

// ListAll returns every complaint joined with the owning username, newest
// first. Role gating happens at the HTTP layer; any authority member sees
// every user's complaints.
func (s *Service) ListAll() ([]storage.ComplaintWithUser, error) {
	complaints, err := s.Storage.GetAllComplaints()
	if err != nil {
		logger.Get().Error("complaint list-all failed", "error", err)
		return nil, apperrors.NewInternalError("failed to load complaints")
	}
	return complaints, nil
}

// UpdateStatus overwrites the status of a complaint and refreshes its
// updated timestamp. The transition policy is unrestricted and the value is
// stored as received, including values outside the known set; only a missing
// complaint is an error.
func (s *Service) UpdateStatus(id uint, status models.ComplaintStatus) error {
	current, err := s.Storage.GetComplaintByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.NewNotFoundError("complaint not found")
		}
		logger.Get().Error("complaint lookup failed", "complaint_id", id, "error", err)
		return apperrors.NewInternalError("failed to update complaint")
	}

	if !current.Status.CanTransitionTo(status) {
		// Unreachable under the current policy; kept so a restricted
		// state machine has a single place to land.
		return apperrors.NewValidationError("status transition not allowed")
	}

	if err := s.Storage.UpdateComplaintStatus(id, status); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.NewNotFoundError("complaint not found")
		}
		logger.Get().Error("status update failed", "complaint_id", id, "error", err)
		return apperrors.NewInternalError("failed to update complaint")
	}
	return nil
}
