package complaint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"empathos/backend/internal/apperrors"
	"empathos/backend/internal/complaint"
	"empathos/backend/internal/models"
	"empathos/backend/internal/storage"
	"empathos/backend/internal/storage/mocks"
)

func TestSubmit_Success(t *testing.T) {
	store := new(mocks.MockStorage)
	var created *models.Complaint
	store.On("CreateComplaint", mock.AnythingOfType("*models.Complaint")).
		Run(func(args mock.Arguments) { created = args.Get(0).(*models.Complaint) }).
		Return(nil)

	svc := complaint.NewService(store)
	result, err := svc.Submit(3, "No heating", "The radiators have been cold for a week.", "finance")
	require.NoError(t, err)

	// Every supplied field is stored unchanged and the record starts pending.
	require.NotNil(t, created)
	assert.Equal(t, uint(3), created.UserID)
	assert.Equal(t, "No heating", created.Title)
	assert.Equal(t, "The radiators have been cold for a week.", created.Description)
	assert.Equal(t, "finance", created.Category)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, created, result)
}

func TestSubmit_RequiresAllFields(t *testing.T) {
	store := new(mocks.MockStorage)
	svc := complaint.NewService(store)

	tests := []struct {
		name                       string
		title, description, category string
	}{
		{name: "missing title", description: "d", category: "abuse"},
		{name: "missing description", title: "t", category: "abuse"},
		{name: "missing category", title: "t", description: "d"},
		{name: "all missing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(1, tt.title, tt.description, tt.category)
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		})
	}
	store.AssertNotCalled(t, "CreateComplaint", mock.Anything)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	store := new(mocks.MockStorage)
	store.On("GetComplaintByID", uint(99)).Return(nil, storage.ErrNotFound)

	svc := complaint.NewService(store)
	err := svc.UpdateStatus(99, models.StatusResolved)

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	store.AssertNotCalled(t, "UpdateComplaintStatus", mock.Anything, mock.Anything)
}

func TestUpdateStatus_AnyTransition(t *testing.T) {
	store := new(mocks.MockStorage)
	svc := complaint.NewService(store)

	// Regressions and repeats are allowed, and unknown values pass through
	// unvalidated.
	transitions := []struct {
		from models.ComplaintStatus
		to   models.ComplaintStatus
	}{
		{models.StatusPending, models.StatusResolved},
		{models.StatusResolved, models.StatusPending},
		{models.StatusInProgress, models.StatusInProgress},
		{models.StatusPending, models.ComplaintStatus("escalated")},
	}
	for _, tr := range transitions {
		store.On("GetComplaintByID", uint(5)).Return(&models.Complaint{ID: 5, Status: tr.from}, nil).Once()
		store.On("UpdateComplaintStatus", uint(5), tr.to).Return(nil).Once()

		assert.NoError(t, svc.UpdateStatus(5, tr.to), "%s -> %s", tr.from, tr.to)
	}
	store.AssertExpectations(t)
}

func TestListForUser(t *testing.T) {
	store := new(mocks.MockStorage)
	own := []models.Complaint{{ID: 2, UserID: 3}, {ID: 1, UserID: 3}}
	store.On("GetComplaintsForUser", uint(3)).Return(own, nil)

	svc := complaint.NewService(store)
	complaints, err := svc.ListForUser(3)
	require.NoError(t, err)
	assert.Equal(t, own, complaints)
}
