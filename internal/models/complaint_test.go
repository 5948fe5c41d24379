package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"empathos/backend/internal/models"
)

func TestComplaintStatusIsKnown(t *testing.T) {
	assert.True(t, models.StatusPending.IsKnown())
	assert.True(t, models.StatusInProgress.IsKnown())
	assert.True(t, models.StatusResolved.IsKnown())
	assert.False(t, models.ComplaintStatus("closed").IsKnown())
	assert.False(t, models.ComplaintStatus("").IsKnown())
}

// TestStatusTransitionsUnrestricted pins down the transition policy: any
// status may move to any other status, including regressions and repeats.
func TestStatusTransitionsUnrestricted(t *testing.T) {
	states := []models.ComplaintStatus{
		models.StatusPending,
		models.StatusInProgress,
		models.StatusResolved,
	}

	for _, from := range states {
		for _, to := range states {
			assert.True(t, from.CanTransitionTo(to), "%s -> %s should be allowed", from, to)
		}
	}

	// Even values outside the known set pass; storage accepts them as-is.
	assert.True(t, models.StatusResolved.CanTransitionTo(models.ComplaintStatus("escalated")))
}
