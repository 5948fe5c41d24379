package models

import "time"

// ComplaintStatus is the review state of a complaint. The three constants
// below are the known states, but storage accepts the value as-is: status
// transitions are deliberately unrestricted (see CanTransitionTo).
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusInProgress ComplaintStatus = "in_progress"
	StatusResolved   ComplaintStatus = "resolved"
)

func (s ComplaintStatus) String() string {
	return string(s)
}

func (s ComplaintStatus) IsKnown() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusResolved
}

// CanTransitionTo reports whether a status change is allowed. Any state may
// move to any other state, including regressions (resolved back to pending)
// and repeated no-op transitions. Keeping the policy as an explicit function
// makes the choice visible and testable.
func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	return true
}

// Complaint is a help request filed by an individual user. The owner is set
// at creation and never reassigned; UpdatedAt is refreshed on every mutation.
type Complaint struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Title       string          `gorm:"size:200;not null" json:"title"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Category    string          `gorm:"size:50;not null" json:"category"` // mental_health, finance, abuse, etc.
	Status      ComplaintStatus `gorm:"type:varchar(20);default:pending" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
