package models

import (
	"fmt"
	"time"
)

// Role classifies an account. Only the two values below are accepted;
// anything else is rejected at the request boundary via ParseRole.
type Role string

const (
	// RoleIndividual is a regular user who files complaints and talks to the bot.
	RoleIndividual Role = "individual"
	// RoleAuthority is a reviewer who oversees complaints and chat activity.
	RoleAuthority Role = "authority"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleIndividual || r == RoleAuthority
}

// ParseRole validates a caller-supplied role string.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return role, nil
}

// User represents an account in the system. The password is stored only as
// a bcrypt hash; username and email carry unique indexes (registration only
// pre-checks the username, the email index is enforced by the database).
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:200;not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`

	// Relationships
	Complaints   []Complaint   `gorm:"foreignKey:UserID" json:"-"`
	ChatMessages []ChatMessage `gorm:"foreignKey:UserID" json:"-"`
}
