package models

// Session binds a user identity and role for the duration of a login. It is
// a transient capability token: stored in Redis with a TTL and referenced
// from the session cookie, never persisted to the relational store.
type Session struct {
	ID       string `json:"id"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
