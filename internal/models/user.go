package models

import "time"

// User represents a user account in the system.
//
// The ID is assigned by the store on creation and never changes. The
// username is the natural key: unique, case-sensitive, immutable after
// signup. The password hash is opaque bcrypt output and must never
// reach a client, hence the json:"-" tag.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	CreatedAt    time.Time `json:"createdAt"`
}

// Credential is the external-facing projection of a User: everything a
// client may see, nothing it may not. All service operations return
// this shape instead of the full User.
type Credential struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Credential projects the user into its client-safe view.
func (u User) Credential() Credential {
	return Credential{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
