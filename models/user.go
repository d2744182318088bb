package models

import "time"

// User represents a profile row in the backend "users" collection. The row is
// created at registration time and keyed by the auth identity id.
type User struct {
	// ID is the auth identity id shared with the backend's auth subsystem.
	ID string `json:"id"`

	// Email is the login identifier. Owned by the auth subsystem; the profile
	// row carries a copy for display.
	Email string `json:"email"`

	// Name is the display name shown next to published recipes.
	Name string `json:"name"`

	// AvatarURL is the optional public URL of the profile picture.
	AvatarURL string `json:"avatar_url,omitempty"`

	// IsAdmin marks administrator accounts. Administrators may delete any
	// user's recipes. The flag is re-read per deletion attempt, never cached
	// across flows.
	IsAdmin bool `json:"is_admin"`

	// CreatedAt is the timestamp when the profile row was created.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the backend collection
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity is the minimal authenticated-user view returned by the backend's
// session endpoint.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
