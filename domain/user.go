package domain

import "time"

// User is a registered author. PasswordHash is empty for SSO users;
// Provider is empty for credential users. CollectionID is the id of the
// user's personal remote collection, set lazily by the provisioner.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	Provider     string     `json:"provider,omitempty"`
	Avatar       string     `json:"avatar,omitempty"`
	Bio          string     `json:"bio,omitempty"`
	CollectionID string     `json:"collection_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	LoginCount   int        `json:"login_count"`
}

// UserCollection maps a user to their personal remote collection.
type UserCollection struct {
	Email        string `json:"email"`
	CollectionID string `json:"collection_id"`
	Name         string `json:"name"`
}
