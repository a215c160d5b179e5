package domain

import (
	"time"
)

// Profile is the persisted account record backing an Actor. It is written
// once at registration and read once per session to resolve the acting
// role.
type Profile struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewProfile creates a profile record at registration time.
func NewProfile(uid, email, passwordHash, displayName string, role Role) *Profile {
	return &Profile{
		UID:          uid,
		Email:        email,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
}

// AuthEvent is a notification from the identity provider boundary: either
// a signed-in credential carrying the stable uid and email, or a sign-out.
type AuthEvent struct {
	SignedIn bool
	UID      string
	Email    string
}
