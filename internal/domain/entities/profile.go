package entities

import "time"

// Profile mirrors the identity provider's user record. Read-only here.
type Profile struct {
	UserID      string
	DisplayName string
	AvatarURL   string
	CreatedAt   time.Time
}

// Session is an identity-provider session token. Read-only here.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
