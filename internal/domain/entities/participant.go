package entities

import "time"

// Participant represents a user's membership in a coordination thread.
type Participant struct {
	ID               uint
	ThreadID         uint
	UserID           string
	Role             string
	RSVPStatus       string
	ChildrenBringing []string
	InvitedAt        time.Time
	RespondedAt      time.Time // zero = not responded yet
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
