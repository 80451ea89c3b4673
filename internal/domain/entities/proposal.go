package entities

import "time"

// TimeProposal is a candidate date/time for a thread. At most one proposal
// per thread holds the accepted status; accepting one withdraws its open
// siblings.
type TimeProposal struct {
	ID           uint
	ThreadID     uint
	ProposedBy   string
	ProposedDate time.Time
	Notes        string
	Status       string
	CreatedAt    time.Time
}
