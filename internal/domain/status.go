package domain

// Thread statuses.
const (
	ThreadStatusIdea      = "idea"
	ThreadStatusProposing = "proposing"
	ThreadStatusScheduled = "scheduled"
	ThreadStatusCompleted = "completed"
	ThreadStatusCancelled = "cancelled"
)

// Participant roles.
const (
	RoleOrganizer = "organizer"
	RoleInvited   = "invited"
)

// RSVP statuses.
const (
	RSVPPending  = "pending"
	RSVPGoing    = "going"
	RSVPMaybe    = "maybe"
	RSVPDeclined = "declined"
)

// Time-proposal statuses.
const (
	ProposalStatusProposed  = "proposed"
	ProposalStatusAccepted  = "accepted"
	ProposalStatusWithdrawn = "withdrawn"
)

// Thread event types. AcceptedTime appears on historical rows only; the
// accept operation records Locked.
const (
	EventCreated      = "created"
	EventInvited      = "invited"
	EventProposedTime = "proposed_time"
	EventAcceptedTime = "accepted_time"
	EventRSVP         = "rsvp"
	EventMessage      = "message"
	EventLocked       = "locked"
	EventCancelled    = "cancelled"
	EventCompleted    = "completed"
)

// threadTransitions lists the legal thread status transitions.
var threadTransitions = map[string][]string{
	ThreadStatusIdea:      {ThreadStatusProposing, ThreadStatusCancelled},
	ThreadStatusProposing: {ThreadStatusScheduled, ThreadStatusCancelled},
	ThreadStatusScheduled: {ThreadStatusCompleted, ThreadStatusCancelled},
}

// CanTransition reports whether a thread may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range threadTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidRSVP reports whether status is part of the RSVP vocabulary.
func ValidRSVP(status string) bool {
	switch status {
	case RSVPPending, RSVPGoing, RSVPMaybe, RSVPDeclined:
		return true
	}
	return false
}

// ThreadOpen reports whether a thread still accepts participant actions.
func ThreadOpen(status string) bool {
	return status != ThreadStatusCompleted && status != ThreadStatusCancelled
}
