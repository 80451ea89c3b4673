package domain

import "errors"

// Domain errors.
var (
	ErrUnauthenticated     = errors.New("no signed-in user")
	ErrThreadNotFound      = errors.New("thread not found")
	ErrProposalNotFound    = errors.New("proposal not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrParticipantExists   = errors.New("user is already a participant")
	ErrNotParticipant      = errors.New("user is not a participant of this thread")
	ErrNotOrganizer        = errors.New("only the organizer can perform this action")
	ErrActivityNameEmpty   = errors.New("activity name must not be empty")
	ErrDateTimeInPast      = errors.New("date and time must be in the future")
	ErrInvalidRSVP         = errors.New("invalid rsvp status")
	ErrEmptyMessage        = errors.New("message must not be empty")
	ErrProposalNotOpen     = errors.New("proposal is no longer open")
	ErrThreadClosed        = errors.New("thread is completed or cancelled")
	ErrThreadLocked        = errors.New("thread schedule is already locked")
	ErrThreadNotScheduled  = errors.New("thread is not scheduled")
)
