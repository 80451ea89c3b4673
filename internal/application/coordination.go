package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"kidfun/internal/domain"
	"kidfun/internal/domain/entities"
	"kidfun/internal/ports/output"
)

// CreateThreadOptions carries the optional fields of thread creation.
type CreateThreadOptions struct {
	ProposedDate  *time.Time
	ProposedNotes string
	ProviderID    string
	ProviderName  string
	ProviderURL   string
	Location      string
	Notes         string
}

// CoordinationService owns the thread/proposal/participant transition rules.
// Every mutating operation validates server-side, runs its writes in one
// transaction, appends exactly one ThreadEvent per state change, and
// notifies the change feed after commit.
type CoordinationService struct {
	threadRepo      output.ThreadRepository
	participantRepo output.ParticipantRepository
	proposalRepo    output.ProposalRepository
	eventRepo       output.ThreadEventRepository
	profileRepo     output.ProfileRepository
	tx              output.TxManager
	notifier        output.Notifier
	now             func() time.Time
}

func NewCoordinationService(
	threadRepo output.ThreadRepository,
	participantRepo output.ParticipantRepository,
	proposalRepo output.ProposalRepository,
	eventRepo output.ThreadEventRepository,
	profileRepo output.ProfileRepository,
	tx output.TxManager,
	notifier output.Notifier,
) *CoordinationService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &CoordinationService{
		threadRepo:      threadRepo,
		participantRepo: participantRepo,
		proposalRepo:    proposalRepo,
		eventRepo:       eventRepo,
		profileRepo:     profileRepo,
		tx:              tx,
		notifier:        notifier,
		now:             time.Now,
	}
}

type noopNotifier struct{}

func (noopNotifier) ThreadChanged(uint, []string) {}

func (s *CoordinationService) appendEvent(ctx context.Context, threadID uint, userID, eventType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	event := &entities.ThreadEvent{
		ThreadID:  threadID,
		UserID:    userID,
		EventType: eventType,
		Payload:   raw,
	}
	if err := s.eventRepo.Append(ctx, event); err != nil {
		return fmt.Errorf("append %s event: %w", eventType, err)
	}
	return nil
}

// notifyParticipants pushes a coarse change notification to every
// participant of the thread. Called after the transaction committed.
func (s *CoordinationService) notifyParticipants(ctx context.Context, threadID uint) {
	participants, err := s.participantRepo.FindByThreadID(ctx, threadID)
	if err != nil {
		return
	}
	userIDs := make([]string, len(participants))
	for i := range participants {
		userIDs[i] = participants[i].UserID
	}
	s.notifier.ThreadChanged(threadID, userIDs)
}

// requireParticipant loads the caller's membership row, or ErrNotParticipant.
func (s *CoordinationService) requireParticipant(ctx context.Context, threadID uint, userID string) (*entities.Participant, error) {
	participant, err := s.participantRepo.FindByThreadIDAndUserID(ctx, threadID, userID)
	if err != nil || participant == nil {
		return nil, domain.ErrNotParticipant
	}
	return participant, nil
}

func (s *CoordinationService) CreateThread(ctx context.Context, organizerID, activityName string, inviteUserIDs []string, opts CreateThreadOptions) (uint, error) {
	if organizerID == "" {
		return 0, domain.ErrUnauthenticated
	}
	activityName = strings.TrimSpace(activityName)
	if activityName == "" {
		return 0, domain.ErrActivityNameEmpty
	}
	if opts.ProposedDate != nil && !opts.ProposedDate.After(s.now()) {
		return 0, domain.ErrDateTimeInPast
	}

	status := domain.ThreadStatusIdea
	if opts.ProposedDate != nil {
		status = domain.ThreadStatusProposing
	}
	thread := &entities.Thread{
		CreatedBy:    organizerID,
		ActivityName: activityName,
		ProviderID:   opts.ProviderID,
		ProviderName: opts.ProviderName,
		ProviderURL:  opts.ProviderURL,
		Status:       status,
		Location:     opts.Location,
		Notes:        opts.Notes,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.threadRepo.Create(ctx, thread); err != nil {
			return fmt.Errorf("create thread: %w", err)
		}
		organizer := &entities.Participant{
			ThreadID:    thread.ID,
			UserID:      organizerID,
			Role:        domain.RoleOrganizer,
			RSVPStatus:  domain.RSVPGoing,
			InvitedAt:   s.now(),
			RespondedAt: s.now(),
		}
		if err := s.participantRepo.Create(ctx, organizer); err != nil {
			return fmt.Errorf("create organizer participant: %w", err)
		}
		if err := s.appendEvent(ctx, thread.ID, organizerID, domain.EventCreated, map[string]any{
			"activity_name": activityName,
			"status":        status,
		}); err != nil {
			return err
		}
		seen := map[string]struct{}{organizerID: {}}
		for _, inviteeID := range inviteUserIDs {
			if inviteeID == "" {
				continue
			}
			if _, dup := seen[inviteeID]; dup {
				continue
			}
			seen[inviteeID] = struct{}{}
			invitee := &entities.Participant{
				ThreadID:   thread.ID,
				UserID:     inviteeID,
				Role:       domain.RoleInvited,
				RSVPStatus: domain.RSVPPending,
				InvitedAt:  s.now(),
			}
			if err := s.participantRepo.Create(ctx, invitee); err != nil {
				return fmt.Errorf("create invited participant: %w", err)
			}
			if err := s.appendEvent(ctx, thread.ID, organizerID, domain.EventInvited, map[string]any{
				"user_id": inviteeID,
			}); err != nil {
				return err
			}
		}
		if opts.ProposedDate != nil {
			proposal := &entities.TimeProposal{
				ThreadID:     thread.ID,
				ProposedBy:   organizerID,
				ProposedDate: *opts.ProposedDate,
				Notes:        opts.ProposedNotes,
				Status:       domain.ProposalStatusProposed,
			}
			if err := s.proposalRepo.Create(ctx, proposal); err != nil {
				return fmt.Errorf("create initial proposal: %w", err)
			}
			if err := s.appendEvent(ctx, thread.ID, organizerID, domain.EventProposedTime, map[string]any{
				"proposal_id":   proposal.ID,
				"proposed_date": proposal.ProposedDate,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.notifyParticipants(ctx, thread.ID)
	return thread.ID, nil
}

func (s *CoordinationService) ProposeTime(ctx context.Context, threadID uint, proposerID string, date time.Time, notes string) (uint, error) {
	if proposerID == "" {
		return 0, domain.ErrUnauthenticated
	}
	if !date.After(s.now()) {
		return 0, domain.ErrDateTimeInPast
	}
	thread, err := s.threadRepo.FindByID(ctx, threadID)
	if err != nil {
		return 0, domain.ErrThreadNotFound
	}
	if _, err := s.requireParticipant(ctx, threadID, proposerID); err != nil {
		return 0, err
	}
	switch thread.Status {
	case domain.ThreadStatusIdea, domain.ThreadStatusProposing:
	case domain.ThreadStatusScheduled:
		return 0, domain.ErrThreadLocked
	default:
		return 0, domain.ErrThreadClosed
	}

	proposal := &entities.TimeProposal{
		ThreadID:     threadID,
		ProposedBy:   proposerID,
		ProposedDate: date,
		Notes:        notes,
		Status:       domain.ProposalStatusProposed,
	}
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.proposalRepo.Create(ctx, proposal); err != nil {
			return fmt.Errorf("create proposal: %w", err)
		}
		if thread.Status == domain.ThreadStatusIdea {
			if err := s.threadRepo.UpdateStatus(ctx, threadID, domain.ThreadStatusProposing); err != nil {
				return fmt.Errorf("update thread status: %w", err)
			}
		}
		return s.appendEvent(ctx, threadID, proposerID, domain.EventProposedTime, map[string]any{
			"proposal_id":   proposal.ID,
			"proposed_date": proposal.ProposedDate,
		})
	})
	if err != nil {
		return 0, err
	}
	s.notifyParticipants(ctx, threadID)
	return proposal.ID, nil
}

// AcceptProposal locks the schedule: the proposal becomes accepted, its open
// siblings are withdrawn, and the thread moves to scheduled with the
// proposal's date. Only threads still collecting times may accept; a closed
// thread rejects even if its proposals were left open. The accept itself is
// a conditional update, so a lost concurrent race fails with
// ErrProposalNotOpen instead of producing two accepted proposals.
func (s *CoordinationService) AcceptProposal(ctx context.Context, proposalID uint, accepterID string) error {
	if accepterID == "" {
		return domain.ErrUnauthenticated
	}
	proposal, err := s.proposalRepo.FindByID(ctx, proposalID)
	if err != nil {
		return domain.ErrProposalNotFound
	}
	thread, err := s.threadRepo.FindByID(ctx, proposal.ThreadID)
	if err != nil {
		return domain.ErrThreadNotFound
	}
	if _, err := s.requireParticipant(ctx, proposal.ThreadID, accepterID); err != nil {
		return err
	}
	if proposal.Status != domain.ProposalStatusProposed {
		return domain.ErrProposalNotOpen
	}
	switch thread.Status {
	case domain.ThreadStatusIdea, domain.ThreadStatusProposing:
	case domain.ThreadStatusScheduled:
		return domain.ErrThreadLocked
	default:
		return domain.ErrThreadClosed
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		accepted, err := s.proposalRepo.Accept(ctx, proposalID)
		if err != nil {
			return err
		}
		if err := s.proposalRepo.WithdrawOpenSiblings(ctx, accepted.ThreadID, accepted.ID); err != nil {
			return fmt.Errorf("withdraw open proposals: %w", err)
		}
		if err := s.threadRepo.UpdateSchedule(ctx, accepted.ThreadID, domain.ThreadStatusScheduled, accepted.ProposedDate); err != nil {
			return fmt.Errorf("schedule thread: %w", err)
		}
		return s.appendEvent(ctx, accepted.ThreadID, accepterID, domain.EventLocked, map[string]any{
			"proposal_id":    accepted.ID,
			"scheduled_date": accepted.ProposedDate,
		})
	})
	if err != nil {
		return err
	}
	s.notifyParticipants(ctx, proposal.ThreadID)
	return nil
}

func (s *CoordinationService) UpdateRSVP(ctx context.Context, threadID uint, userID, status string, childrenBringing []string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}
	if !domain.ValidRSVP(status) {
		return domain.ErrInvalidRSVP
	}
	if _, err := s.requireParticipant(ctx, threadID, userID); err != nil {
		return err
	}
	if childrenBringing == nil {
		childrenBringing = []string{}
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.participantRepo.UpdateRSVP(ctx, threadID, userID, status, childrenBringing, s.now()); err != nil {
			return fmt.Errorf("update rsvp: %w", err)
		}
		return s.appendEvent(ctx, threadID, userID, domain.EventRSVP, map[string]any{
			"status":         status,
			"children_count": len(childrenBringing),
		})
	})
	if err != nil {
		return err
	}
	s.notifyParticipants(ctx, threadID)
	return nil
}

func (s *CoordinationService) InviteParticipant(ctx context.Context, threadID uint, organizerID, userID string) error {
	if organizerID == "" {
		return domain.ErrUnauthenticated
	}
	if userID == "" {
		return domain.ErrParticipantNotFound
	}
	thread, err := s.threadRepo.FindByID(ctx, threadID)
	if err != nil {
		return domain.ErrThreadNotFound
	}
	caller, err := s.requireParticipant(ctx, threadID, organizerID)
	if err != nil {
		return err
	}
	if caller.Role != domain.RoleOrganizer {
		return domain.ErrNotOrganizer
	}
	if !thread.IsOpen() {
		return domain.ErrThreadClosed
	}
	if existing, _ := s.participantRepo.FindByThreadIDAndUserID(ctx, threadID, userID); existing != nil {
		return domain.ErrParticipantExists
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		invitee := &entities.Participant{
			ThreadID:   threadID,
			UserID:     userID,
			Role:       domain.RoleInvited,
			RSVPStatus: domain.RSVPPending,
			InvitedAt:  s.now(),
		}
		if err := s.participantRepo.Create(ctx, invitee); err != nil {
			return fmt.Errorf("create invited participant: %w", err)
		}
		return s.appendEvent(ctx, threadID, organizerID, domain.EventInvited, map[string]any{
			"user_id": userID,
		})
	})
	if err != nil {
		return err
	}
	s.notifyParticipants(ctx, threadID)
	return nil
}

// PostMessage appends a message to the thread's event log. Messages carry no
// thread state, so the event is the record itself.
func (s *CoordinationService) PostMessage(ctx context.Context, threadID uint, userID, body string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return domain.ErrEmptyMessage
	}
	if _, err := s.threadRepo.FindByID(ctx, threadID); err != nil {
		return domain.ErrThreadNotFound
	}
	if _, err := s.requireParticipant(ctx, threadID, userID); err != nil {
		return err
	}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.appendEvent(ctx, threadID, userID, domain.EventMessage, map[string]any{
			"body": body,
		})
	})
	if err != nil {
		return err
	}
	s.notifyParticipants(ctx, threadID)
	return nil
}

func (s *CoordinationService) CancelThread(ctx context.Context, threadID uint, userID string) error {
	return s.closeThread(ctx, threadID, userID, domain.ThreadStatusCancelled, domain.EventCancelled)
}

func (s *CoordinationService) CompleteThread(ctx context.Context, threadID uint, userID string) error {
	return s.closeThread(ctx, threadID, userID, domain.ThreadStatusCompleted, domain.EventCompleted)
}

func (s *CoordinationService) closeThread(ctx context.Context, threadID uint, userID, status, eventType string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}
	thread, err := s.threadRepo.FindByID(ctx, threadID)
	if err != nil {
		return domain.ErrThreadNotFound
	}
	caller, err := s.requireParticipant(ctx, threadID, userID)
	if err != nil {
		return err
	}
	if caller.Role != domain.RoleOrganizer {
		return domain.ErrNotOrganizer
	}
	if !domain.CanTransition(thread.Status, status) {
		if status == domain.ThreadStatusCompleted {
			return domain.ErrThreadNotScheduled
		}
		return domain.ErrThreadClosed
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.threadRepo.UpdateStatus(ctx, threadID, status); err != nil {
			return fmt.Errorf("update thread status: %w", err)
		}
		return s.appendEvent(ctx, threadID, userID, eventType, map[string]any{
			"previous_status": thread.Status,
		})
	})
	if err != nil {
		return err
	}
	s.notifyParticipants(ctx, threadID)
	return nil
}

func (s *CoordinationService) GetMyParticipation(ctx context.Context, threadID uint, userID string) (*entities.Participant, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.requireParticipant(ctx, threadID, userID)
}
