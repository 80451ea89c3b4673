package application

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kidfun/internal/domain"
	"kidfun/internal/domain/entities"
)

// ThreadView is the read-only aggregate served to UI callers: thread fields
// plus participants, proposals and events with display names resolved from
// profiles.
type ThreadView struct {
	ID            uint              `json:"id"`
	CreatedBy     string            `json:"created_by"`
	ActivityName  string            `json:"activity_name"`
	ProviderID    string            `json:"provider_id,omitempty"`
	ProviderName  string            `json:"provider_name,omitempty"`
	ProviderURL   string            `json:"provider_url,omitempty"`
	Status        string            `json:"status"`
	ScheduledDate *time.Time        `json:"scheduled_date,omitempty"`
	Location      string            `json:"location,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	Participants  []ParticipantView `json:"participants"`
	Proposals     []ProposalView    `json:"proposals"`
	Events        []EventView       `json:"events"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type ParticipantView struct {
	UserID           string     `json:"user_id"`
	DisplayName      string     `json:"display_name"`
	Role             string     `json:"role"`
	RSVPStatus       string     `json:"rsvp_status"`
	ChildrenBringing []string   `json:"children_bringing"`
	InvitedAt        time.Time  `json:"invited_at"`
	RespondedAt      *time.Time `json:"responded_at,omitempty"`
}

type ProposalView struct {
	ID           uint      `json:"id"`
	ProposedBy   string    `json:"proposed_by"`
	ProposerName string    `json:"proposer_name"`
	ProposedDate time.Time `json:"proposed_date"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type EventView struct {
	ID        uint            `json:"id"`
	UserID    string          `json:"user_id"`
	ActorName string          `json:"actor_name"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

func (s *CoordinationService) GetThread(ctx context.Context, threadID uint, userID string) (*ThreadView, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	thread, err := s.threadRepo.FindByID(ctx, threadID)
	if err != nil {
		return nil, domain.ErrThreadNotFound
	}
	if _, err := s.requireParticipant(ctx, threadID, userID); err != nil {
		return nil, err
	}
	return s.buildView(ctx, thread)
}

func (s *CoordinationService) ListThreads(ctx context.Context, userID string) ([]ThreadView, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	threads, err := s.threadRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list threads: %w", err)
	}
	views := make([]ThreadView, 0, len(threads))
	for i := range threads {
		view, err := s.buildView(ctx, &threads[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *CoordinationService) buildView(ctx context.Context, thread *entities.Thread) (*ThreadView, error) {
	participants, err := s.participantRepo.FindByThreadID(ctx, thread.ID)
	if err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}
	proposals, err := s.proposalRepo.FindByThreadID(ctx, thread.ID)
	if err != nil {
		return nil, fmt.Errorf("load proposals: %w", err)
	}
	events, err := s.eventRepo.FindByThreadID(ctx, thread.ID)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	userIDs := make([]string, 0, len(participants)+len(proposals)+len(events))
	for i := range participants {
		userIDs = append(userIDs, participants[i].UserID)
	}
	for i := range proposals {
		userIDs = append(userIDs, proposals[i].ProposedBy)
	}
	for i := range events {
		userIDs = append(userIDs, events[i].UserID)
	}
	profiles, err := s.profileRepo.FindByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	displayName := func(userID string) string {
		if profile, ok := profiles[userID]; ok && profile.DisplayName != "" {
			return profile.DisplayName
		}
		return userID
	}

	view := &ThreadView{
		ID:           thread.ID,
		CreatedBy:    thread.CreatedBy,
		ActivityName: thread.ActivityName,
		ProviderID:   thread.ProviderID,
		ProviderName: thread.ProviderName,
		ProviderURL:  thread.ProviderURL,
		Status:       thread.Status,
		Location:     thread.Location,
		Notes:        thread.Notes,
		CreatedAt:    thread.CreatedAt,
		UpdatedAt:    thread.UpdatedAt,
	}
	if !thread.ScheduledDate.IsZero() {
		scheduled := thread.ScheduledDate
		view.ScheduledDate = &scheduled
	}
	view.Participants = make([]ParticipantView, len(participants))
	for i := range participants {
		p := participants[i]
		pv := ParticipantView{
			UserID:           p.UserID,
			DisplayName:      displayName(p.UserID),
			Role:             p.Role,
			RSVPStatus:       p.RSVPStatus,
			ChildrenBringing: p.ChildrenBringing,
			InvitedAt:        p.InvitedAt,
		}
		if !p.RespondedAt.IsZero() {
			responded := p.RespondedAt
			pv.RespondedAt = &responded
		}
		view.Participants[i] = pv
	}
	view.Proposals = make([]ProposalView, len(proposals))
	for i := range proposals {
		p := proposals[i]
		view.Proposals[i] = ProposalView{
			ID:           p.ID,
			ProposedBy:   p.ProposedBy,
			ProposerName: displayName(p.ProposedBy),
			ProposedDate: p.ProposedDate,
			Notes:        p.Notes,
			Status:       p.Status,
			CreatedAt:    p.CreatedAt,
		}
	}
	view.Events = make([]EventView, len(events))
	for i := range events {
		e := events[i]
		view.Events[i] = EventView{
			ID:        e.ID,
			UserID:    e.UserID,
			ActorName: displayName(e.UserID),
			EventType: e.EventType,
			Payload:   e.Payload,
			CreatedAt: e.CreatedAt,
		}
	}
	return view, nil
}
