package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"kidfun/internal/domain/entities"
	"kidfun/internal/infrastructure/database/sqlc_generated"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// timeToPgtypeTimestamptz returns an invalid (NULL) value for zero time.
func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func threadToDomain(t sqlc_generated.Thread) entities.Thread {
	return entities.Thread{
		ID:            uint(t.ID),
		CreatedBy:     t.CreatedBy,
		ActivityName:  t.ActivityName,
		ProviderID:    t.ProviderID,
		ProviderName:  t.ProviderName,
		ProviderURL:   t.ProviderUrl,
		Status:        t.Status,
		ScheduledDate: pgtypeTimestamptzToTime(t.ScheduledDate),
		Location:      t.Location,
		Notes:         t.Notes,
		CreatedAt:     pgtypeTimestamptzToTime(t.CreatedAt),
		UpdatedAt:     pgtypeTimestamptzToTime(t.UpdatedAt),
	}
}

func participantToDomain(p sqlc_generated.Participant) entities.Participant {
	children := p.ChildrenBringing
	if children == nil {
		children = []string{}
	}
	return entities.Participant{
		ID:               uint(p.ID),
		ThreadID:         uint(p.ThreadID),
		UserID:           p.UserID,
		Role:             p.Role,
		RSVPStatus:       p.RsvpStatus,
		ChildrenBringing: children,
		InvitedAt:        pgtypeTimestamptzToTime(p.InvitedAt),
		RespondedAt:      pgtypeTimestamptzToTime(p.RespondedAt),
		CreatedAt:        pgtypeTimestamptzToTime(p.CreatedAt),
		UpdatedAt:        pgtypeTimestamptzToTime(p.UpdatedAt),
	}
}

func proposalToDomain(p sqlc_generated.TimeProposal) entities.TimeProposal {
	return entities.TimeProposal{
		ID:           uint(p.ID),
		ThreadID:     uint(p.ThreadID),
		ProposedBy:   p.ProposedBy,
		ProposedDate: pgtypeTimestamptzToTime(p.ProposedDate),
		Notes:        p.Notes,
		Status:       p.Status,
		CreatedAt:    pgtypeTimestamptzToTime(p.CreatedAt),
	}
}

func eventToDomain(e sqlc_generated.ThreadEvent) entities.ThreadEvent {
	return entities.ThreadEvent{
		ID:        uint(e.ID),
		ThreadID:  uint(e.ThreadID),
		UserID:    e.UserID,
		EventType: e.EventType,
		Payload:   e.Payload,
		CreatedAt: pgtypeTimestamptzToTime(e.CreatedAt),
	}
}

func profileToDomain(p sqlc_generated.Profile) entities.Profile {
	return entities.Profile{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarUrl,
		CreatedAt:   pgtypeTimestamptzToTime(p.CreatedAt),
	}
}

func sessionToDomain(s sqlc_generated.Session) entities.Session {
	return entities.Session{
		Token:     s.Token,
		UserID:    s.UserID,
		ExpiresAt: pgtypeTimestamptzToTime(s.ExpiresAt),
		CreatedAt: pgtypeTimestamptzToTime(s.CreatedAt),
	}
}
