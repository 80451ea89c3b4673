package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"kidfun/internal/domain"
	"kidfun/internal/domain/entities"
	"kidfun/internal/infrastructure/database/sqlc_generated"
	"kidfun/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

// ParticipantRepository implements output.ParticipantRepository using sqlc + pgx.
type ParticipantRepository struct {
	q *sqlc_generated.Queries
}

// NewParticipantRepository creates a ParticipantRepository.
func NewParticipantRepository(q *sqlc_generated.Queries) *ParticipantRepository {
	return &ParticipantRepository{q: q}
}

func (r *ParticipantRepository) Create(ctx context.Context, participant *entities.Participant) error {
	children := participant.ChildrenBringing
	if children == nil {
		children = []string{}
	}
	row, err := queriesFrom(ctx, r.q).CreateParticipant(ctx, sqlc_generated.CreateParticipantParams{
		ThreadID:         int64(participant.ThreadID),
		UserID:           participant.UserID,
		Role:             participant.Role,
		RsvpStatus:       participant.RSVPStatus,
		ChildrenBringing: children,
		InvitedAt:        timeToPgtypeTimestamptz(participant.InvitedAt),
		RespondedAt:      timeToPgtypeTimestamptz(participant.RespondedAt),
	})
	if err != nil {
		return fmt.Errorf("create participant: %w", err)
	}
	participant.ID = uint(row.ID)
	participant.CreatedAt = pgtypeTimestamptzToTime(row.CreatedAt)
	participant.UpdatedAt = pgtypeTimestamptzToTime(row.UpdatedAt)
	return nil
}

func (r *ParticipantRepository) FindByThreadID(ctx context.Context, threadID uint) ([]entities.Participant, error) {
	rows, err := queriesFrom(ctx, r.q).GetParticipantsByThreadID(ctx, int64(threadID))
	if err != nil {
		return nil, fmt.Errorf("get participants by thread id: %w", err)
	}
	out := make([]entities.Participant, len(rows))
	for i := range rows {
		out[i] = participantToDomain(rows[i])
	}
	return out, nil
}

func (r *ParticipantRepository) FindByThreadIDAndUserID(ctx context.Context, threadID uint, userID string) (*entities.Participant, error) {
	row, err := queriesFrom(ctx, r.q).GetParticipantByThreadIDAndUserID(ctx, sqlc_generated.GetParticipantByThreadIDAndUserIDParams{
		ThreadID: int64(threadID),
		UserID:   userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("get participant by thread id and user id: %w", err)
	}
	p := participantToDomain(row)
	return &p, nil
}

func (r *ParticipantRepository) UpdateRSVP(ctx context.Context, threadID uint, userID, status string, childrenBringing []string, respondedAt time.Time) error {
	if childrenBringing == nil {
		childrenBringing = []string{}
	}
	err := queriesFrom(ctx, r.q).UpdateParticipantRsvp(ctx, sqlc_generated.UpdateParticipantRsvpParams{
		ThreadID:         int64(threadID),
		UserID:           userID,
		RsvpStatus:       status,
		ChildrenBringing: childrenBringing,
		RespondedAt:      timeToPgtypeTimestamptz(respondedAt),
	})
	if err != nil {
		return fmt.Errorf("update participant rsvp: %w", err)
	}
	return nil
}
