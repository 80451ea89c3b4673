package input

import (
	"context"
	"time"

	"kidfun/internal/application"
	"kidfun/internal/domain/entities"
)

// CoordinationUseCase is the full surface adapters call to drive the
// coordination-thread workflow.
type CoordinationUseCase interface {
	CreateThread(ctx context.Context, organizerID, activityName string, inviteUserIDs []string, opts application.CreateThreadOptions) (uint, error)
	ProposeTime(ctx context.Context, threadID uint, proposerID string, date time.Time, notes string) (uint, error)
	AcceptProposal(ctx context.Context, proposalID uint, accepterID string) error
	UpdateRSVP(ctx context.Context, threadID uint, userID, status string, childrenBringing []string) error
	InviteParticipant(ctx context.Context, threadID uint, organizerID, userID string) error
	PostMessage(ctx context.Context, threadID uint, userID, body string) error
	CancelThread(ctx context.Context, threadID uint, userID string) error
	CompleteThread(ctx context.Context, threadID uint, userID string) error
	GetThread(ctx context.Context, threadID uint, userID string) (*application.ThreadView, error)
	ListThreads(ctx context.Context, userID string) ([]application.ThreadView, error)
	GetMyParticipation(ctx context.Context, threadID uint, userID string) (*entities.Participant, error)
}
