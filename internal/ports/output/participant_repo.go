package output

import (
	"context"
	"time"

	"kidfun/internal/domain/entities"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *entities.Participant) error
	FindByThreadID(ctx context.Context, threadID uint) ([]entities.Participant, error)
	FindByThreadIDAndUserID(ctx context.Context, threadID uint, userID string) (*entities.Participant, error)
	UpdateRSVP(ctx context.Context, threadID uint, userID, status string, childrenBringing []string, respondedAt time.Time) error
}
