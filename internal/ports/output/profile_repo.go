package output

import (
	"context"

	"kidfun/internal/domain/entities"
)

// ProfileRepository reads user records mirrored from the identity provider.
// The coordinator never writes them.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*entities.Profile, error)
	FindByUserIDs(ctx context.Context, userIDs []string) (map[string]entities.Profile, error)
	FindSession(ctx context.Context, token string) (*entities.Session, error)
}
