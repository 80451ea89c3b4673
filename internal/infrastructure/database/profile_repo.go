package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"kidfun/internal/domain"
	"kidfun/internal/domain/entities"
	"kidfun/internal/infrastructure/database/sqlc_generated"
	"kidfun/internal/ports/output"
)

var _ output.ProfileRepository = (*ProfileRepository)(nil)

// ProfileRepository reads the profiles and sessions the identity provider
// maintains. All methods are read-only.
type ProfileRepository struct {
	q *sqlc_generated.Queries
}

func NewProfileRepository(q *sqlc_generated.Queries) *ProfileRepository {
	return &ProfileRepository{q: q}
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	row, err := queriesFrom(ctx, r.q).GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("get profile by user id: %w", err)
	}
	p := profileToDomain(row)
	return &p, nil
}

func (r *ProfileRepository) FindByUserIDs(ctx context.Context, userIDs []string) (map[string]entities.Profile, error) {
	out := make(map[string]entities.Profile)
	if len(userIDs) == 0 {
		return out, nil
	}
	rows, err := queriesFrom(ctx, r.q).GetProfilesByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("get profiles by user ids: %w", err)
	}
	for i := range rows {
		out[rows[i].UserID] = profileToDomain(rows[i])
	}
	return out, nil
}

func (r *ProfileRepository) FindSession(ctx context.Context, token string) (*entities.Session, error) {
	row, err := queriesFrom(ctx, r.q).GetSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("get session by token: %w", err)
	}
	s := sessionToDomain(row)
	return &s, nil
}
