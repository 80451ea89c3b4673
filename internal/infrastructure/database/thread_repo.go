package database

import (
	"context"
	"fmt"
	"time"

	"kidfun/internal/domain/entities"
	"kidfun/internal/infrastructure/database/sqlc_generated"
	"kidfun/internal/ports/output"
)

var _ output.ThreadRepository = (*ThreadRepository)(nil)

type ThreadRepository struct {
	q *sqlc_generated.Queries
}

func NewThreadRepository(q *sqlc_generated.Queries) *ThreadRepository {
	return &ThreadRepository{q: q}
}

func (r *ThreadRepository) Create(ctx context.Context, thread *entities.Thread) error {
	row, err := queriesFrom(ctx, r.q).CreateThread(ctx, sqlc_generated.CreateThreadParams{
		CreatedBy:    thread.CreatedBy,
		ActivityName: thread.ActivityName,
		ProviderID:   thread.ProviderID,
		ProviderName: thread.ProviderName,
		ProviderUrl:  thread.ProviderURL,
		Status:       thread.Status,
		Location:     thread.Location,
		Notes:        thread.Notes,
	})
	if err != nil {
		return fmt.Errorf("create thread: %w", err)
	}
	thread.ID = uint(row.ID)
	thread.CreatedAt = pgtypeTimestamptzToTime(row.CreatedAt)
	thread.UpdatedAt = pgtypeTimestamptzToTime(row.UpdatedAt)
	return nil
}

func (r *ThreadRepository) FindByID(ctx context.Context, id uint) (*entities.Thread, error) {
	row, err := queriesFrom(ctx, r.q).GetThreadByID(ctx, int64(id))
	if err != nil {
		return nil, fmt.Errorf("get thread by id: %w", err)
	}
	t := threadToDomain(row)
	return &t, nil
}

func (r *ThreadRepository) FindByUserID(ctx context.Context, userID string) ([]entities.Thread, error) {
	rows, err := queriesFrom(ctx, r.q).GetThreadsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get threads by user id: %w", err)
	}
	out := make([]entities.Thread, len(rows))
	for i := range rows {
		out[i] = threadToDomain(rows[i])
	}
	return out, nil
}

func (r *ThreadRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	err := queriesFrom(ctx, r.q).UpdateThreadStatus(ctx, sqlc_generated.UpdateThreadStatusParams{
		ID:     int64(id),
		Status: status,
	})
	if err != nil {
		return fmt.Errorf("update thread status: %w", err)
	}
	return nil
}

func (r *ThreadRepository) UpdateSchedule(ctx context.Context, id uint, status string, scheduledDate time.Time) error {
	err := queriesFrom(ctx, r.q).UpdateThreadSchedule(ctx, sqlc_generated.UpdateThreadScheduleParams{
		ID:            int64(id),
		Status:        status,
		ScheduledDate: timeToPgtypeTimestamptz(scheduledDate),
	})
	if err != nil {
		return fmt.Errorf("update thread schedule: %w", err)
	}
	return nil
}
