package database

import (
	"context"
	"fmt"

	"kidfun/internal/domain/entities"
	"kidfun/internal/infrastructure/database/sqlc_generated"
	"kidfun/internal/ports/output"
)

var _ output.ThreadEventRepository = (*ThreadEventRepository)(nil)

// ThreadEventRepository appends and reads the immutable audit log.
// There is deliberately no update or delete.
type ThreadEventRepository struct {
	q *sqlc_generated.Queries
}

func NewThreadEventRepository(q *sqlc_generated.Queries) *ThreadEventRepository {
	return &ThreadEventRepository{q: q}
}

func (r *ThreadEventRepository) Append(ctx context.Context, event *entities.ThreadEvent) error {
	payload := event.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	row, err := queriesFrom(ctx, r.q).CreateThreadEvent(ctx, sqlc_generated.CreateThreadEventParams{
		ThreadID:  int64(event.ThreadID),
		UserID:    event.UserID,
		EventType: event.EventType,
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("create thread event: %w", err)
	}
	event.ID = uint(row.ID)
	event.CreatedAt = pgtypeTimestamptzToTime(row.CreatedAt)
	return nil
}

func (r *ThreadEventRepository) FindByThreadID(ctx context.Context, threadID uint) ([]entities.ThreadEvent, error) {
	rows, err := queriesFrom(ctx, r.q).GetThreadEventsByThreadID(ctx, int64(threadID))
	if err != nil {
		return nil, fmt.Errorf("get thread events by thread id: %w", err)
	}
	out := make([]entities.ThreadEvent, len(rows))
	for i := range rows {
		out[i] = eventToDomain(rows[i])
	}
	return out, nil
}
