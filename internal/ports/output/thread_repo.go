package output

import (
	"context"
	"time"

	"kidfun/internal/domain/entities"
)

type ThreadRepository interface {
	Create(ctx context.Context, thread *entities.Thread) error
	FindByID(ctx context.Context, id uint) (*entities.Thread, error)
	FindByUserID(ctx context.Context, userID string) ([]entities.Thread, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	UpdateSchedule(ctx context.Context, id uint, status string, scheduledDate time.Time) error
}
