package output

import (
	"context"

	"kidfun/internal/domain/entities"
)

type ThreadEventRepository interface {
	Append(ctx context.Context, event *entities.ThreadEvent) error
	FindByThreadID(ctx context.Context, threadID uint) ([]entities.ThreadEvent, error)
}
