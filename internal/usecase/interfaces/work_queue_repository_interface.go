package interfaces

import (
	"context"
	"quotedesk/internal/domain/entities"
)

// IWorkQueueRepository owns the delivery records.
//
//   - Add assigns an id (QT-<year>-<seq>) when the item has none.
//   - GetByID returns a zero item when the id is unknown.
//   - Apply returns entities.ErrWorkItemNotFound for unknown ids.
type IWorkQueueRepository interface {
	Add(ctx context.Context, item entities.WorkQueueItem) (entities.WorkQueueItem, error)
	GetByID(ctx context.Context, id string) (entities.WorkQueueItem, error)
	List(ctx context.Context, filter entities.StatusFilter) ([]entities.WorkQueueItem, error)
	Count(ctx context.Context, filter entities.StatusFilter) (int, error)
	Apply(ctx context.Context, id string, action entities.WorkQueueAction) (entities.WorkQueueItem, error)
}
