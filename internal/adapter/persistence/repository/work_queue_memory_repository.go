package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"
)

// WorkQueueMemoryRepository is the in-process owner of the work queue.
//
// The queue itself is not safe for concurrent use; every access goes through mu.
type WorkQueueMemoryRepository struct {
	mu    sync.RWMutex
	queue *entities.WorkQueue
	now   func() time.Time
}

var _ interfaces.IWorkQueueRepository = (*WorkQueueMemoryRepository)(nil)

func NewWorkQueueMemoryRepository(seed []entities.WorkQueueItem) (*WorkQueueMemoryRepository, error) {
	q, err := entities.NewWorkQueue(seed...)
	if err != nil {
		return nil, err
	}
	return &WorkQueueMemoryRepository{queue: q, now: time.Now}, nil
}

func (r *WorkQueueMemoryRepository) Add(_ context.Context, item entities.WorkQueueItem) (entities.WorkQueueItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.Date.IsZero() {
		item.Date = r.now().UTC()
	}
	if strings.TrimSpace(item.ID) == "" {
		item.ID = r.nextID(item.Date.Year())
	}
	if err := r.queue.Add(item); err != nil {
		return entities.WorkQueueItem{}, err
	}
	return item, nil
}

// nextID continues the QT-<year>-<seq> numbering of existing items.
func (r *WorkQueueMemoryRepository) nextID(year int) string {
	prefix := fmt.Sprintf("QT-%d-", year)
	maxSeq := 0
	for _, it := range r.queue.Items() {
		if !strings.HasPrefix(it.ID, prefix) {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(it.ID, prefix)); err == nil && n > maxSeq {
			maxSeq = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, maxSeq+1)
}

func (r *WorkQueueMemoryRepository) GetByID(_ context.Context, id string) (entities.WorkQueueItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, _ := r.queue.Get(id)
	return it, nil
}

func (r *WorkQueueMemoryRepository) List(_ context.Context, filter entities.StatusFilter) ([]entities.WorkQueueItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.queue.FilterByStatus(filter), nil
}

func (r *WorkQueueMemoryRepository) Count(_ context.Context, filter entities.StatusFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.queue.CountByStatus(filter), nil
}

func (r *WorkQueueMemoryRepository) Apply(_ context.Context, id string, action entities.WorkQueueAction) (entities.WorkQueueItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queue.Apply(id, action)
}
