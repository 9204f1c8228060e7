package repository

import (
	"context"
	"sync"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"
)

type BusinessSettingsMemoryRepository struct {
	mu       sync.RWMutex
	settings entities.BusinessSettings
}

var _ interfaces.IBusinessSettingsRepository = (*BusinessSettingsMemoryRepository)(nil)

func NewBusinessSettingsMemoryRepository(initial entities.BusinessSettings) *BusinessSettingsMemoryRepository {
	return &BusinessSettingsMemoryRepository{settings: initial}
}

func (r *BusinessSettingsMemoryRepository) Get(_ context.Context) (entities.BusinessSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings, nil
}

func (r *BusinessSettingsMemoryRepository) Save(_ context.Context, s entities.BusinessSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = s
	return nil
}
