package interfaces

import (
	"context"
	"quotedesk/internal/domain/entities"
)

// IBusinessSettingsRepository stores the single sender profile.
type IBusinessSettingsRepository interface {
	Get(ctx context.Context) (entities.BusinessSettings, error)
	Save(ctx context.Context, s entities.BusinessSettings) error
}
