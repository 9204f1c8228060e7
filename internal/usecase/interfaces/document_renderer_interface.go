package interfaces

import (
	"context"
	"quotedesk/internal/domain/entities"
)

// IDocumentRenderer produces the downloadable PDF versions of quotations.
type IDocumentRenderer interface {
	RenderQuotation(ctx context.Context, snapshot entities.QuotationSnapshot, business entities.BusinessSettings) ([]byte, error)
	RenderWorkItem(ctx context.Context, item entities.WorkQueueItem, business entities.BusinessSettings) ([]byte, error)
}
