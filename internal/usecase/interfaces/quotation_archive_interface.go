package interfaces

import (
	"context"
	"quotedesk/internal/domain/entities"
)

// IQuotationArchive receives a copy of every submitted quotation.
//
// It is write-only: the service never reads quotations back from the archive.
type IQuotationArchive interface {
	Archive(ctx context.Context, snapshot entities.QuotationSnapshot) error
}
