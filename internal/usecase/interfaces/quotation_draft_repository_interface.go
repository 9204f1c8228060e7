package interfaces

import (
	"context"
	"quotedesk/internal/domain/entities"
)

// IQuotationDraftRepository keeps quotations while they are being edited.
//
// Get and Update return a nil quotation (and nil error) when the draft does not
// exist. Update runs fn on the stored quotation while holding that draft
// exclusively; when fn fails the stored draft is left as it was.
//
// Take runs fn under the same lock and removes the draft when fn succeeds, so
// a draft is consumed at most once.
type IQuotationDraftRepository interface {
	Create(ctx context.Context, q *entities.Quotation) error
	Get(ctx context.Context, id string) (*entities.Quotation, error)
	Update(ctx context.Context, id string, fn func(q *entities.Quotation) error) (*entities.Quotation, error)
	Take(ctx context.Context, id string, fn func(q *entities.Quotation) error) (*entities.Quotation, error)
	Delete(ctx context.Context, id string) error
}
