package usecase

import (
	"context"
	"errors"
	"log"
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrQuotationNotFound     = errors.New("quotation not found")
	ErrInvalidQuotationID    = errors.New("invalid quotation id")
	ErrInvalidLineItemID     = errors.New("invalid line item id")
	ErrRendererNotConfigured = errors.New("document renderer not configured")
)

// IQuotationUseCase drives the quotation form.
//
// A draft lives in memory until it is submitted; submitting freezes it into a
// Pending work queue item carrying the draft total.
type IQuotationUseCase interface {
	CreateDraft(ctx context.Context) (*entities.Quotation, error)
	GetDraft(ctx context.Context, id string) (*entities.Quotation, error)
	DiscardDraft(ctx context.Context, id string) error
	SetCustomer(ctx context.Context, id string, customer entities.Customer) (*entities.Quotation, error)
	AddItem(ctx context.Context, id string) (*entities.Quotation, error)
	RemoveItem(ctx context.Context, id, itemID string) (*entities.Quotation, error)
	UpdateItem(ctx context.Context, id, itemID string, field entities.LineItemField, value string) (*entities.Quotation, error)
	Submit(ctx context.Context, id string, method entities.SendMethod) (entities.WorkQueueItem, error)
	RenderPDF(ctx context.Context, id string) ([]byte, error)
}

type QuotationUseCase struct {
	drafts   interfaces.IQuotationDraftRepository
	queue    interfaces.IWorkQueueRepository
	archive  interfaces.IQuotationArchive
	renderer interfaces.IDocumentRenderer
	settings interfaces.IBusinessSettingsRepository
	now      func() time.Time
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	drafts interfaces.IQuotationDraftRepository,
	queue interfaces.IWorkQueueRepository,
	archive interfaces.IQuotationArchive,
	renderer interfaces.IDocumentRenderer,
	settings interfaces.IBusinessSettingsRepository,
) *QuotationUseCase {
	return &QuotationUseCase{
		drafts:   drafts,
		queue:    queue,
		archive:  archive,
		renderer: renderer,
		settings: settings,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *QuotationUseCase) CreateDraft(ctx context.Context) (*entities.Quotation, error) {
	q := entities.NewQuotation(uuid.NewString(), u.now())
	if err := u.drafts.Create(ctx, q); err != nil {
		log.Printf("[quotation][usecase] create draft failed err=%v", err)
		return nil, err
	}
	log.Printf("[quotation][usecase] draft created quotation_id=%s", q.ID)
	return q, nil
}

func (u *QuotationUseCase) GetDraft(ctx context.Context, id string) (*entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidQuotationID
	}
	q, err := u.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuotationNotFound
	}
	return q, nil
}

// DiscardDraft drops a draft without queueing it.
func (u *QuotationUseCase) DiscardDraft(ctx context.Context, id string) error {
	if _, err := u.GetDraft(ctx, id); err != nil {
		return err
	}
	if err := u.drafts.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return err
	}
	log.Printf("[quotation][usecase] draft discarded quotation_id=%s", strings.TrimSpace(id))
	return nil
}

func (u *QuotationUseCase) SetCustomer(ctx context.Context, id string, customer entities.Customer) (*entities.Quotation, error) {
	return u.update(ctx, id, func(q *entities.Quotation) error {
		q.Customer = customer
		return nil
	})
}

func (u *QuotationUseCase) AddItem(ctx context.Context, id string) (*entities.Quotation, error) {
	return u.update(ctx, id, func(q *entities.Quotation) error {
		q.AddItem()
		return nil
	})
}

func (u *QuotationUseCase) RemoveItem(ctx context.Context, id, itemID string) (*entities.Quotation, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, ErrInvalidLineItemID
	}
	return u.update(ctx, id, func(q *entities.Quotation) error {
		return q.RemoveItem(itemID)
	})
}

func (u *QuotationUseCase) UpdateItem(ctx context.Context, id, itemID string, field entities.LineItemField, value string) (*entities.Quotation, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, ErrInvalidLineItemID
	}
	return u.update(ctx, id, func(q *entities.Quotation) error {
		_, err := q.UpdateItem(itemID, field, value)
		return err
	})
}

func (u *QuotationUseCase) update(ctx context.Context, id string, fn func(q *entities.Quotation) error) (*entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidQuotationID
	}
	q, err := u.drafts.Update(ctx, id, func(q *entities.Quotation) error {
		if err := fn(q); err != nil {
			return err
		}
		q.UpdatedAt = u.now()
		return nil
	})
	if err != nil {
		log.Printf("[quotation][usecase] update rejected quotation_id=%s err=%v", id, err)
		return nil, err
	}
	if q == nil {
		return nil, ErrQuotationNotFound
	}
	return q, nil
}

// Submit archives the draft, queues it for delivery and discards the draft,
// all while holding the draft: a second Submit of the same id finds nothing,
// and edits made meanwhile wait for the outcome. When archiving or queueing
// fails nothing is consumed and the draft is kept.
func (u *QuotationUseCase) Submit(ctx context.Context, id string, method entities.SendMethod) (entities.WorkQueueItem, error) {
	method, err := entities.ParseSendMethod(string(method))
	if err != nil {
		return entities.WorkQueueItem{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkQueueItem{}, ErrInvalidQuotationID
	}

	var item entities.WorkQueueItem
	q, err := u.drafts.Take(ctx, id, func(q *entities.Quotation) error {
		now := u.now()
		snap := q.Snapshot(method, now)
		if u.archive != nil {
			if err := u.archive.Archive(ctx, snap); err != nil {
				log.Printf("[quotation][usecase] archive failed quotation_id=%s err=%v", q.ID, err)
				return err
			}
		}

		queued, err := u.queue.Add(ctx, entities.WorkQueueItem{
			CustomerName: q.Customer.Name,
			Amount:       snap.Total,
			SendMethod:   method,
			Status:       entities.WorkQueueStatusPending,
			Date:         now,
		})
		if err != nil {
			log.Printf("[quotation][usecase] enqueue failed quotation_id=%s err=%v", q.ID, err)
			return err
		}
		item = queued
		return nil
	})
	if err != nil {
		return entities.WorkQueueItem{}, err
	}
	if q == nil {
		return entities.WorkQueueItem{}, ErrQuotationNotFound
	}

	log.Printf("[quotation][usecase] submitted quotation_id=%s work_item_id=%s method=%s total=%s", q.ID, item.ID, method, entities.FormatAmount(item.Amount))
	return item, nil
}

func (u *QuotationUseCase) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	if u.renderer == nil {
		return nil, ErrRendererNotConfigured
	}
	q, err := u.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	business := entities.DefaultBusinessSettings()
	if u.settings != nil {
		if business, err = u.settings.Get(ctx); err != nil {
			return nil, err
		}
	}
	return u.renderer.RenderQuotation(ctx, q.Snapshot("", u.now()), business)
}
