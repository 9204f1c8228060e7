package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidWorkItemID          = errors.New("invalid work queue item id")
	ErrDeliveryFailed             = errors.New("quotation delivery failed")
	ErrGatewayNotConfigured       = errors.New("delivery gateway not configured")
	ErrObjectStorageNotConfigured = errors.New("object storage not configured")
)

const defaultDeliveryConcurrency = 4

// WorkQueueCounts holds the badge numbers shown on the status tabs.
type WorkQueueCounts struct {
	All      int
	Pending  int
	Sent     int
	Accepted int
	Failed   int
}

// SendPendingResult splits a bulk send by outcome.
type SendPendingResult struct {
	Sent   []entities.WorkQueueItem
	Failed []entities.WorkQueueItem
}

// IWorkQueueUseCase exposes the work queue table actions.
//
//   - "Send" on a Pending row => Send()
//   - "Retry" on a Failed row => Retry()
//   - "Download" on any row => Document()
type IWorkQueueUseCase interface {
	List(ctx context.Context, status string) ([]entities.WorkQueueItem, error)
	Counts(ctx context.Context) (WorkQueueCounts, error)
	GetByID(ctx context.Context, id string) (entities.WorkQueueItem, error)
	Send(ctx context.Context, id string) (entities.WorkQueueItem, error)
	SendPending(ctx context.Context) (SendPendingResult, error)
	Retry(ctx context.Context, id string) (entities.WorkQueueItem, error)
	Accept(ctx context.Context, id string) (entities.WorkQueueItem, error)
	MarkFailed(ctx context.Context, id string) (entities.WorkQueueItem, error)
	Document(ctx context.Context, id string) ([]byte, error)
	PublishDocument(ctx context.Context, id string) (string, error)
	Summary(ctx context.Context) (entities.DashboardSummary, error)
}

type WorkQueueUseCase struct {
	repo        interfaces.IWorkQueueRepository
	gateway     interfaces.IDeliveryGateway
	renderer    interfaces.IDocumentRenderer
	storage     interfaces.IObjectStorage
	settings    interfaces.IBusinessSettingsRepository
	concurrency int
	now         func() time.Time
}

var _ IWorkQueueUseCase = (*WorkQueueUseCase)(nil)

func NewWorkQueueUseCase(
	repo interfaces.IWorkQueueRepository,
	gateway interfaces.IDeliveryGateway,
	renderer interfaces.IDocumentRenderer,
	storage interfaces.IObjectStorage,
	settings interfaces.IBusinessSettingsRepository,
	concurrency int,
) *WorkQueueUseCase {
	if concurrency < 1 {
		concurrency = defaultDeliveryConcurrency
	}
	return &WorkQueueUseCase{
		repo:        repo,
		gateway:     gateway,
		renderer:    renderer,
		storage:     storage,
		settings:    settings,
		concurrency: concurrency,
		now:         time.Now,
	}
}

func (u *WorkQueueUseCase) List(ctx context.Context, status string) ([]entities.WorkQueueItem, error) {
	filter, err := entities.ParseStatusFilter(status)
	if err != nil {
		return nil, err
	}
	return u.repo.List(ctx, filter)
}

func (u *WorkQueueUseCase) Counts(ctx context.Context) (WorkQueueCounts, error) {
	var c WorkQueueCounts
	targets := []struct {
		filter entities.StatusFilter
		dst    *int
	}{
		{entities.StatusFilterAll, &c.All},
		{entities.FilterStatus(entities.WorkQueueStatusPending), &c.Pending},
		{entities.FilterStatus(entities.WorkQueueStatusSent), &c.Sent},
		{entities.FilterStatus(entities.WorkQueueStatusAccepted), &c.Accepted},
		{entities.FilterStatus(entities.WorkQueueStatusFailed), &c.Failed},
	}
	for _, t := range targets {
		n, err := u.repo.Count(ctx, t.filter)
		if err != nil {
			return WorkQueueCounts{}, err
		}
		*t.dst = n
	}
	return c, nil
}

func (u *WorkQueueUseCase) GetByID(ctx context.Context, id string) (entities.WorkQueueItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkQueueItem{}, ErrInvalidWorkItemID
	}
	it, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkQueueItem{}, err
	}
	if it.ID == "" {
		return entities.WorkQueueItem{}, entities.ErrWorkItemNotFound
	}
	return it, nil
}

// Send hands the item to the delivery gateway. A delivery error marks the
// item Failed and is reported as ErrDeliveryFailed. When ctx is done the item
// is left untouched and ctx.Err() is returned.
func (u *WorkQueueUseCase) Send(ctx context.Context, id string) (entities.WorkQueueItem, error) {
	it, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WorkQueueItem{}, err
	}
	if u.gateway == nil {
		return entities.WorkQueueItem{}, ErrGatewayNotConfigured
	}

	if err := ctx.Err(); err != nil {
		return entities.WorkQueueItem{}, err
	}

	log.Printf("[workqueue][usecase] delivering work_item_id=%s method=%s", it.ID, it.SendMethod)
	ref, derr := u.gateway.Deliver(ctx, it)
	// A cancelled request is not a delivery outcome; the item stays as it was.
	if derr != nil && ctx.Err() != nil {
		log.Printf("[workqueue][usecase] delivery interrupted work_item_id=%s err=%v", it.ID, ctx.Err())
		return entities.WorkQueueItem{}, ctx.Err()
	}
	if derr != nil {
		log.Printf("[workqueue][usecase] delivery failed work_item_id=%s err=%v", it.ID, derr)
		failed, err := u.repo.Apply(ctx, it.ID, entities.WorkQueueActionFail)
		if err != nil {
			return entities.WorkQueueItem{}, err
		}
		return failed, fmt.Errorf("%w: %v", ErrDeliveryFailed, derr)
	}

	sent, err := u.repo.Apply(ctx, it.ID, entities.WorkQueueActionSend)
	if err != nil {
		return entities.WorkQueueItem{}, err
	}
	log.Printf("[workqueue][usecase] delivered work_item_id=%s provider_ref=%s", it.ID, ref)
	return sent, nil
}

// SendPending sends every Pending item. Individual delivery failures are
// collected in the result; any other error, including a cancelled ctx, aborts
// the batch and leaves the unsent items Pending.
func (u *WorkQueueUseCase) SendPending(ctx context.Context) (SendPendingResult, error) {
	pending, err := u.repo.List(ctx, entities.FilterStatus(entities.WorkQueueStatusPending))
	if err != nil {
		return SendPendingResult{}, err
	}
	log.Printf("[workqueue][usecase] bulk send start pending=%d concurrency=%d", len(pending), u.concurrency)

	var (
		mu  sync.Mutex
		res SendPendingResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for _, it := range pending {
		id := it.ID
		g.Go(func() error {
			out, err := u.Send(gctx, id)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				res.Sent = append(res.Sent, out)
			case errors.Is(err, ErrDeliveryFailed):
				res.Failed = append(res.Failed, out)
			default:
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("[workqueue][usecase] bulk send aborted err=%v", err)
		return SendPendingResult{}, err
	}
	log.Printf("[workqueue][usecase] bulk send done sent=%d failed=%d", len(res.Sent), len(res.Failed))
	return res, nil
}

func (u *WorkQueueUseCase) Retry(ctx context.Context, id string) (entities.WorkQueueItem, error) {
	return u.apply(ctx, id, entities.WorkQueueActionRetry)
}

func (u *WorkQueueUseCase) Accept(ctx context.Context, id string) (entities.WorkQueueItem, error) {
	return u.apply(ctx, id, entities.WorkQueueActionAccept)
}

func (u *WorkQueueUseCase) MarkFailed(ctx context.Context, id string) (entities.WorkQueueItem, error) {
	return u.apply(ctx, id, entities.WorkQueueActionFail)
}

func (u *WorkQueueUseCase) apply(ctx context.Context, id string, action entities.WorkQueueAction) (entities.WorkQueueItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkQueueItem{}, ErrInvalidWorkItemID
	}
	it, err := u.repo.Apply(ctx, id, action)
	if err != nil {
		log.Printf("[workqueue][usecase] %s failed work_item_id=%s err=%v", action, id, err)
		return entities.WorkQueueItem{}, err
	}
	log.Printf("[workqueue][usecase] %s work_item_id=%s status=%s", action, id, it.Status)
	return it, nil
}

func (u *WorkQueueUseCase) Document(ctx context.Context, id string) ([]byte, error) {
	if u.renderer == nil {
		return nil, ErrRendererNotConfigured
	}
	it, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	business := entities.DefaultBusinessSettings()
	if u.settings != nil {
		if business, err = u.settings.Get(ctx); err != nil {
			return nil, err
		}
	}
	return u.renderer.RenderWorkItem(ctx, it, business)
}

// PublishDocument stores the rendered PDF and returns a time-limited link to it.
func (u *WorkQueueUseCase) PublishDocument(ctx context.Context, id string) (string, error) {
	if u.storage == nil {
		return "", ErrObjectStorageNotConfigured
	}
	pdf, err := u.Document(ctx, id)
	if err != nil {
		return "", err
	}
	object := "documents/" + strings.TrimSpace(id) + ".pdf"
	if err := u.storage.Upload(ctx, object, bytes.NewReader(pdf), int64(len(pdf)), "application/pdf"); err != nil {
		log.Printf("[workqueue][usecase] upload failed object=%s err=%v", object, err)
		return "", err
	}
	return u.storage.PresignedURL(ctx, object)
}

// Summary aggregates every item; revenue periods are relative to the current UTC day.
func (u *WorkQueueUseCase) Summary(ctx context.Context) (entities.DashboardSummary, error) {
	items, err := u.repo.List(ctx, entities.StatusFilterAll)
	if err != nil {
		return entities.DashboardSummary{}, err
	}
	return entities.SummarizeWorkQueue(items, u.now()), nil
}
