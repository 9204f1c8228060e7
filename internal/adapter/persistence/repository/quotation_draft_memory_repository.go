package repository

import (
	"context"
	"sync"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"
)

// QuotationDraftMemoryRepository keeps drafts in memory, one lock per draft.
//
// Callers only ever see clones; the stored *Quotation is touched exclusively
// inside Update.
type QuotationDraftMemoryRepository struct {
	mu     sync.Mutex
	drafts map[string]*draftEntry
}

type draftEntry struct {
	mu      sync.Mutex
	q       *entities.Quotation
	removed bool
}

var _ interfaces.IQuotationDraftRepository = (*QuotationDraftMemoryRepository)(nil)

func NewQuotationDraftMemoryRepository() *QuotationDraftMemoryRepository {
	return &QuotationDraftMemoryRepository{drafts: map[string]*draftEntry{}}
}

func (r *QuotationDraftMemoryRepository) Create(_ context.Context, q *entities.Quotation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drafts[q.ID]; ok {
		return ErrDraftAlreadyExists
	}
	r.drafts[q.ID] = &draftEntry{q: q.Clone()}
	return nil
}

func (r *QuotationDraftMemoryRepository) Get(_ context.Context, id string) (*entities.Quotation, error) {
	e := r.entry(id)
	if e == nil {
		return nil, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed {
		return nil, nil
	}
	return e.q.Clone(), nil
}

// Update applies fn to a working copy and stores it only when fn succeeds.
func (r *QuotationDraftMemoryRepository) Update(_ context.Context, id string, fn func(q *entities.Quotation) error) (*entities.Quotation, error) {
	e := r.entry(id)
	if e == nil {
		return nil, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed {
		return nil, nil
	}

	work := e.q.Clone()
	if err := fn(work); err != nil {
		return nil, err
	}
	e.q = work
	return work.Clone(), nil
}

// Take hands fn a copy of the draft and drops the draft once fn succeeds.
// Callers waiting on the same draft see it as missing afterwards.
func (r *QuotationDraftMemoryRepository) Take(_ context.Context, id string, fn func(q *entities.Quotation) error) (*entities.Quotation, error) {
	e := r.entry(id)
	if e == nil {
		return nil, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed {
		return nil, nil
	}

	work := e.q.Clone()
	if err := fn(work); err != nil {
		return nil, err
	}
	r.remove(id, e)
	return work, nil
}

func (r *QuotationDraftMemoryRepository) Delete(_ context.Context, id string) error {
	e := r.entry(id)
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	r.remove(id, e)
	return nil
}

// remove must be called with e.mu held.
func (r *QuotationDraftMemoryRepository) remove(id string, e *draftEntry) {
	e.removed = true
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.drafts[id] == e {
		delete(r.drafts, id)
	}
}

func (r *QuotationDraftMemoryRepository) entry(id string) *draftEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.drafts[id]
}
