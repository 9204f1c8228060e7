package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"quotedesk/internal/adapter/persistence/repository"
	"quotedesk/internal/domain/entities"
	mock_interfaces "quotedesk/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 2, 22, 10, 0, 0, 0, time.UTC)

type quotationMocks struct {
	drafts   *mock_interfaces.MockIQuotationDraftRepository
	queue    *mock_interfaces.MockIWorkQueueRepository
	archive  *mock_interfaces.MockIQuotationArchive
	renderer *mock_interfaces.MockIDocumentRenderer
	settings *mock_interfaces.MockIBusinessSettingsRepository
}

func newQuotationUseCaseForTest(t *testing.T) (*QuotationUseCase, quotationMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := quotationMocks{
		drafts:   mock_interfaces.NewMockIQuotationDraftRepository(ctrl),
		queue:    mock_interfaces.NewMockIWorkQueueRepository(ctrl),
		archive:  mock_interfaces.NewMockIQuotationArchive(ctrl),
		renderer: mock_interfaces.NewMockIDocumentRenderer(ctrl),
		settings: mock_interfaces.NewMockIBusinessSettingsRepository(ctrl),
	}
	uc := NewQuotationUseCase(m.drafts, m.queue, m.archive, m.renderer, m.settings)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

// applyTo makes the draft repository mock run the update function on q.
func applyTo(q *entities.Quotation) func(context.Context, string, func(*entities.Quotation) error) (*entities.Quotation, error) {
	return func(_ context.Context, _ string, fn func(*entities.Quotation) error) (*entities.Quotation, error) {
		work := q.Clone()
		if err := fn(work); err != nil {
			return nil, err
		}
		return work, nil
	}
}

func TestQuotationUseCase_CreateDraft(t *testing.T) {
	uc, m := newQuotationUseCaseForTest(t)
	m.drafts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q *entities.Quotation) error {
		if q.ID == "" || q.Len() != 1 || !q.CreatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected draft: %+v", q)
		}
		return nil
	})

	q, err := uc.CreateDraft(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.Total().IsZero() {
		t.Fatalf("new draft total must be zero")
	}
}

func TestQuotationUseCase_GetDraft(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil, nil, nil)
		if _, err := uc.GetDraft(context.Background(), "  "); !errors.Is(err, ErrInvalidQuotationID) {
			t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.drafts.EXPECT().Get(gomock.Any(), "q-1").Return(nil, nil)
		if _, err := uc.GetDraft(context.Background(), " q-1 "); !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.drafts.EXPECT().Get(gomock.Any(), "q-1").Return(nil, errors.New("db"))
		if _, err := uc.GetDraft(context.Background(), "q-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuotationUseCase_DiscardDraft(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.drafts.EXPECT().Get(gomock.Any(), "q-1").Return(nil, nil)
		if err := uc.DiscardDraft(context.Background(), "q-1"); !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.drafts.EXPECT().Get(gomock.Any(), "q-1").Return(entities.NewQuotation("q-1", fixedNow), nil)
		m.drafts.EXPECT().Delete(gomock.Any(), "q-1").Return(nil)
		if err := uc.DiscardDraft(context.Background(), " q-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuotationUseCase_Edits(t *testing.T) {
	base := entities.NewQuotation("q-1", fixedNow.Add(-time.Hour))
	itemID := base.Items()[0].ID

	t.Run("set customer", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.drafts.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(applyTo(base))

		q, err := uc.SetCustomer(context.Background(), "q-1", entities.Customer{Name: "Emily Davis"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Customer.Name != "Emily Davis" || !q.UpdatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected draft: %+v", q)
		}
	})

	t.Run("add item", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.drafts.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(applyTo(base))

		q, err := uc.AddItem(context.Background(), "q-1")
		if err != nil || q.Len() != 2 {
			t.Fatalf("unexpected result: %v %v", q, err)
		}
	})

	t.Run("update quantity recomputes totals", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		priced := base.Clone()
		priced.SetUnitPrice(itemID, decimal.NewFromInt(10))
		m.drafts.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(applyTo(priced))

		q, err := uc.UpdateItem(context.Background(), "q-1", itemID, entities.LineItemFieldQuantity, "3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q.Subtotal().Equal(decimal.NewFromInt(30)) || !q.Total().Equal(decimal.NewFromInt(33)) {
			t.Fatalf("unexpected totals: %s %s", q.Subtotal(), q.Total())
		}
	})

	t.Run("remove last item", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.drafts.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(applyTo(base))

		if _, err := uc.RemoveItem(context.Background(), "q-1", itemID); !errors.Is(err, entities.ErrLastLineItem) {
			t.Fatalf("expected ErrLastLineItem, got %v", err)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.drafts.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(applyTo(base))

		if _, err := uc.UpdateItem(context.Background(), "q-1", "nope", entities.LineItemFieldName, "x"); !errors.Is(err, entities.ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})

	t.Run("blank item id", func(t *testing.T) {
		uc, _ := newQuotationUseCaseForTest(t)
		if _, err := uc.RemoveItem(context.Background(), "q-1", " "); !errors.Is(err, ErrInvalidLineItemID) {
			t.Fatalf("expected ErrInvalidLineItemID, got %v", err)
		}
	})

	t.Run("missing draft", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.drafts.EXPECT().Update(gomock.Any(), "q-2", gomock.Any()).Return(nil, nil)

		if _, err := uc.AddItem(context.Background(), "q-2"); !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})
}

func TestQuotationUseCase_Submit(t *testing.T) {
	draft := func() *entities.Quotation {
		q := entities.NewQuotation("q-1", fixedNow.Add(-time.Hour))
		q.Customer = entities.Customer{Name: "Lisa Anderson"}
		a := q.Items()[0].ID
		b := q.AddItem().ID
		q.SetQuantity(a, 2)
		q.SetUnitPrice(a, decimal.NewFromInt(10))
		q.SetUnitPrice(b, decimal.NewFromInt(5))
		return q
	}

	t.Run("invalid method", func(t *testing.T) {
		uc, _ := newQuotationUseCaseForTest(t)
		if _, err := uc.Submit(context.Background(), "q-1", entities.SendMethod("fax")); !errors.Is(err, entities.ErrInvalidSendMethod) {
			t.Fatalf("expected ErrInvalidSendMethod, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.drafts.EXPECT().Take(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(applyTo(draft()))
		gomock.InOrder(
			m.archive.EXPECT().Archive(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.QuotationSnapshot) error {
				if s.ID != "q-1" || !s.Total.Equal(decimal.RequireFromString("27.5")) || s.SendMethod != entities.SendMethodWhatsApp {
					t.Fatalf("unexpected snapshot: %+v", s)
				}
				return nil
			}),
			m.queue.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, it entities.WorkQueueItem) (entities.WorkQueueItem, error) {
				if it.Status != entities.WorkQueueStatusPending || it.CustomerName != "Lisa Anderson" || !it.Amount.Equal(decimal.RequireFromString("27.5")) {
					t.Fatalf("unexpected work item: %+v", it)
				}
				it.ID = "QT-2024-009"
				return it, nil
			}),
		)

		it, err := uc.Submit(context.Background(), "q-1", entities.SendMethodWhatsApp)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if it.ID != "QT-2024-009" || it.SendMethod != entities.SendMethodWhatsApp {
			t.Fatalf("unexpected item: %+v", it)
		}
	})

	t.Run("archive failure keeps draft", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.drafts.EXPECT().Take(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(applyTo(draft()))
		m.archive.EXPECT().Archive(gomock.Any(), gomock.Any()).Return(errors.New("ddb"))

		if _, err := uc.Submit(context.Background(), "q-1", entities.SendMethodEmail); err == nil || err.Error() != "ddb" {
			t.Fatalf("expected ddb error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.drafts.EXPECT().Take(gomock.Any(), "q-1", gomock.Any()).Return(nil, nil)
		if _, err := uc.Submit(context.Background(), "q-1", entities.SendMethodEmail); !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})
}

type slowArchive struct {
	delay time.Duration
}

func (a slowArchive) Archive(_ context.Context, _ entities.QuotationSnapshot) error {
	time.Sleep(a.delay)
	return nil
}

func TestQuotationUseCase_SubmitConsumesDraftOnce(t *testing.T) {
	drafts := repository.NewQuotationDraftMemoryRepository()
	queue, err := repository.NewWorkQueueMemoryRepository(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc := NewQuotationUseCase(drafts, queue, slowArchive{delay: 5 * time.Millisecond}, nil, nil)

	q, err := uc.CreateDraft(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const submitters = 4
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok       int
		notFound int
	)
	for i := 0; i < submitters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Submit(context.Background(), q.ID, entities.SendMethodEmail)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, ErrQuotationNotFound):
				notFound++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if ok != 1 || notFound != submitters-1 {
		t.Fatalf("expected one submit to win, got ok=%d notFound=%d", ok, notFound)
	}
	if n, _ := queue.Count(context.Background(), entities.StatusFilterAll); n != 1 {
		t.Fatalf("expected one queued item, got %d", n)
	}
}

// gateArchive blocks Archive until release is closed.
type gateArchive struct {
	started chan struct{}
	release chan struct{}
}

func (a gateArchive) Archive(_ context.Context, _ entities.QuotationSnapshot) error {
	close(a.started)
	<-a.release
	return nil
}

func TestQuotationUseCase_EditDuringSubmit(t *testing.T) {
	drafts := repository.NewQuotationDraftMemoryRepository()
	queue, _ := repository.NewWorkQueueMemoryRepository(nil)
	gate := gateArchive{started: make(chan struct{}), release: make(chan struct{})}
	uc := NewQuotationUseCase(drafts, queue, gate, nil, nil)

	q, _ := uc.CreateDraft(context.Background())
	submitted := make(chan error, 1)
	go func() {
		_, err := uc.Submit(context.Background(), q.ID, entities.SendMethodEmail)
		submitted <- err
	}()
	<-gate.started

	edited := make(chan error, 1)
	go func() {
		_, err := uc.AddItem(context.Background(), q.ID)
		edited <- err
	}()
	close(gate.release)

	if err := <-submitted; err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}
	if err := <-edited; !errors.Is(err, ErrQuotationNotFound) {
		t.Fatalf("edit racing a submit must report the draft as gone, got %v", err)
	}
	if n, _ := queue.Count(context.Background(), entities.StatusFilterAll); n != 1 {
		t.Fatalf("expected one queued item, got %d", n)
	}
}

func TestQuotationUseCase_RenderPDF(t *testing.T) {
	t.Run("renderer missing", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil, nil, nil)
		if _, err := uc.RenderPDF(context.Background(), "q-1"); !errors.Is(err, ErrRendererNotConfigured) {
			t.Fatalf("expected ErrRendererNotConfigured, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		business := entities.DefaultBusinessSettings()
		business.Name = "Acme"
		m.drafts.EXPECT().Get(gomock.Any(), "q-1").Return(entities.NewQuotation("q-1", fixedNow), nil)
		m.settings.EXPECT().Get(gomock.Any()).Return(business, nil)
		m.renderer.EXPECT().RenderQuotation(gomock.Any(), gomock.Any(), business).Return([]byte("%PDF"), nil)

		pdf, err := uc.RenderPDF(context.Background(), "q-1")
		if err != nil || string(pdf) != "%PDF" {
			t.Fatalf("unexpected result: %q %v", pdf, err)
		}
	})
}
