package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxRate is the flat tax applied to every quotation subtotal.
var TaxRate = decimal.RequireFromString("0.10")

// Customer holds the free-text contact details typed into the quotation form.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// Quotation is a draft quotation: an ordered, never-empty list of line items
// plus the customer it is addressed to.
//
// The item slice is private so that LineTotal can only change together with
// Quantity or UnitPrice. Callers own the *Quotation they hold; nothing here is
// safe for concurrent use.
type Quotation struct {
	ID        string
	Customer  Customer
	CreatedAt time.Time
	UpdatedAt time.Time

	items []LineItem
	newID func() string
}

// NewQuotation returns a quotation with a single blank row, which is how the
// form starts.
func NewQuotation(id string, now time.Time) *Quotation {
	q := &Quotation{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
		newID:     uuid.NewString,
	}
	q.items = []LineItem{newLineItem(q.newID())}
	return q
}

// Clone returns a deep copy that shares no state with q.
func (q *Quotation) Clone() *Quotation {
	c := *q
	c.items = append([]LineItem(nil), q.items...)
	return &c
}

// Items returns a copy of the current rows in insertion order.
func (q *Quotation) Items() []LineItem {
	return append([]LineItem(nil), q.items...)
}

func (q *Quotation) Len() int {
	return len(q.items)
}

// AddItem appends a blank row (quantity 1, price 0) with a fresh id.
func (q *Quotation) AddItem() LineItem {
	if q.newID == nil {
		q.newID = uuid.NewString
	}
	it := newLineItem(q.newID())
	q.items = append(q.items, it)
	return it
}

// RemoveItem deletes the row with the given id. The last remaining row can not
// be removed; in that case and for unknown ids the rows are left untouched.
func (q *Quotation) RemoveItem(id string) error {
	idx := q.indexOf(id)
	if idx < 0 {
		return ErrLineItemNotFound
	}
	if len(q.items) == 1 {
		return ErrLastLineItem
	}
	q.items = append(q.items[:idx], q.items[idx+1:]...)
	return nil
}

// UpdateItem sets one field from raw form input. Quantity and price edits
// recompute LineTotal before returning.
func (q *Quotation) UpdateItem(id string, field LineItemField, value string) (LineItem, error) {
	switch field {
	case LineItemFieldName:
		return q.RenameItem(id, value)
	case LineItemFieldQuantity:
		return q.SetQuantity(id, ClampQuantity(value))
	case LineItemFieldUnitPrice:
		return q.SetUnitPrice(id, ClampUnitPrice(value))
	}
	return LineItem{}, ErrUnknownLineItemField
}

func (q *Quotation) RenameItem(id, name string) (LineItem, error) {
	return q.mutate(id, func(it *LineItem) {
		it.Name = name
	})
}

func (q *Quotation) SetQuantity(id string, quantity int) (LineItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	return q.mutate(id, func(it *LineItem) {
		it.Quantity = quantity
		it.recalculate()
	})
}

func (q *Quotation) SetUnitPrice(id string, price decimal.Decimal) (LineItem, error) {
	if price.IsNegative() {
		price = decimal.Zero
	}
	return q.mutate(id, func(it *LineItem) {
		it.UnitPrice = price
		it.recalculate()
	})
}

func (q *Quotation) mutate(id string, fn func(it *LineItem)) (LineItem, error) {
	idx := q.indexOf(id)
	if idx < 0 {
		return LineItem{}, ErrLineItemNotFound
	}
	fn(&q.items[idx])
	return q.items[idx], nil
}

func (q *Quotation) indexOf(id string) int {
	for i := range q.items {
		if q.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Subtotal sums LineTotal in collection order.
func (q *Quotation) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range q.items {
		sum = sum.Add(it.LineTotal)
	}
	return sum
}

func (q *Quotation) Tax() decimal.Decimal {
	return q.Subtotal().Mul(TaxRate)
}

func (q *Quotation) Total() decimal.Decimal {
	return q.Subtotal().Add(q.Tax())
}

// QuotationSnapshot is the immutable view handed to collaborators (archive,
// PDF renderer) once a quotation leaves the editor.
type QuotationSnapshot struct {
	ID          string
	Customer    Customer
	Items       []LineItem
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
	SendMethod  SendMethod
	CreatedAt   time.Time
	SubmittedAt time.Time
}

func (q *Quotation) Snapshot(method SendMethod, at time.Time) QuotationSnapshot {
	return QuotationSnapshot{
		ID:          q.ID,
		Customer:    q.Customer,
		Items:       q.Items(),
		Subtotal:    q.Subtotal(),
		Tax:         q.Tax(),
		Total:       q.Total(),
		SendMethod:  method,
		CreatedAt:   q.CreatedAt,
		SubmittedAt: at,
	}
}

// FormatAmount rounds to cents for display only.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
