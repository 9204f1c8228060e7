package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertConsistent(t *testing.T, q *Quotation) {
	t.Helper()
	for _, it := range q.Items() {
		want := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		if !it.LineTotal.Equal(want) {
			t.Fatalf("stale line total for %s: got %s want %s", it.ID, it.LineTotal, want)
		}
	}
}

func TestQuotation_NewStartsWithOneBlankItem(t *testing.T) {
	q := NewQuotation("q-1", time.Now())
	items := q.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	it := items[0]
	if it.ID == "" || it.Quantity != 1 || !it.UnitPrice.IsZero() || !it.LineTotal.IsZero() {
		t.Fatalf("unexpected initial item: %+v", it)
	}
}

func TestQuotation_AddItem(t *testing.T) {
	q := NewQuotation("q-1", time.Now())
	a := q.AddItem()
	b := q.AddItem()
	if a.ID == b.ID || a.ID == q.Items()[0].ID {
		t.Fatalf("expected unique ids")
	}
	if q.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", q.Len())
	}
	if q.Items()[2].ID != b.ID {
		t.Fatalf("expected insertion order to be preserved")
	}
	if a.Quantity != 1 || !a.UnitPrice.IsZero() || !a.LineTotal.IsZero() {
		t.Fatalf("unexpected new item: %+v", a)
	}
}

func TestQuotation_RemoveItem(t *testing.T) {
	t.Run("last item is rejected", func(t *testing.T) {
		q := NewQuotation("q-1", time.Now())
		only := q.Items()[0]
		if _, err := q.UpdateItem(only.ID, LineItemFieldName, "Widget"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := q.RemoveItem(only.ID)
		if !errors.Is(err, ErrLastLineItem) {
			t.Fatalf("expected ErrLastLineItem, got %v", err)
		}
		if q.Len() != 1 || q.Items()[0].Name != "Widget" {
			t.Fatalf("collection changed: %+v", q.Items())
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		q := NewQuotation("q-1", time.Now())
		q.AddItem()
		if err := q.RemoveItem("nope"); !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
		if q.Len() != 2 {
			t.Fatalf("collection changed")
		}
	})

	t.Run("removes and keeps order", func(t *testing.T) {
		q := NewQuotation("q-1", time.Now())
		first := q.Items()[0]
		mid := q.AddItem()
		last := q.AddItem()
		if err := q.RemoveItem(mid.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items := q.Items()
		if len(items) != 2 || items[0].ID != first.ID || items[1].ID != last.ID {
			t.Fatalf("unexpected items: %+v", items)
		}
	})
}

func TestQuotation_UpdateItemKeepsLineTotalConsistent(t *testing.T) {
	q := NewQuotation("q-1", time.Now())
	id := q.Items()[0].ID
	other := q.AddItem().ID

	steps := []struct {
		id    string
		field LineItemField
		value string
	}{
		{id, LineItemFieldQuantity, "3"},
		{id, LineItemFieldUnitPrice, "19.99"},
		{other, LineItemFieldUnitPrice, "0.1"},
		{other, LineItemFieldQuantity, "7"},
		{id, LineItemFieldQuantity, "abc"},
		{id, LineItemFieldUnitPrice, "-4"},
		{id, LineItemFieldUnitPrice, "12.345"},
		{other, LineItemFieldName, "Labour"},
		{id, LineItemFieldQuantity, "0"},
	}
	for _, s := range steps {
		if _, err := q.UpdateItem(s.id, s.field, s.value); err != nil {
			t.Fatalf("update %s=%s: %v", s.field, s.value, err)
		}
		assertConsistent(t, q)
	}

	items := q.Items()
	if items[0].Quantity != 1 || !items[0].UnitPrice.Equal(dec("12.345")) {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].Name != "Labour" || !items[1].LineTotal.Equal(dec("0.7")) {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}

func TestQuotation_UpdateItemErrors(t *testing.T) {
	q := NewQuotation("q-1", time.Now())
	id := q.Items()[0].ID

	if _, err := q.UpdateItem("missing", LineItemFieldQuantity, "2"); !errors.Is(err, ErrLineItemNotFound) {
		t.Fatalf("expected ErrLineItemNotFound, got %v", err)
	}
	if _, err := q.UpdateItem(id, LineItemField("total"), "2"); !errors.Is(err, ErrUnknownLineItemField) {
		t.Fatalf("expected ErrUnknownLineItemField, got %v", err)
	}
	if q.Items()[0].Quantity != 1 {
		t.Fatalf("failed update must not touch the item")
	}
}

func TestQuotation_Totals(t *testing.T) {
	t.Run("reference scenario", func(t *testing.T) {
		q := NewQuotation("q-1", time.Now())
		a := q.Items()[0].ID
		b := q.AddItem().ID
		q.SetQuantity(a, 2)
		q.SetUnitPrice(a, dec("10"))
		q.SetUnitPrice(b, dec("5"))

		if !q.Subtotal().Equal(dec("25")) {
			t.Fatalf("subtotal: got %s", q.Subtotal())
		}
		if !q.Tax().Equal(dec("2.5")) {
			t.Fatalf("tax: got %s", q.Tax())
		}
		if !q.Total().Equal(dec("27.5")) {
			t.Fatalf("total: got %s", q.Total())
		}
	})

	cases := []struct {
		subtotal string
		tax      string
	}{
		{"0", "0"},
		{"100", "10"},
		{"33.33", "3.333"},
	}
	for _, tc := range cases {
		t.Run("tax of "+tc.subtotal, func(t *testing.T) {
			q := NewQuotation("q-1", time.Now())
			q.SetUnitPrice(q.Items()[0].ID, dec(tc.subtotal))

			if !q.Subtotal().Equal(dec(tc.subtotal)) {
				t.Fatalf("subtotal: got %s", q.Subtotal())
			}
			if !q.Tax().Equal(dec(tc.tax)) {
				t.Fatalf("tax: got %s want %s", q.Tax(), tc.tax)
			}
			if !q.Total().Equal(q.Subtotal().Add(q.Tax())) {
				t.Fatalf("total must equal subtotal + tax")
			}
		})
	}

	t.Run("no rounding drift over repeated edits", func(t *testing.T) {
		q := NewQuotation("q-1", time.Now())
		id := q.Items()[0].ID
		for i := 0; i < 1000; i++ {
			q.SetUnitPrice(id, dec("0.01"))
			q.SetQuantity(id, 3)
			q.SetUnitPrice(id, dec("0.333"))
		}
		if !q.Subtotal().Equal(dec("0.999")) {
			t.Fatalf("subtotal drifted: %s", q.Subtotal())
		}
		if FormatAmount(q.Total()) != "1.10" {
			t.Fatalf("unexpected formatted total: %s", FormatAmount(q.Total()))
		}
	})
}

func TestQuotation_SubtotalIgnoresOrder(t *testing.T) {
	prices := []string{"1.10", "2.20", "3.30"}

	forward := NewQuotation("a", time.Now())
	backward := NewQuotation("b", time.Now())
	forward.SetUnitPrice(forward.Items()[0].ID, dec(prices[0]))
	backward.SetUnitPrice(backward.Items()[0].ID, dec(prices[2]))
	for i := 1; i < 3; i++ {
		forward.SetUnitPrice(forward.AddItem().ID, dec(prices[i]))
		backward.SetUnitPrice(backward.AddItem().ID, dec(prices[2-i]))
	}
	if !forward.Subtotal().Equal(backward.Subtotal()) {
		t.Fatalf("subtotals differ: %s vs %s", forward.Subtotal(), backward.Subtotal())
	}
}

func TestQuotation_CloneIsIndependent(t *testing.T) {
	q := NewQuotation("q-1", time.Now())
	c := q.Clone()
	c.AddItem()
	c.SetQuantity(c.Items()[0].ID, 5)
	if q.Len() != 1 || q.Items()[0].Quantity != 1 {
		t.Fatalf("clone shares state with original")
	}
}

func TestQuotation_Snapshot(t *testing.T) {
	now := time.Now().UTC()
	q := NewQuotation("q-1", now)
	q.Customer = Customer{Name: "John Smith"}
	q.SetUnitPrice(q.Items()[0].ID, dec("40"))

	snap := q.Snapshot(SendMethodWhatsApp, now)
	if snap.ID != "q-1" || snap.Customer.Name != "John Smith" || snap.SendMethod != SendMethodWhatsApp {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if !snap.Total.Equal(dec("44")) || len(snap.Items) != 1 {
		t.Fatalf("unexpected snapshot totals: %+v", snap)
	}
}

func TestClampHelpers(t *testing.T) {
	qty := map[string]int{
		"2":                       2,
		" 4 ":                     4,
		"":                        1,
		"x":                       1,
		"0":                       1,
		"-3":                      1,
		"2.7":                     2,
		"+5":                      5,
		"12abc":                   12,
		"1e3":                     1,
		"007":                     7,
		"2000000":                 MaxQuantity,
		"99999999999999999999999": MaxQuantity,
	}
	for in, want := range qty {
		if got := ClampQuantity(in); got != want {
			t.Fatalf("ClampQuantity(%q) = %d, want %d", in, got, want)
		}
	}

	price := map[string]string{"10": "10", "0.01": "0.01", "": "0", "abc": "0", "-1": "0"}
	for in, want := range price {
		if got := ClampUnitPrice(in); !got.Equal(dec(want)) {
			t.Fatalf("ClampUnitPrice(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseLineItemField(t *testing.T) {
	cases := map[string]LineItemField{
		"name":       LineItemFieldName,
		"Quantity":   LineItemFieldQuantity,
		"unitPrice":  LineItemFieldUnitPrice,
		"unit_price": LineItemFieldUnitPrice,
		"price":      LineItemFieldUnitPrice,
	}
	for in, want := range cases {
		got, err := ParseLineItemField(in)
		if err != nil || got != want {
			t.Fatalf("ParseLineItemField(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseLineItemField("total"); !errors.Is(err, ErrUnknownLineItemField) {
		t.Fatalf("expected ErrUnknownLineItemField, got %v", err)
	}
}
