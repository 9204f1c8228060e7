package entities

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrLineItemNotFound     = errors.New("line item not found")
	ErrLastLineItem         = errors.New("quotation must keep at least one line item")
	ErrUnknownLineItemField = errors.New("unknown line item field")
)

// LineItemField names the editable columns of a quotation row.
type LineItemField string

const (
	LineItemFieldName      LineItemField = "name"
	LineItemFieldQuantity  LineItemField = "quantity"
	LineItemFieldUnitPrice LineItemField = "unitPrice"
)

// ParseLineItemField accepts the JSON spellings used by the dashboard
// ("price", "unit_price") as aliases of unitPrice.
func ParseLineItemField(s string) (LineItemField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return LineItemFieldName, nil
	case "quantity", "qty":
		return LineItemFieldQuantity, nil
	case "unitprice", "unit_price", "price":
		return LineItemFieldUnitPrice, nil
	}
	return "", ErrUnknownLineItemField
}

// LineItem is one row of a quotation.
//
// LineTotal is derived from Quantity * UnitPrice and is only written by the
// Quotation that owns the item.
type LineItem struct {
	ID        string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

func newLineItem(id string) LineItem {
	return LineItem{
		ID:        id,
		Quantity:  1,
		UnitPrice: decimal.Zero,
		LineTotal: decimal.Zero,
	}
}

func (it *LineItem) recalculate() {
	it.LineTotal = it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// MaxQuantity caps a single row so that quantity * price stays well inside int64.
const MaxQuantity = 1_000_000

// ClampQuantity reads quantity input the way the quotation form does: an
// optional sign followed by leading digits, ignoring whatever follows ("2.7"
// and "2abc" are 2, "1e3" is 1). No digits, or a value below 1, gives 1;
// values above MaxQuantity are capped.
func ClampQuantity(raw string) int {
	raw = strings.TrimSpace(raw)
	negative := false
	if raw != "" && (raw[0] == '-' || raw[0] == '+') {
		negative = raw[0] == '-'
		raw = raw[1:]
	}
	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == 0 || negative {
		return 1
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil || n > MaxQuantity {
		// Atoi only fails here on overflow.
		return MaxQuantity
	}
	if n < 1 {
		return 1
	}
	return n
}

// ClampUnitPrice turns non-numeric or negative input into zero.
func ClampUnitPrice(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
