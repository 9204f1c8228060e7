package response

import (
	"time"

	"quotedesk/internal/domain/entities"
)

// Money is rendered as a fixed two-decimal string; the unrounded value stays server side.

type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type LineItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type QuotationResponse struct {
	ID        string             `json:"id"`
	Customer  CustomerResponse   `json:"customer"`
	Items     []LineItemResponse `json:"items"`
	Subtotal  string             `json:"subtotal"`
	TaxRate   string             `json:"tax_rate"`
	Tax       string             `json:"tax"`
	Total     string             `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func FromQuotation(q *entities.Quotation) QuotationResponse {
	items := make([]LineItemResponse, 0, q.Len())
	for _, it := range q.Items() {
		items = append(items, LineItemResponse{
			ID:        it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: entities.FormatAmount(it.UnitPrice),
			LineTotal: entities.FormatAmount(it.LineTotal),
		})
	}
	return QuotationResponse{
		ID: q.ID,
		Customer: CustomerResponse{
			Name:  q.Customer.Name,
			Email: q.Customer.Email,
			Phone: q.Customer.Phone,
		},
		Items:     items,
		Subtotal:  entities.FormatAmount(q.Subtotal()),
		TaxRate:   entities.TaxRate.String(),
		Tax:       entities.FormatAmount(q.Tax()),
		Total:     entities.FormatAmount(q.Total()),
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}
