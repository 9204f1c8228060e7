package request

import (
	"encoding/json"
	"strings"

	"quotedesk/internal/domain/entities"
)

type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
		Phone: strings.TrimSpace(r.Phone),
	}
}

// UpdateLineItemRequest carries one edited cell of the items table.
//
// Value is accepted either as a JSON string (raw form text) or as a bare
// number; both end up as the text the quotation clamps and parses.
type UpdateLineItemRequest struct {
	Field string          `json:"field" binding:"required"`
	Value json.RawMessage `json:"value"`
}

func (r UpdateLineItemRequest) ResolveValue() string {
	raw := strings.TrimSpace(string(r.Value))
	if raw == "" || raw == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(r.Value, &s); err == nil {
		return s
	}
	return raw
}

type SubmitQuotationRequest struct {
	SendMethod string `json:"send_method" binding:"required"`
}
