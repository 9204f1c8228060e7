package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	request "quotedesk/internal/adapter/http/dto/request"
	response "quotedesk/internal/adapter/http/dto/response"
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase"
	"quotedesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler serves the quotation form: the draft, its line items and
// the Email / WhatsApp / PDF buttons.
type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	q, err := h.usecase.CreateDraft(c.Request.Context())
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuotation(q))
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	q, err := h.usecase.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) DiscardQuotation(c *gin.Context) {
	if err := h.usecase.DiscardDraft(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuotationHandler) SetCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotationPayload)
		return
	}
	h.respondDraft(c, http.StatusOK, func(ctx context.Context, id string) (*entities.Quotation, error) {
		return h.usecase.SetCustomer(ctx, id, payload.ToEntity())
	})
}

func (h *QuotationHandler) AddLineItem(c *gin.Context) {
	h.respondDraft(c, http.StatusCreated, h.usecase.AddItem)
}

func (h *QuotationHandler) RemoveLineItem(c *gin.Context) {
	itemID := c.Param("item_id")
	h.respondDraft(c, http.StatusOK, func(ctx context.Context, id string) (*entities.Quotation, error) {
		return h.usecase.RemoveItem(ctx, id, itemID)
	})
}

func (h *QuotationHandler) UpdateLineItem(c *gin.Context) {
	var payload request.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotationPayload)
		return
	}
	field, err := entities.ParseLineItemField(payload.Field)
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	itemID := c.Param("item_id")
	h.respondDraft(c, http.StatusOK, func(ctx context.Context, id string) (*entities.Quotation, error) {
		return h.usecase.UpdateItem(ctx, id, itemID, field, payload.ResolveValue())
	})
}

func (h *QuotationHandler) respondDraft(c *gin.Context, status int, op func(ctx context.Context, id string) (*entities.Quotation, error)) {
	q, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	c.JSON(status, response.FromQuotation(q))
}

// SubmitQuotation freezes the draft and queues it for delivery.
func (h *QuotationHandler) SubmitQuotation(c *gin.Context) {
	var payload request.SubmitQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotationPayload)
		return
	}
	id := c.Param("id")
	item, err := h.usecase.Submit(c.Request.Context(), id, entities.SendMethod(payload.SendMethod))
	if err != nil {
		log.Printf("[quotation][handler] submit failed quotation_id=%s err=%v", id, err)
		writeError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkQueueItem(item))
}

func (h *QuotationHandler) DownloadQuotationPDF(c *gin.Context) {
	id := c.Param("id")
	pdf, err := h.usecase.RenderPDF(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	writePDF(c, fmt.Sprintf("quotation-%s.pdf", id), pdf)
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidLineItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownLineItemField):
		return pkg.NewDomainErrorSimple("UNKNOWN_LINE_ITEM_FIELD", "Field must be one of name, quantity, unitPrice", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidSendMethod):
		return pkg.NewDomainErrorSimple("INVALID_SEND_METHOD", "Send method must be Email or WhatsApp", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrLastLineItem):
		return pkg.NewDomainErrorSimple("LAST_LINE_ITEM", "A quotation must keep at least one line item", http.StatusConflict)
	case errors.Is(err, usecase.ErrRendererNotConfigured):
		return pkg.NewDomainError("RENDERER_UNAVAILABLE", "Document rendering is not available", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
