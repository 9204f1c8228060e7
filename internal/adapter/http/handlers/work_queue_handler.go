package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	response "quotedesk/internal/adapter/http/dto/response"
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase"
	"quotedesk/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

// WorkQueueHandler serves the work queue table and its row actions.
type WorkQueueHandler struct {
	usecase usecase.IWorkQueueUseCase
}

func NewWorkQueueHandler(uc usecase.IWorkQueueUseCase) *WorkQueueHandler {
	return &WorkQueueHandler{usecase: uc}
}

// ListWorkQueue accepts ?status=all|pending|sent|accepted|failed (any case).
func (h *WorkQueueHandler) ListWorkQueue(c *gin.Context) {
	status := c.DefaultQuery("status", "all")
	items, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		writeError(c, mapWorkQueueError(err))
		return
	}
	c.JSON(http.StatusOK, response.WorkQueueListResponse{
		Filter: strings.ToLower(strings.TrimSpace(status)),
		Items:  response.FromWorkQueueItems(items),
	})
}

func (h *WorkQueueHandler) CountWorkQueue(c *gin.Context) {
	counts, err := h.usecase.Counts(c.Request.Context())
	if err != nil {
		writeError(c, mapWorkQueueError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkQueueCounts(counts))
}

func (h *WorkQueueHandler) GetWorkQueueItem(c *gin.Context) {
	h.respondItem(c, h.usecase.GetByID)
}

// SendWorkQueueItem answers 502 when the provider rejects the quotation; the
// item is Failed at that point and can be retried.
func (h *WorkQueueHandler) SendWorkQueueItem(c *gin.Context) {
	h.respondItem(c, h.usecase.Send)
}

func (h *WorkQueueHandler) RetryWorkQueueItem(c *gin.Context) {
	h.respondItem(c, h.usecase.Retry)
}

func (h *WorkQueueHandler) AcceptWorkQueueItem(c *gin.Context) {
	h.respondItem(c, h.usecase.Accept)
}

func (h *WorkQueueHandler) FailWorkQueueItem(c *gin.Context) {
	h.respondItem(c, h.usecase.MarkFailed)
}

func (h *WorkQueueHandler) respondItem(c *gin.Context, op func(ctx context.Context, id string) (entities.WorkQueueItem, error)) {
	id := c.Param("id")
	item, err := op(c.Request.Context(), id)
	if err != nil {
		log.Printf("[workqueue][handler] %s failed work_item_id=%s err=%v", c.FullPath(), id, err)
		writeError(c, mapWorkQueueError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkQueueItem(item))
}

func (h *WorkQueueHandler) SendPending(c *gin.Context) {
	res, err := h.usecase.SendPending(c.Request.Context())
	if err != nil {
		writeError(c, mapWorkQueueError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSendPendingResult(res))
}

func (h *WorkQueueHandler) DownloadDocument(c *gin.Context) {
	id := c.Param("id")
	pdf, err := h.usecase.Document(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapWorkQueueError(err))
		return
	}
	writePDF(c, fmt.Sprintf("%s.pdf", id), pdf)
}

func (h *WorkQueueHandler) PublishDocument(c *gin.Context) {
	url, err := h.usecase.PublishDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWorkQueueError(err))
		return
	}
	c.JSON(http.StatusCreated, response.DocumentLinkResponse{URL: url})
}

func mapWorkQueueError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidWorkQueueStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_FILTER", "Status must be all, pending, sent, accepted or failed", http.StatusBadRequest)
	case errors.Is(err, entities.ErrWorkItemNotFound):
		return pkg.NewDomainErrorSimple("WORK_ITEM_NOT_FOUND", "Work queue item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDeliveryFailed):
		return pkg.NewDomainError("DELIVERY_FAILED", "The quotation could not be delivered", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayNotConfigured),
		errors.Is(err, usecase.ErrRendererNotConfigured),
		errors.Is(err, usecase.ErrObjectStorageNotConfigured):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "This feature is not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
