package handlers

import (
	"net/http"
	response "quotedesk/internal/adapter/http/dto/response"
	"quotedesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IWorkQueueUseCase
}

func NewDashboardHandler(uc usecase.IWorkQueueUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		writeError(c, mapWorkQueueError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardSummary(summary))
}
