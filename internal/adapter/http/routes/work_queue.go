package routes

import (
	"quotedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkQueue = "/work-queue"
	PathDashboard = "/dashboard"
)

func addWorkQueueRoutes(rg *gin.RouterGroup, workQueueHandler *handlers.WorkQueueHandler, dashboardHandler *handlers.DashboardHandler) {
	queue := rg.Group(PathWorkQueue)
	{
		queue.GET("", workQueueHandler.ListWorkQueue)
		queue.GET("/counts", workQueueHandler.CountWorkQueue)
		queue.POST("/send-pending", workQueueHandler.SendPending)
		queue.GET("/:id", workQueueHandler.GetWorkQueueItem)
		queue.POST("/:id/send", workQueueHandler.SendWorkQueueItem)
		queue.POST("/:id/retry", workQueueHandler.RetryWorkQueueItem)
		queue.POST("/:id/accept", workQueueHandler.AcceptWorkQueueItem)
		queue.POST("/:id/fail", workQueueHandler.FailWorkQueueItem)
		queue.GET("/:id/document", workQueueHandler.DownloadDocument)
		queue.POST("/:id/document/link", workQueueHandler.PublishDocument)
	}

	rg.GET(PathDashboard, dashboardHandler.GetDashboard)
}
