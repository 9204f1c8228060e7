package routes

import (
	"quotedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
)

func addQuotationRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("/:id", quotationHandler.GetQuotation)
		quotations.DELETE("/:id", quotationHandler.DiscardQuotation)
		quotations.PUT("/:id/customer", quotationHandler.SetCustomer)
		quotations.POST("/:id/items", quotationHandler.AddLineItem)
		quotations.PATCH("/:id/items/:item_id", quotationHandler.UpdateLineItem)
		quotations.DELETE("/:id/items/:item_id", quotationHandler.RemoveLineItem)
		// Email / WhatsApp buttons.
		quotations.POST("/:id/submit", quotationHandler.SubmitQuotation)
		quotations.GET("/:id/pdf", quotationHandler.DownloadQuotationPDF)
	}
}
