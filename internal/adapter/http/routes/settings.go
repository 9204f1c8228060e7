package routes

import (
	"quotedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSettings = "/settings"
)

func addSettingsRoutes(rg *gin.RouterGroup, settingsHandler *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.PUT("/business", settingsHandler.UpdateBusinessInfo)
		settings.PUT("/brand-colors", settingsHandler.UpdateBrandColors)
		settings.POST("/logo", settingsHandler.UploadLogo)
		settings.POST("/whatsapp/verification", settingsHandler.RequestWhatsAppVerification)
		settings.POST("/whatsapp/verification/confirm", settingsHandler.ConfirmWhatsAppVerification)
	}
}
