package handlers

import (
	"errors"
	"net/http"
	request "quotedesk/internal/adapter/http/dto/request"
	response "quotedesk/internal/adapter/http/dto/response"
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase"
	"quotedesk/pkg"

	"github.com/gin-gonic/gin"
)

const logoFormField = "logo"

var (
	errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)
)

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBusinessSettings(s))
}

func (h *SettingsHandler) UpdateBusinessInfo(c *gin.Context) {
	var payload request.BusinessInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidSettingsPayload)
		return
	}
	s, err := h.usecase.UpdateBusinessInfo(c.Request.Context(), payload.Name, payload.Address, payload.Email, payload.WhatsApp)
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBusinessSettings(s))
}

func (h *SettingsHandler) UpdateBrandColors(c *gin.Context) {
	var payload request.BrandColorsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidSettingsPayload)
		return
	}
	s, err := h.usecase.UpdateBrandColors(c.Request.Context(), entities.BrandColors{
		Primary:   payload.Primary,
		Secondary: payload.Secondary,
	})
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBusinessSettings(s))
}

// UploadLogo expects a multipart form with the image in the "logo" field.
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	fh, err := c.FormFile(logoFormField)
	if err != nil {
		writeError(c, errInvalidSettingsPayload)
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, errInvalidSettingsPayload)
		return
	}
	defer f.Close()

	s, err := h.usecase.UploadLogo(c.Request.Context(), fh.Header.Get("Content-Type"), f, fh.Size)
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBusinessSettings(s))
}

func (h *SettingsHandler) RequestWhatsAppVerification(c *gin.Context) {
	if err := h.usecase.RequestWhatsAppVerification(c.Request.Context()); err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	c.Status(http.StatusAccepted)
}

func (h *SettingsHandler) ConfirmWhatsAppVerification(c *gin.Context) {
	var payload request.ConfirmWhatsAppRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidSettingsPayload)
		return
	}
	s, err := h.usecase.ConfirmWhatsAppVerification(c.Request.Context(), payload.Code)
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBusinessSettings(s))
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidBrandColor):
		return pkg.NewDomainErrorSimple("INVALID_BRAND_COLOR", "Brand colors must be #rrggbb hex values", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLogo):
		return pkg.NewDomainErrorSimple("INVALID_LOGO", "Logo must be a PNG, JPEG, SVG or WebP image up to 5 MB", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWhatsAppNumberRequired):
		return pkg.NewDomainErrorSimple("WHATSAPP_NUMBER_REQUIRED", "Set a WhatsApp number first", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidVerificationCode):
		return pkg.NewDomainErrorSimple("INVALID_VERIFICATION_CODE", "Invalid verification code", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrObjectStorageNotConfigured), errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "This feature is not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
