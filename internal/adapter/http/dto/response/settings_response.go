package response

import "quotedesk/internal/domain/entities"

type BrandColorsResponse struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

type SettingsResponse struct {
	Name             string              `json:"name"`
	Address          string              `json:"address"`
	Email            string              `json:"email"`
	WhatsApp         string              `json:"whatsapp"`
	WhatsAppVerified bool                `json:"whatsapp_verified"`
	BrandColors      BrandColorsResponse `json:"brand_colors"`
	LogoURL          string              `json:"logo_url,omitempty"`
}

func FromBusinessSettings(s entities.BusinessSettings) SettingsResponse {
	return SettingsResponse{
		Name:             s.Name,
		Address:          s.Address,
		Email:            s.Email,
		WhatsApp:         s.WhatsApp,
		WhatsAppVerified: s.WhatsAppVerified,
		BrandColors: BrandColorsResponse{
			Primary:   s.BrandColors.Primary,
			Secondary: s.BrandColors.Secondary,
		},
		LogoURL: s.LogoURL,
	}
}
