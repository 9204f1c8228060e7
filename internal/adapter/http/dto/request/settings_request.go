package request

type BusinessInfoRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
}

type BrandColorsRequest struct {
	Primary   string `json:"primary" binding:"required"`
	Secondary string `json:"secondary" binding:"required"`
}

type ConfirmWhatsAppRequest struct {
	Code string `json:"code" binding:"required"`
}
