package entities

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidBrandColor = errors.New("invalid brand color")

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type BrandColors struct {
	Primary   string
	Secondary string
}

func (c BrandColors) Validate() error {
	if !hexColorPattern.MatchString(c.Primary) || !hexColorPattern.MatchString(c.Secondary) {
		return ErrInvalidBrandColor
	}
	return nil
}

// BusinessSettings is the sender profile printed on quotations.
type BusinessSettings struct {
	Name             string
	Address          string
	Email            string
	WhatsApp         string
	WhatsAppVerified bool
	BrandColors      BrandColors
	LogoURL          string
}

func DefaultBusinessSettings() BusinessSettings {
	return BusinessSettings{
		Name:             "My Business Inc.",
		Address:          "123 Business Street, City, State 12345",
		Email:            "contact@mybusiness.com",
		WhatsApp:         "+1 234 567 8900",
		WhatsAppVerified: true,
		BrandColors: BrandColors{
			Primary:   "#3b82f6",
			Secondary: "#8b5cf6",
		},
	}
}

// WithBusinessInfo replaces the contact fields. Changing the WhatsApp number
// drops its verified flag.
func (s BusinessSettings) WithBusinessInfo(name, address, email, whatsapp string) BusinessSettings {
	whatsapp = strings.TrimSpace(whatsapp)
	if whatsapp != s.WhatsApp {
		s.WhatsAppVerified = false
	}
	s.Name = strings.TrimSpace(name)
	s.Address = strings.TrimSpace(address)
	s.Email = strings.TrimSpace(email)
	s.WhatsApp = whatsapp
	return s
}
