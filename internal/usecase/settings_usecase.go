package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"path"
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidLogo             = errors.New("invalid logo upload")
	ErrWhatsAppNumberRequired  = errors.New("whatsapp number required")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
)

// Logos larger than this are rejected before reaching object storage.
const MaxLogoSize = 5 << 20

var logoExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/svg+xml": ".svg",
	"image/webp":    ".webp",
}

// ISettingsUseCase backs the settings page.
type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.BusinessSettings, error)
	UpdateBusinessInfo(ctx context.Context, name, address, email, whatsapp string) (entities.BusinessSettings, error)
	UpdateBrandColors(ctx context.Context, colors entities.BrandColors) (entities.BusinessSettings, error)
	UploadLogo(ctx context.Context, contentType string, r io.Reader, size int64) (entities.BusinessSettings, error)
	RequestWhatsAppVerification(ctx context.Context) error
	ConfirmWhatsAppVerification(ctx context.Context, code string) (entities.BusinessSettings, error)
}

type SettingsUseCase struct {
	repo    interfaces.IBusinessSettingsRepository
	storage interfaces.IObjectStorage
	gateway interfaces.IDeliveryGateway
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.IBusinessSettingsRepository, storage interfaces.IObjectStorage, gateway interfaces.IDeliveryGateway) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, storage: storage, gateway: gateway}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.BusinessSettings, error) {
	return u.repo.Get(ctx)
}

func (u *SettingsUseCase) UpdateBusinessInfo(ctx context.Context, name, address, email, whatsapp string) (entities.BusinessSettings, error) {
	current, err := u.repo.Get(ctx)
	if err != nil {
		return entities.BusinessSettings{}, err
	}
	next := current.WithBusinessInfo(name, address, email, whatsapp)
	if err := u.repo.Save(ctx, next); err != nil {
		return entities.BusinessSettings{}, err
	}
	if current.WhatsAppVerified && !next.WhatsAppVerified {
		log.Printf("[settings][usecase] whatsapp number changed; verification reset")
	}
	return next, nil
}

func (u *SettingsUseCase) UpdateBrandColors(ctx context.Context, colors entities.BrandColors) (entities.BusinessSettings, error) {
	colors.Primary = strings.TrimSpace(colors.Primary)
	colors.Secondary = strings.TrimSpace(colors.Secondary)
	if err := colors.Validate(); err != nil {
		return entities.BusinessSettings{}, err
	}
	s, err := u.repo.Get(ctx)
	if err != nil {
		return entities.BusinessSettings{}, err
	}
	s.BrandColors = colors
	if err := u.repo.Save(ctx, s); err != nil {
		return entities.BusinessSettings{}, err
	}
	return s, nil
}

// UploadLogo stores the image under logos/ and points LogoURL at a presigned link.
func (u *SettingsUseCase) UploadLogo(ctx context.Context, contentType string, r io.Reader, size int64) (entities.BusinessSettings, error) {
	if u.storage == nil {
		return entities.BusinessSettings{}, ErrObjectStorageNotConfigured
	}
	ext, ok := logoExtensions[strings.ToLower(strings.TrimSpace(contentType))]
	if !ok || r == nil || size <= 0 || size > MaxLogoSize {
		log.Printf("[settings][usecase] logo rejected content_type=%q size=%d", contentType, size)
		return entities.BusinessSettings{}, ErrInvalidLogo
	}

	object := path.Join("logos", uuid.NewString()+ext)
	if err := u.storage.Upload(ctx, object, r, size, contentType); err != nil {
		log.Printf("[settings][usecase] logo upload failed object=%s err=%v", object, err)
		return entities.BusinessSettings{}, err
	}
	url, err := u.storage.PresignedURL(ctx, object)
	if err != nil {
		return entities.BusinessSettings{}, err
	}

	s, err := u.repo.Get(ctx)
	if err != nil {
		return entities.BusinessSettings{}, err
	}
	s.LogoURL = url
	if err := u.repo.Save(ctx, s); err != nil {
		return entities.BusinessSettings{}, err
	}
	log.Printf("[settings][usecase] logo stored object=%s", object)
	return s, nil
}

func (u *SettingsUseCase) RequestWhatsAppVerification(ctx context.Context) error {
	if u.gateway == nil {
		return ErrGatewayNotConfigured
	}
	s, err := u.repo.Get(ctx)
	if err != nil {
		return err
	}
	if s.WhatsApp == "" {
		return ErrWhatsAppNumberRequired
	}
	return u.gateway.SendVerification(ctx, s.WhatsApp)
}

func (u *SettingsUseCase) ConfirmWhatsAppVerification(ctx context.Context, code string) (entities.BusinessSettings, error) {
	if u.gateway == nil {
		return entities.BusinessSettings{}, ErrGatewayNotConfigured
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.BusinessSettings{}, ErrInvalidVerificationCode
	}
	s, err := u.repo.Get(ctx)
	if err != nil {
		return entities.BusinessSettings{}, err
	}
	if s.WhatsApp == "" {
		return entities.BusinessSettings{}, ErrWhatsAppNumberRequired
	}
	if err := u.gateway.ConfirmVerification(ctx, s.WhatsApp, code); err != nil {
		log.Printf("[settings][usecase] whatsapp verification rejected err=%v", err)
		return entities.BusinessSettings{}, ErrInvalidVerificationCode
	}
	s.WhatsAppVerified = true
	if err := u.repo.Save(ctx, s); err != nil {
		return entities.BusinessSettings{}, err
	}
	return s, nil
}
