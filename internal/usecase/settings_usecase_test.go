package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"quotedesk/internal/domain/entities"
	mock_interfaces "quotedesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newSettingsUseCaseForTest(t *testing.T) (*SettingsUseCase, *mock_interfaces.MockIBusinessSettingsRepository, *mock_interfaces.MockIObjectStorage, *mock_interfaces.MockIDeliveryGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIBusinessSettingsRepository(ctrl)
	storage := mock_interfaces.NewMockIObjectStorage(ctrl)
	gateway := mock_interfaces.NewMockIDeliveryGateway(ctrl)
	return NewSettingsUseCase(repo, storage, gateway), repo, storage, gateway
}

func TestSettingsUseCase_UpdateBusinessInfo(t *testing.T) {
	uc, repo, _, _ := newSettingsUseCaseForTest(t)
	current := entities.DefaultBusinessSettings()
	repo.EXPECT().Get(gomock.Any()).Return(current, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.BusinessSettings) error {
		if s.Name != "Acme" || s.WhatsApp != "+44 20 7946 0000" || s.WhatsAppVerified {
			t.Fatalf("unexpected saved settings: %+v", s)
		}
		return nil
	})

	s, err := uc.UpdateBusinessInfo(context.Background(), "Acme", current.Address, current.Email, "+44 20 7946 0000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BrandColors != current.BrandColors {
		t.Fatalf("brand colors must be untouched")
	}
}

func TestSettingsUseCase_UpdateBrandColors(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		uc, _, _, _ := newSettingsUseCaseForTest(t)
		_, err := uc.UpdateBrandColors(context.Background(), entities.BrandColors{Primary: "#zzzzzz", Secondary: "#000000"})
		if !errors.Is(err, entities.ErrInvalidBrandColor) {
			t.Fatalf("expected ErrInvalidBrandColor, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo, _, _ := newSettingsUseCaseForTest(t)
		repo.EXPECT().Get(gomock.Any()).Return(entities.DefaultBusinessSettings(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		s, err := uc.UpdateBrandColors(context.Background(), entities.BrandColors{Primary: " #111111 ", Secondary: "#222222"})
		if err != nil || s.BrandColors.Primary != "#111111" {
			t.Fatalf("unexpected result: %+v %v", s, err)
		}
	})
}

func TestSettingsUseCase_UploadLogo(t *testing.T) {
	t.Run("storage missing", func(t *testing.T) {
		uc := NewSettingsUseCase(nil, nil, nil)
		_, err := uc.UploadLogo(context.Background(), "image/png", strings.NewReader("png"), 3)
		if !errors.Is(err, ErrObjectStorageNotConfigured) {
			t.Fatalf("expected ErrObjectStorageNotConfigured, got %v", err)
		}
	})

	t.Run("rejects non-images", func(t *testing.T) {
		uc, _, _, _ := newSettingsUseCaseForTest(t)
		_, err := uc.UploadLogo(context.Background(), "application/pdf", strings.NewReader("pdf"), 3)
		if !errors.Is(err, ErrInvalidLogo) {
			t.Fatalf("expected ErrInvalidLogo, got %v", err)
		}
	})

	t.Run("rejects oversize", func(t *testing.T) {
		uc, _, _, _ := newSettingsUseCaseForTest(t)
		_, err := uc.UploadLogo(context.Background(), "image/png", strings.NewReader(""), MaxLogoSize+1)
		if !errors.Is(err, ErrInvalidLogo) {
			t.Fatalf("expected ErrInvalidLogo, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo, storage, _ := newSettingsUseCaseForTest(t)
		var object string
		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), int64(3), "image/png").DoAndReturn(
			func(_ context.Context, name string, _ io.Reader, _ int64, _ string) error {
				object = name
				return nil
			},
		)
		storage.EXPECT().PresignedURL(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, name string) (string, error) {
			return "http://minio/" + name, nil
		})
		repo.EXPECT().Get(gomock.Any()).Return(entities.DefaultBusinessSettings(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		s, err := uc.UploadLogo(context.Background(), "image/png", strings.NewReader("png"), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(object, "logos/") || !strings.HasSuffix(object, ".png") {
			t.Fatalf("unexpected object name: %s", object)
		}
		if s.LogoURL != "http://minio/"+object {
			t.Fatalf("unexpected logo url: %s", s.LogoURL)
		}
	})
}

func TestSettingsUseCase_WhatsAppVerification(t *testing.T) {
	t.Run("request", func(t *testing.T) {
		uc, repo, _, gateway := newSettingsUseCaseForTest(t)
		repo.EXPECT().Get(gomock.Any()).Return(entities.DefaultBusinessSettings(), nil)
		gateway.EXPECT().SendVerification(gomock.Any(), "+1 234 567 8900").Return(nil)

		if err := uc.RequestWhatsAppVerification(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("request without number", func(t *testing.T) {
		uc, repo, _, _ := newSettingsUseCaseForTest(t)
		repo.EXPECT().Get(gomock.Any()).Return(entities.BusinessSettings{}, nil)

		if err := uc.RequestWhatsAppVerification(context.Background()); !errors.Is(err, ErrWhatsAppNumberRequired) {
			t.Fatalf("expected ErrWhatsAppNumberRequired, got %v", err)
		}
	})

	t.Run("confirm", func(t *testing.T) {
		uc, repo, _, gateway := newSettingsUseCaseForTest(t)
		s := entities.DefaultBusinessSettings()
		s.WhatsAppVerified = false
		repo.EXPECT().Get(gomock.Any()).Return(s, nil)
		gateway.EXPECT().ConfirmVerification(gomock.Any(), s.WhatsApp, "123456").Return(nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.ConfirmWhatsAppVerification(context.Background(), " 123456 ")
		if err != nil || !got.WhatsAppVerified {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("confirm wrong code", func(t *testing.T) {
		uc, repo, _, gateway := newSettingsUseCaseForTest(t)
		repo.EXPECT().Get(gomock.Any()).Return(entities.DefaultBusinessSettings(), nil)
		gateway.EXPECT().ConfirmVerification(gomock.Any(), gomock.Any(), "000000").Return(errors.New("mismatch"))

		if _, err := uc.ConfirmWhatsAppVerification(context.Background(), "000000"); !errors.Is(err, ErrInvalidVerificationCode) {
			t.Fatalf("expected ErrInvalidVerificationCode, got %v", err)
		}
	})
}
