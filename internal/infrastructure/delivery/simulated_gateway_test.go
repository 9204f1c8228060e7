package delivery

import (
	"context"
	"errors"
	"strings"
	"testing"

	"quotedesk/internal/domain/entities"
)

func TestSimulatedGateway_Deliver(t *testing.T) {
	g := NewSimulatedGateway(entities.SendMethodWhatsApp)

	ref, err := g.Deliver(context.Background(), entities.WorkQueueItem{ID: "QT-2024-001", SendMethod: entities.SendMethodEmail})
	if err != nil || !strings.HasPrefix(ref, "email-") {
		t.Fatalf("unexpected result: %q %v", ref, err)
	}

	_, err = g.Deliver(context.Background(), entities.WorkQueueItem{ID: "QT-2024-002", SendMethod: entities.SendMethodWhatsApp})
	if !errors.Is(err, ErrDeliveryRejected) {
		t.Fatalf("expected ErrDeliveryRejected, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := g.Deliver(ctx, entities.WorkQueueItem{SendMethod: entities.SendMethodEmail}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSimulatedGateway_Verification(t *testing.T) {
	g := NewSimulatedGateway()
	g.newCode = func() (string, error) { return "424242", nil }
	ctx := context.Background()

	if err := g.ConfirmVerification(ctx, "+1 234 567 8900", "424242"); !errors.Is(err, ErrVerificationNotRequested) {
		t.Fatalf("expected ErrVerificationNotRequested, got %v", err)
	}
	if err := g.SendVerification(ctx, "+1 234 567 8900"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.ConfirmVerification(ctx, "+12345678900", "000000"); !errors.Is(err, ErrVerificationCodeMismatch) {
		t.Fatalf("expected ErrVerificationCodeMismatch, got %v", err)
	}
	if err := g.ConfirmVerification(ctx, "+1 (234) 567-8900", " 424242 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.ConfirmVerification(ctx, "+12345678900", "424242"); !errors.Is(err, ErrVerificationNotRequested) {
		t.Fatalf("code must be single use, got %v", err)
	}
}

func TestRandomCode(t *testing.T) {
	code, err := randomCode()
	if err != nil || len(code) != 6 {
		t.Fatalf("unexpected code: %q %v", code, err)
	}
}
