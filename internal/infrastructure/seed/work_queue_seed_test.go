package seed

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quotedesk/internal/domain/entities"
)

func TestLoadWorkQueue_Bundled(t *testing.T) {
	items, err := LoadWorkQueue("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 8 {
		t.Fatalf("expected 8 items, got %d", len(items))
	}
	first := items[0]
	if first.ID != "QT-2024-001" || first.CustomerName != "John Smith" || first.Status != entities.WorkQueueStatusSent || first.SendMethod != entities.SendMethodEmail {
		t.Fatalf("unexpected first item: %+v", first)
	}
	if first.Amount.String() != "2450" || first.Date.Format("2006-01-02") != "2024-02-20" {
		t.Fatalf("unexpected amount/date: %s %s", first.Amount, first.Date)
	}
	if _, err := entities.NewWorkQueue(items...); err != nil {
		t.Fatalf("bundled seed must form a valid queue: %v", err)
	}
}

func TestLoadWorkQueue_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	body := "items:\n  - id: QT-2025-001\n    customer_name: Acme\n    amount: \"10.50\"\n    status: pending\n    send_method: whatsapp\n    date: 2025-01-02\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	items, err := LoadWorkQueue(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Status != entities.WorkQueueStatusPending || items[0].Amount.String() != "10.5" {
		t.Fatalf("unexpected items: %+v", items)
	}

	if _, err := LoadWorkQueue(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseWorkQueue_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad status": "items:\n  - {id: A, amount: \"1\", status: Archived, send_method: Email, date: 2024-01-01}\n",
		"bad method": "items:\n  - {id: A, amount: \"1\", status: Sent, send_method: Fax, date: 2024-01-01}\n",
		"bad amount": "items:\n  - {id: A, amount: lots, status: Sent, send_method: Email, date: 2024-01-01}\n",
		"bad date":   "items:\n  - {id: A, amount: \"1\", status: Sent, send_method: Email, date: yesterday}\n",
		"missing id": "items:\n  - {amount: \"1\", status: Sent, send_method: Email, date: 2024-01-01}\n",
		"unknown":    "items:\n  - {id: A, price: \"1\"}\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseWorkQueue(strings.NewReader(body)); !errors.Is(err, ErrInvalidSeed) {
				t.Fatalf("expected ErrInvalidSeed, got %v", err)
			}
		})
	}

	items, err := ParseWorkQueue(strings.NewReader(""))
	if err != nil || len(items) != 0 {
		t.Fatalf("empty seed should yield no items: %v %v", items, err)
	}
}
