package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"quotedesk/internal/infrastructure/config"
)

func TestMinioStorage_PublicURL(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.MinioConfig
		object   string
		expected string
	}{
		{
			name:     "http",
			cfg:      config.MinioConfig{Endpoint: "localhost:9000", Bucket: "quotedesk"},
			object:   "logos/a.png",
			expected: "http://localhost:9000/quotedesk/logos/a.png",
		},
		{
			name:     "https",
			cfg:      config.MinioConfig{Endpoint: "files.example.com", Bucket: "docs", UseSSL: true},
			object:   "documents/QT-2024-001.pdf",
			expected: "https://files.example.com/docs/documents/QT-2024-001.pdf",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &MinioStorage{bucket: tt.cfg.Bucket, cfg: tt.cfg}
			if got := s.PublicURL(tt.object); got != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestMinioStorage_Expiry(t *testing.T) {
	for days, want := range map[int]time.Duration{0: 7 * 24 * time.Hour, 2: 48 * time.Hour, 30: 7 * 24 * time.Hour} {
		s := &MinioStorage{cfg: config.MinioConfig{ExpireDays: days}}
		if got := s.expiry(); got != want {
			t.Fatalf("expiry(%d) = %s, want %s", days, got, want)
		}
	}
}

func TestMinioStorage_PresignedURL(t *testing.T) {
	s, err := NewMinioStorage(config.MinioConfig{
		Endpoint:   "localhost:9000",
		AccessKey:  "minio",
		SecretKey:  "minio123",
		Bucket:     "quotedesk",
		Region:     "us-east-1",
		ExpireDays: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// With a fixed region presigning never touches the network.
	raw, err := s.PresignedURL(context.Background(), "logos/a.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("invalid url: %v", err)
	}
	if u.Path != "/quotedesk/logos/a.png" || u.Query().Get("X-Amz-Expires") != "86400" {
		t.Fatalf("unexpected presigned url: %s", raw)
	}
}

func TestMinioStorage_Upload(t *testing.T) {
	var gotPath, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			gotPath = r.URL.Path
			gotType = r.Header.Get("Content-Type")
			w.Header().Set("ETag", `"abc"`)
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotImplemented)
	}))
	defer srv.Close()

	s, err := NewMinioStorage(config.MinioConfig{
		Endpoint:  strings.TrimPrefix(srv.URL, "http://"),
		AccessKey: "minio",
		SecretKey: "minio123",
		Bucket:    "quotedesk",
		Region:    "us-east-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := "fake-png"
	if err := s.Upload(context.Background(), "logos/a.png", strings.NewReader(body), int64(len(body)), "image/png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/quotedesk/logos/a.png" || gotType != "image/png" {
		t.Fatalf("unexpected request: path=%s content-type=%s", gotPath, gotType)
	}
}
