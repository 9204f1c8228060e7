package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"quotedesk/internal/infrastructure/config"
	"quotedesk/internal/usecase/interfaces"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage keeps logos and published quotation PDFs in a single bucket.
type MinioStorage struct {
	client *minio.Client
	bucket string
	cfg    config.MinioConfig
}

var _ interfaces.IObjectStorage = (*MinioStorage)(nil)

func NewMinioStorage(cfg config.MinioConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &MinioStorage{client: client, bucket: cfg.Bucket, cfg: cfg}, nil
}

// EnsureBucket creates the bucket on first start.
func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	log.Printf("[storage][minio] bucket created bucket=%s", s.bucket)
	return nil
}

func (s *MinioStorage) Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) error {
	info, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectName, err)
	}
	log.Printf("[storage][minio] uploaded object=%s size=%d etag=%s", objectName, info.Size, info.ETag)
	return nil
}

func (s *MinioStorage) PresignedURL(ctx context.Context, objectName string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, s.expiry(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", objectName, err)
	}
	return u.String(), nil
}

func (s *MinioStorage) expiry() time.Duration {
	days := s.cfg.ExpireDays
	// S3 caps presigned links at seven days.
	if days <= 0 || days > 7 {
		days = 7
	}
	return time.Duration(days) * 24 * time.Hour
}

// PublicURL is the unsigned location of an object, usable when the bucket is public.
func (s *MinioStorage) PublicURL(objectName string) string {
	scheme := "http"
	if s.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.Endpoint, s.bucket, objectName)
}
