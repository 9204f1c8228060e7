package interfaces

import (
	"context"
	"io"
)

// IObjectStorage stores uploaded assets (business logo).
type IObjectStorage interface {
	Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) error
	PresignedURL(ctx context.Context, objectName string) (string, error)
}
