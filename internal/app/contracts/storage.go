package contracts

import (
	"context"
	"io"
	"time"
)

type StorageService interface {
	PutObject(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) error
	PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
