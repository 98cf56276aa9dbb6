package minio

import (
	"context"
)

// MinIO is the object storage interface used for report artifacts.
// Implementations are safe for concurrent use.
type MinIO interface {
	Connect(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Close() error

	// EnsureBucket creates the bucket if it does not exist. Idempotent.
	EnsureBucket(ctx context.Context, bucketName string) error
	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)
	GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error)
}

// NewMinIO creates a new MinIO client from configuration. Returns the interface.
func NewMinIO(cfg *ClientConfig) (MinIO, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}
	if cfg.Endpoint == "" {
		return nil, ErrEndpointRequired
	}
	return &minioImpl{config: cfg}, nil
}
