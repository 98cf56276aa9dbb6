package minio

import (
	"context"
	"fmt"
	"time"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Connect initializes the underlying client and verifies reachability.
func (m *minioImpl) Connect(ctx context.Context) error {
	client, err := miniogo.New(m.config.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(m.config.AccessKey, m.config.SecretKey, ""),
		Secure: m.config.UseSSL,
		Region: m.config.Region,
	})
	if err != nil {
		return fmt.Errorf("failed to create MinIO client: %w", err)
	}

	m.client = client
	return m.HealthCheck(ctx)
}

// HealthCheck verifies the connection by listing buckets.
func (m *minioImpl) HealthCheck(ctx context.Context) error {
	if m.client == nil {
		return ErrNotConnected
	}
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := m.client.ListBuckets(checkCtx); err != nil {
		return fmt.Errorf("minio health check failed: %w", err)
	}
	return nil
}

// Close releases resources. The minio-go client has no explicit close.
func (m *minioImpl) Close() error {
	m.client = nil
	return nil
}

// EnsureBucket creates the bucket if it does not exist.
func (m *minioImpl) EnsureBucket(ctx context.Context, bucketName string) error {
	if m.client == nil {
		return ErrNotConnected
	}

	exists, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucketName, err)
	}
	if exists {
		return nil
	}

	if err := m.client.MakeBucket(ctx, bucketName, miniogo.MakeBucketOptions{Region: m.config.Region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucketName, err)
	}
	return nil
}

// UploadFile uploads an object.
func (m *minioImpl) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if m.client == nil {
		return nil, ErrNotConnected
	}

	info, err := m.client.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, miniogo.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: req.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s/%s: %w", req.BucketName, req.ObjectName, err)
	}

	return &FileInfo{
		BucketName: req.BucketName,
		ObjectName: req.ObjectName,
		Size:       info.Size,
		ETag:       info.ETag,
		UploadedAt: time.Now(),
	}, nil
}

// GetPresignedDownloadURL creates a time-limited download URL for an object.
func (m *minioImpl) GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error) {
	if m.client == nil {
		return nil, ErrNotConnected
	}

	u, err := m.client.PresignedGetObject(ctx, req.BucketName, req.ObjectName, req.Expiry, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to presign %s/%s: %w", req.BucketName, req.ObjectName, err)
	}

	return &PresignedURLResponse{
		URL:       u.String(),
		ExpiresAt: time.Now().Add(req.Expiry),
	}, nil
}
