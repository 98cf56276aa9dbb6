package minio

import (
	"errors"
	"io"
	"time"

	miniogo "github.com/minio/minio-go/v7"
)

var (
	ErrConfigRequired   = errors.New("minio config is required")
	ErrEndpointRequired = errors.New("minio endpoint is required")
	ErrNotConnected     = errors.New("minio client is not connected")
)

// ClientConfig holds MinIO client configuration.
type ClientConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// minioImpl implements MinIO.
type minioImpl struct {
	config *ClientConfig
	client *miniogo.Client
}

// UploadRequest describes an object upload.
type UploadRequest struct {
	BucketName  string
	ObjectName  string
	Reader      io.Reader
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// FileInfo describes an uploaded object.
type FileInfo struct {
	BucketName string
	ObjectName string
	Size       int64
	ETag       string
	UploadedAt time.Time
}

// PresignedURLRequest describes a presigned download URL request.
type PresignedURLRequest struct {
	BucketName string
	ObjectName string
	Expiry     time.Duration
}

// PresignedURLResponse is the result of a presigned URL request.
type PresignedURLResponse struct {
	URL       string
	ExpiresAt time.Time
}
