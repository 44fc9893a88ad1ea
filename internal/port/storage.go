package port

import (
	"context"
	"io"
	"time"
)

// Storage writes encoded objects into a bucket and resolves their URLs.
type Storage interface {
	SaveObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType string) error
	SignedURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
	PublicURL(bucket, key string) string
}

// StorageConfig carries the credentials needed to open a storage client. The
// endpoint must include an http or https scheme.
type StorageConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// StorageFactory builds a Storage from per-run credentials.
type StorageFactory func(cfg StorageConfig) (Storage, error)
