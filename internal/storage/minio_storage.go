package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"time"

	"github.com/AlexXia007/comfyui-nodes/internal/port"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioStorage struct {
	client minioClient
	useSSL bool
}

// compile-time check: *MinioStorage must satisfy port.Storage
var _ port.Storage = (*MinioStorage)(nil)

// New opens an S3-compatible client against the endpoint carried in cfg.
// The endpoint scheme selects TLS and a non-empty session token switches the
// credentials to STS mode.
func New(cfg port.StorageConfig) (port.Storage, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("endpoint %q is not a valid URL: %w", cfg.Endpoint, err)
	}
	useSSL := u.Scheme == "https"

	log.Printf("initialising storage client for %q...", u.Host)
	client, err := minio.New(u.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
		Secure: useSSL,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return &MinioStorage{client: client, useSSL: useSSL}, nil
}

func (s *MinioStorage) SaveObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType string) error {
	log.Printf("saving object %q into bucket %q...", key, bucket)

	putOpts := minio.PutObjectOptions{}
	if contentType != "" {
		putOpts.ContentType = contentType
	}

	_, err := s.client.PutObject(ctx, bucket, key, reader, size, putOpts)
	if err != nil {
		return mapMinioErr(err)
	}
	return nil
}

func (s *MinioStorage) SignedURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	log.Printf("generating a presigned download link for object %q in bucket %q...", key, bucket)

	presignedURL, err := s.client.PresignedGetObject(ctx, bucket, key, expiry, url.Values{})
	if err != nil {
		return "", mapMinioErr(err)
	}

	return presignedURL.String(), nil
}

// PublicURL builds the path-style address of an object. The object has to be
// readable anonymously for the address to work.
func (s *MinioStorage) PublicURL(bucket, key string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return scheme + "://" + s.client.EndpointURL().Host + "/" + bucket + "/" + key
}
