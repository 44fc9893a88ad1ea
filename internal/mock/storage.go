package mock

import (
	"context"
	"io"
	"time"
)

// Storage implements the storage interface for tests.
type Storage struct {
	// captured inputs
	Bucket      string
	ObjectKey   string
	Data        []byte
	Size        int64
	ContentType string
	TTL         time.Duration

	// errors
	SaveErr   error
	SignedErr error

	// call flags
	SaveCalled   bool
	SignedCalled bool
	PublicCalled bool
}

func (m *Storage) SaveObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType string) error {
	m.SaveCalled = true
	m.Bucket = bucket
	m.ObjectKey = key
	m.Size = size
	m.ContentType = contentType
	if reader != nil {
		data, err := io.ReadAll(reader)
		if err != nil {
			return err
		}
		m.Data = data
	}
	return m.SaveErr
}

func (m *Storage) SignedURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	m.SignedCalled = true
	m.Bucket = bucket
	m.ObjectKey = key
	m.TTL = expiry
	if m.SignedErr != nil {
		return "", m.SignedErr
	}
	return "https://example.com/signed", nil
}

func (m *Storage) PublicURL(bucket, key string) string {
	m.PublicCalled = true
	m.Bucket = bucket
	m.ObjectKey = key
	return "https://example.com/" + bucket + "/" + key
}
