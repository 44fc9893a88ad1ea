package fetch

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/AlexXia007/comfyui-nodes/internal/port"

	"golang.org/x/net/context"
)

const (
	// DefaultTimeout bounds one download end to end.
	DefaultTimeout = 10 * time.Second
	// DefaultMaxBytes caps the size of one downloaded file.
	DefaultMaxBytes = int64(32 << 20)
)

// HTTPFetcher downloads remote files over plain GET with a hard size cap.
type HTTPFetcher struct {
	client   *http.Client
	maxBytes int64
}

// compile-time check: *HTTPFetcher must satisfy port.Fetcher
var _ port.Fetcher = (*HTTPFetcher)(nil)

func NewHTTPFetcher(timeout time.Duration, maxBytes int64) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &HTTPFetcher{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %q: %w", url, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetching %q: %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("file at %q exceeds %d bytes", url, f.maxBytes)
	}
	return data, nil
}
