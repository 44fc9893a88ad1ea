package port

import "context"

// Fetcher retrieves the raw bytes of a remote resource.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
