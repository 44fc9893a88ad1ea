package mock

import (
	"context"
	"fmt"
)

// Fetcher implements port.Fetcher for tests, serving bytes from an in-memory
// map keyed by URL.
type Fetcher struct {
	// stored values
	Files map[string][]byte

	// captured inputs
	URLs []string

	// errors
	Err error

	Called bool
}

func (m *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	m.Called = true
	m.URLs = append(m.URLs, url)
	if m.Err != nil {
		return nil, m.Err
	}
	data, ok := m.Files[url]
	if !ok {
		return nil, fmt.Errorf("no test file registered for %q", url)
	}
	return data, nil
}
