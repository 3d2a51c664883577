// Package scrape regenerates the sizing table from the Wikipedia ring
// size page. It runs offline from the picker tool; the tool itself only
// ever reads the generated file.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Wikipedia serves a reduced page to default Go user agents; identify as
// a desktop browser so the full equivalency table is present.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Fetcher retrieves the reference page HTML.
type Fetcher struct {
	Client    *http.Client
	UserAgent string
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		Client:    &http.Client{Timeout: 30 * time.Second},
		UserAgent: defaultUserAgent,
	}
}

// Fetch downloads the page at pageURL.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("ring size page: build request: %w", err)
	}
	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ring size page: request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ring size page: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ring size page: status %d", resp.StatusCode)
	}
	return body, nil
}
