package generate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/buildcli/springinit/pkg/version"
)

// maxErrorBody caps how much of an error response is echoed back to the user.
const maxErrorBody = 512

// Fetcher retrieves a binary payload for a URL.
type Fetcher interface {
	// Fetch issues a single request; the caller closes the returned body.
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// HTTPFetcher implements Fetcher over net/http, asking for a zip payload.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher. A nil client uses http.DefaultClient.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{client: client}
}

// Fetch sends a GET with Accept: application/zip. Anything but 200 OK is
// returned as a *StatusError carrying the start of the body, which is where
// the service explains rejected parameters.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/zip")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer func() { _ = resp.Body.Close() }()
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	return resp.Body, nil
}
