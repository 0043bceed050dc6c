package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/buildcli/springinit/pkg/version"
)

// DefaultURL is the public Spring Initializr endpoint serving the catalog.
const DefaultURL = "https://start.spring.io"

// maxCatalogSize caps the catalog body; the real document is well under 1 MiB.
const maxCatalogSize = 8 << 20

// Fetcher retrieves the catalog from a remote endpoint.
type Fetcher struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewFetcher creates a Fetcher for the given catalog URL.
// A nil client uses http.DefaultClient, leaving timeouts to the transport.
// For testing, pass the httptest.Server URL directly.
func NewFetcher(url string, client *http.Client, logger *slog.Logger) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Fetcher{url: url, client: client, logger: logger}
}

// Fetch performs a single GET against the catalog endpoint and parses the body.
// It is not retried: transport errors and non-2xx statuses return
// ErrCatalogUnavailable, unparseable bodies ErrCatalogMalformed.
func (f *Fetcher) Fetch(ctx context.Context) (*Catalog, error) {
	f.logger.Debug("fetching catalog", "url", f.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrCatalogUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrCatalogUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrCatalogUnavailable, err)
	}

	cat, err := Parse(data)
	if err != nil {
		return nil, err
	}
	f.logger.Debug("catalog fetched",
		"build_systems", len(cat.Type.Options),
		"boot_versions", len(cat.BootVersion.Options),
		"dependency_groups", len(cat.Dependencies))
	return cat, nil
}
