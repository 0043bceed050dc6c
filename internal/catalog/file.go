package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileSource reads a catalog saved to disk, e.g. with
// "curl -H 'Accept: application/json' https://start.spring.io".
type FileSource struct {
	Path string
}

// Fetch reads and parses the file. A missing or unreadable file is
// reported as ErrCatalogUnavailable.
func (s FileSource) Fetch(ctx context.Context) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", ErrCatalogUnavailable, s.Path)
		}
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return Parse(data)
}
