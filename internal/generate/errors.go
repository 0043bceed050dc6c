// Package generate downloads a generated project archive from the initializr
// service and unpacks it into the chosen output directory.
package generate

import (
	"errors"
	"fmt"
)

// Sentinel errors for the generate package.
var (
	// ErrDownloadFailed indicates the generation request failed in transport,
	// returned a non-success status, or could not be persisted.
	ErrDownloadFailed = errors.New("generate: download failed")

	// ErrExtractionFailed indicates the downloaded archive could not be unpacked.
	ErrExtractionFailed = errors.New("generate: extraction failed")
)

// StatusError reports a non-success HTTP status returned by the service.
type StatusError struct {
	StatusCode int
	Body       string // Leading part of the response body, if any.
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}
