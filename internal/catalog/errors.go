// Package catalog models the capability catalog published by a Spring
// Initializr compatible service and provides the fetcher that retrieves
// and parses it.
package catalog

import "errors"

// Sentinel errors for catalog operations.
var (
	// ErrCatalogUnavailable indicates the catalog endpoint could not be reached
	// or answered with a non-success status.
	ErrCatalogUnavailable = errors.New("catalog: service unavailable")

	// ErrCatalogMalformed indicates the catalog body does not have the expected shape.
	ErrCatalogMalformed = errors.New("catalog: malformed catalog")
)
