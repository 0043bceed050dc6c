package session

import "fmt"

// Phase names a stage of a session.
type Phase string

// Session phases in execution order.
const (
	PhaseCatalog  Phase = "catalog"
	PhaseWizard   Phase = "wizard"
	PhaseRequest  Phase = "request"
	PhaseDownload Phase = "download"
	PhaseExtract  Phase = "extract"
)

// PhaseError reports the phase a session failed in.
type PhaseError struct {
	Phase       Phase
	Err         error
	ArchivePath string // Set when extraction failed; the archive is kept
}

// Error implements the error interface.
func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Phase, e.Err)
}

// Unwrap returns the underlying error.
func (e *PhaseError) Unwrap() error {
	return e.Err
}
