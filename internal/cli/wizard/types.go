// Package wizard walks the user through the catalog-constrained choices that
// make up a project configuration. Prompting is delegated to a Prompter so the
// same steps run against an interactive form or a headless answer set.
package wizard

import (
	"context"
	"errors"

	"github.com/buildcli/springinit/internal/core/project"
)

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user aborts a prompt or declines the
	// final confirmation.
	ErrCancelled = errors.New("wizard: cancelled by user")

	// ErrRequired is returned when a required field resolves to an empty value.
	ErrRequired = errors.New("wizard: value required")

	// ErrInvalidChoice is returned when a prompter answers with a label the
	// step did not offer.
	ErrInvalidChoice = errors.New("wizard: invalid choice")

	// ErrNoCatalog is returned when Run is called without a catalog.
	ErrNoCatalog = errors.New("wizard: no catalog")
)

// ConfirmID is the field id of the final confirmation prompt.
const ConfirmID = "confirm"

// Prompter is the interactive session surface the wizard drives.
// Select and MultiSelect answer with choice labels, never values.
type Prompter interface {
	Input(ctx context.Context, f Field) (string, error)
	Select(ctx context.Context, f Field) (string, error)
	MultiSelect(ctx context.Context, f Field) ([]string, error)
	Confirm(ctx context.Context, f Field) (bool, error)
}

// Field describes a single prompt.
type Field struct {
	ID          string   // Step id; also the answers-file key
	Title       string   // Prompt title
	Description string   // Additional description
	Default     string   // Default input value, choice label, or "true"/"false" for Confirm
	Required    bool     // Whether an empty answer is rejected
	Choices     []Choice // Options for Select and MultiSelect, in presentation order
	// Validate checks a candidate answer. Nil accepts anything.
	Validate func(string) error
}

// Choice represents a selectable option.
type Choice struct {
	Label string // Display label, returned by the prompter
	Value string // Catalog id
	Desc  string // Optional description
}

// Labels returns the choice labels in presentation order.
func (f Field) Labels() []string {
	labels := make([]string, len(f.Choices))
	for i, c := range f.Choices {
		labels[i] = c.Label
	}
	return labels
}

// StepKind represents the prompt type of a step.
type StepKind int

const (
	// StepInput is a free-text step.
	StepInput StepKind = iota
	// StepSelect is a single choice over a catalog category.
	StepSelect
	// StepMultiSelect is a checklist over a dependency group.
	StepMultiSelect
)

// Step defines a single wizard step.
type Step struct {
	ID          string        // Unique identifier
	Kind        StepKind      // Input, Select or MultiSelect
	Title       string        // Prompt title
	Description string        // Additional description
	Required    bool          // Whether the field is required (input steps)
	Field       project.Field // Configuration field set by input and select steps
	Category    string        // Catalog category key (select steps)
	Group       string        // Dependency group name (multi-select steps)

	// Default computes the input default from the answers collected so far.
	Default func(cfg project.Configuration, lookup DefaultLookup) string
}

// DefaultLookup resolves a dotted path against the catalog document.
type DefaultLookup func(path string) (string, bool)
