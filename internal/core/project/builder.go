package project

import (
	"fmt"
	"slices"
	"strings"
)

// Builder accumulates configuration fields one wizard step at a time.
// It is threaded explicitly through the steps; there is no shared state.
type Builder struct {
	cfg       Configuration
	finalized bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Snapshot returns a copy of the fields collected so far. Steps use it to
// derive defaults from earlier answers.
func (b *Builder) Snapshot() Configuration {
	return b.cfg.Clone()
}

// Set stores a single-valued field by its wizard step id.
// It returns false for unknown ids or after Finalize.
func (b *Builder) Set(field Field, value string) bool {
	if b.finalized {
		return false
	}
	switch field {
	case FieldName:
		b.cfg.Name = value
	case FieldDescription:
		b.cfg.Description = value
	case FieldGroupID:
		b.cfg.GroupID = value
	case FieldArtifactID:
		b.cfg.ArtifactID = value
	case FieldPackageName:
		b.cfg.PackageName = value
	case FieldOutputDir:
		b.cfg.OutputDir = value
	case FieldBuildSystem:
		b.cfg.BuildSystemID = value
	case FieldPackaging:
		b.cfg.PackagingID = value
	case FieldJavaVersion:
		b.cfg.JavaVersionID = value
	case FieldBootVersion:
		b.cfg.BootVersionID = value
	default:
		return false
	}
	return true
}

// AddDependencies appends dependency ids, skipping ids already present so the
// accumulated list stays a set in first-seen order.
func (b *Builder) AddDependencies(ids ...string) {
	if b.finalized {
		return
	}
	for _, id := range ids {
		if !slices.Contains(b.cfg.Dependencies, id) {
			b.cfg.Dependencies = append(b.cfg.Dependencies, id)
		}
	}
}

// Finalize validates required free-text fields and freezes the builder.
// The returned Configuration is an independent copy.
func (b *Builder) Finalize() (Configuration, error) {
	required := []struct {
		field Field
		value string
	}{
		{FieldName, b.cfg.Name},
		{FieldGroupID, b.cfg.GroupID},
		{FieldArtifactID, b.cfg.ArtifactID},
		{FieldPackageName, b.cfg.PackageName},
		{FieldOutputDir, b.cfg.OutputDir},
	}
	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, string(r.field))
		}
	}
	if len(missing) > 0 {
		return Configuration{}, fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}

	b.finalized = true
	cfg := b.cfg.Clone()
	if cfg.Dependencies == nil {
		cfg.Dependencies = []string{}
	}
	return cfg, nil
}
