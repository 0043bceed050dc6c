package project

import (
	"fmt"
	"slices"

	"github.com/buildcli/springinit/internal/catalog"
)

// Configuration is the finalized set of user choices used to build the
// generation request. It is a value type; Builder.Finalize hands out copies.
type Configuration struct {
	Name          string   // Project name, also used as base directory and archive name.
	Description   string   // Optional project description.
	GroupID       string   // Maven group id.
	ArtifactID    string   // Maven artifact id.
	PackageName   string   // Root Java package.
	OutputDir     string   // Local directory the archive is extracted into.
	BuildSystemID string   // Id from the catalog "type" category.
	PackagingID   string   // Id from the catalog "packaging" category.
	JavaVersionID string   // Id from the catalog "javaVersion" category.
	BootVersionID string   // Id from the catalog "bootVersion" category.
	Dependencies  []string // Selected dependency ids in accumulation order.
}

// Clone returns a deep copy of the configuration.
func (c Configuration) Clone() Configuration {
	c.Dependencies = slices.Clone(c.Dependencies)
	return c
}

// Validate checks every chosen id against the catalog. Empty choice ids are
// accepted when the matching category is empty, since the wizard skips
// categories the catalog does not provide.
func (c Configuration) Validate(cat *catalog.Catalog) error {
	choices := []struct {
		key string
		id  string
	}{
		{catalog.KeyType, c.BuildSystemID},
		{catalog.KeyPackaging, c.PackagingID},
		{catalog.KeyJavaVersion, c.JavaVersionID},
		{catalog.KeyBootVersion, c.BootVersionID},
	}
	for _, ch := range choices {
		category := cat.Category(ch.key)
		if ch.id == "" && category.Empty() {
			continue
		}
		if _, ok := category.ByID(ch.id); !ok {
			return fmt.Errorf("%w: %s %q", ErrUnknownID, ch.key, ch.id)
		}
	}

	for _, id := range c.Dependencies {
		if _, _, ok := cat.Dependency(id); !ok {
			return fmt.Errorf("%w: dependency %q", ErrUnknownID, id)
		}
	}
	return nil
}
