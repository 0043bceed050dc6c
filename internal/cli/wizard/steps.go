package wizard

import (
	"strings"
	"unicode"

	"github.com/buildcli/springinit/internal/catalog"
	"github.com/buildcli/springinit/internal/core/project"
)

// dependencyStepPrefix is the prefix used for dependency group step IDs.
const dependencyStepPrefix = "dependencies_"

// Fallbacks used when neither the caller nor the catalog supplies a default.
const (
	fallbackName        = "demo"
	fallbackDescription = "Spring Boot Demo Project"
	fallbackGroupID     = "com.example"
	fallbackOutputDir   = "."
)

// DefaultSteps returns the fixed, catalog-independent steps in order.
// projectName and outputDir, when non-empty, override the computed defaults.
// Dependency steps depend on the catalog and are appended by DependencySteps.
func DefaultSteps(projectName, outputDir string) []Step {
	if outputDir == "" {
		outputDir = fallbackOutputDir
	}

	return []Step{
		{
			ID:          string(project.FieldName),
			Kind:        StepInput,
			Title:       "Project name",
			Description: "Also used as the base directory inside the archive.",
			Required:    true,
			Field:       project.FieldName,
			Default: func(_ project.Configuration, lookup DefaultLookup) string {
				if projectName != "" {
					return projectName
				}
				return lookupOr(lookup, "name.default", fallbackName)
			},
		},
		{
			ID:          string(project.FieldDescription),
			Kind:        StepInput,
			Title:       "Description",
			Description: "Press Enter to keep the default.",
			Field:       project.FieldDescription,
			Default: func(_ project.Configuration, lookup DefaultLookup) string {
				return lookupOr(lookup, "description.default", fallbackDescription)
			},
		},
		{
			ID:       string(project.FieldGroupID),
			Kind:     StepInput,
			Title:    "Group",
			Required: true,
			Field:    project.FieldGroupID,
			Default: func(_ project.Configuration, lookup DefaultLookup) string {
				return lookupOr(lookup, "groupId.default", fallbackGroupID)
			},
		},
		{
			ID:       string(project.FieldArtifactID),
			Kind:     StepInput,
			Title:    "Artifact",
			Required: true,
			Field:    project.FieldArtifactID,
			Default: func(cfg project.Configuration, _ DefaultLookup) string {
				return cfg.Name
			},
		},
		{
			ID:       string(project.FieldPackageName),
			Kind:     StepInput,
			Title:    "Package name",
			Required: true,
			Field:    project.FieldPackageName,
			Default: func(cfg project.Configuration, _ DefaultLookup) string {
				return project.DerivePackageName(cfg.GroupID, cfg.ArtifactID)
			},
		},
		{
			ID:          string(project.FieldOutputDir),
			Kind:        StepInput,
			Title:       "Output directory",
			Description: "The archive is extracted here.",
			Required:    true,
			Field:       project.FieldOutputDir,
			Default: func(project.Configuration, DefaultLookup) string {
				return outputDir
			},
		},
		{
			ID:       string(project.FieldBuildSystem),
			Kind:     StepSelect,
			Title:    "Build system",
			Field:    project.FieldBuildSystem,
			Category: catalog.KeyType,
		},
		{
			ID:       string(project.FieldPackaging),
			Kind:     StepSelect,
			Title:    "Packaging",
			Field:    project.FieldPackaging,
			Category: catalog.KeyPackaging,
		},
		{
			ID:       string(project.FieldJavaVersion),
			Kind:     StepSelect,
			Title:    "Java version",
			Field:    project.FieldJavaVersion,
			Category: catalog.KeyJavaVersion,
		},
		{
			ID:       string(project.FieldBootVersion),
			Kind:     StepSelect,
			Title:    "Spring Boot version",
			Field:    project.FieldBootVersion,
			Category: catalog.KeyBootVersion,
		},
	}
}

// DependencySteps returns one multi-select step per dependency group, in
// catalog order.
func DependencySteps(cat *catalog.Catalog) []Step {
	steps := make([]Step, 0, len(cat.Dependencies))
	for _, g := range cat.Dependencies {
		steps = append(steps, Step{
			ID:          DependencyStepID(g.Name),
			Kind:        StepMultiSelect,
			Title:       g.Name,
			Description: "Space to toggle, Enter to continue.",
			Group:       g.Name,
		})
	}
	return steps
}

// DependencyStepID returns the step id for a dependency group:
// "Developer Tools" becomes "dependencies_developer_tools".
func DependencyStepID(group string) string {
	var sb strings.Builder
	sb.WriteString(dependencyStepPrefix)
	lastUnderscore := true
	for _, r := range strings.ToLower(strings.TrimSpace(group)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			sb.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.TrimSuffix(sb.String(), "_")
}

// IsDependencyStep reports whether id names a dependency group step.
func IsDependencyStep(id string) bool {
	return strings.HasPrefix(id, dependencyStepPrefix)
}

func lookupOr(lookup DefaultLookup, path, fallback string) string {
	if lookup != nil {
		if v, ok := lookup(path); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return fallback
}
