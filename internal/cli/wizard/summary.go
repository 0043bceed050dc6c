package wizard

import (
	"fmt"
	"strings"

	"github.com/buildcli/springinit/internal/catalog"
	"github.com/buildcli/springinit/internal/core/project"
)

// Summary renders cfg as markdown for the confirmation prompt. Catalog ids are
// shown with their display names.
func Summary(cfg project.Configuration, cat *catalog.Catalog) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", cfg.Name)
	if cfg.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", cfg.Description)
	}

	sb.WriteString("| Setting | Value |\n|---|---|\n")
	rows := [][2]string{
		{"Group", cfg.GroupID},
		{"Artifact", cfg.ArtifactID},
		{"Package", cfg.PackageName},
		{"Output directory", cfg.OutputDir},
		{"Build system", displayName(cat, catalog.KeyType, cfg.BuildSystemID)},
		{"Packaging", displayName(cat, catalog.KeyPackaging, cfg.PackagingID)},
		{"Java", displayName(cat, catalog.KeyJavaVersion, cfg.JavaVersionID)},
		{"Spring Boot", displayName(cat, catalog.KeyBootVersion, cfg.BootVersionID)},
	}
	for _, r := range rows {
		fmt.Fprintf(&sb, "| %s | %s |\n", r[0], escapeCell(r[1]))
	}

	sb.WriteString("\n## Dependencies\n\n")
	if len(cfg.Dependencies) == 0 {
		sb.WriteString("_none_\n")
		return sb.String()
	}
	for _, id := range cfg.Dependencies {
		name := id
		if cat != nil {
			if _, o, ok := cat.Dependency(id); ok {
				name = o.Name
			}
		}
		fmt.Fprintf(&sb, "- %s (`%s`)\n", name, id)
	}
	return sb.String()
}

func displayName(cat *catalog.Catalog, key, id string) string {
	if id == "" {
		return "-"
	}
	if cat != nil {
		if o, ok := cat.Category(key).ByID(id); ok {
			return o.Name
		}
	}
	return id
}

func escapeCell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}
