package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/buildcli/springinit/internal/catalog"
	"github.com/buildcli/springinit/internal/ui"
)

// CatalogCmd prints the service catalog.
var CatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the options offered by the Initializr service",
	Long: `Show the project types, packagings, Java and Spring Boot versions and
dependencies offered by the Initializr service. The ids in the tables are
the values accepted in answers files.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(CatalogCmd)

	CatalogCmd.Flags().Bool("json", false, "Print the parsed catalog as JSON")
	CatalogCmd.Flags().String("catalog-file", "", "Read the catalog from a local JSON file")
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	sp := deps.Progress.Spinner("Fetching catalog")
	cat, err := deps.CatalogSource(getStringFlag(cmd, "catalog-file")).Fetch(cmd.Context())
	sp.Stop()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if getBoolFlag(cmd, "json") {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cat)
	}
	return printCatalog(w, deps.Theme, cat)
}

// printCatalog writes one table per category followed by the dependency table.
func printCatalog(w io.Writer, theme *ui.Theme, cat *catalog.Catalog) error {
	categories := []struct {
		title string
		c     catalog.Category
	}{
		{"Project types", cat.Type},
		{"Packaging", cat.Packaging},
		{"Java versions", cat.JavaVersion},
		{"Spring Boot versions", cat.BootVersion},
		{"Languages", cat.Language},
	}

	for _, entry := range categories {
		if entry.c.Empty() {
			continue
		}
		rows := make([][]string, 0, len(entry.c.Options))
		for _, o := range entry.c.Options {
			def := ""
			if o.ID == entry.c.Default {
				def = "*"
			}
			rows = append(rows, []string{o.ID, o.Name, def})
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n\n", theme.Style(theme.Colors.Secondary).Bold(true).Render(entry.title),
			ui.RenderTable(theme, []string{"ID", "Name", "Default"}, rows)); err != nil {
			return err
		}
	}

	var rows [][]string
	for _, g := range cat.Dependencies {
		for _, o := range g.Options {
			rows = append(rows, []string{g.Name, o.ID, o.Name, o.VersionRange})
		}
	}
	if len(rows) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", theme.Style(theme.Colors.Secondary).Bold(true).Render("Dependencies"),
		ui.RenderTable(theme, []string{"Group", "ID", "Name", "Versions"}, rows))
	return err
}
