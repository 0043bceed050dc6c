package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/buildcli/springinit/internal/cli/wizard"
	"github.com/buildcli/springinit/internal/config"
	"github.com/buildcli/springinit/internal/core/request"
	"github.com/buildcli/springinit/internal/session"
	"github.com/buildcli/springinit/internal/ui"
)

// NewCmd scaffolds a project.
var NewCmd = &cobra.Command{
	Use:   "new [project-name]",
	Short: "Generate a new Spring Boot project",
	Long: `Generate a new Spring Boot project.

The catalog is fetched from the Initializr service, the wizard asks for the
project settings and dependencies, and after confirmation the generated
archive is downloaded to <project-name>.zip and unpacked into the output
directory. The archive is kept after extraction.

Without a terminal, or with --non-interactive or --answers, every step takes
its answer from the answers file or falls back to the catalog default.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(NewCmd)

	NewCmd.Flags().StringP("output", "o", "", "Directory to extract the project into (default: current directory)")
	NewCmd.Flags().Bool("non-interactive", false, "Never prompt; use answers and catalog defaults")
	NewCmd.Flags().String("answers", "", "YAML answers file for non-interactive runs")
	NewCmd.Flags().Bool("dry-run", false, "Print the generation URL instead of downloading")
	NewCmd.Flags().Bool("all-dependencies", false, "Offer dependencies incompatible with the chosen Boot version")
	NewCmd.Flags().String("catalog-file", "", "Read the catalog from a local JSON file")
	NewCmd.Flags().String("archive-dir", ".", "Directory the downloaded archive is written to")
}

// runNew executes one scaffolding session.
func runNew(cmd *cobra.Command, args []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	var projectName string
	if len(args) > 0 {
		projectName = args[0]
	}

	var answers *config.Answers
	if path := getStringFlag(cmd, "answers"); path != "" {
		a, err := config.LoadAnswers(path)
		if err != nil {
			return err
		}
		answers = a
		deps.Headless.ForceHeadless(true)
		deps.Headless.SetDefaults(a.Defaults())
	}

	allDeps := getBoolFlag(cmd, "all-dependencies")
	wz := wizard.New(deps.Prompter(),
		wizard.WithProjectName(projectName),
		wizard.WithOutputDir(getStringFlag(cmd, "output")),
		wizard.WithAllDependencies(allDeps),
		wizard.WithRenderer(ui.MarkdownRenderer(deps.Theme)),
		wizard.WithLogger(deps.Logger),
	)

	sess := session.New(
		deps.CatalogSource(getStringFlag(cmd, "catalog-file")),
		wz,
		request.NewBuilder(deps.Settings.BaseURL),
		deps.Driver(getStringFlag(cmd, "archive-dir")),
		session.WithProgress(deps.Progress),
		session.WithAnswers(answers),
		session.WithAllDependencies(allDeps),
		session.WithDryRun(getBoolFlag(cmd, "dry-run")),
		session.WithLogger(deps.Logger),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out, err := sess.Run(ctx)
	if err != nil {
		var pe *session.PhaseError
		if errors.As(err, &pe) && pe.ArchivePath != "" {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "The downloaded archive was kept at %s\n", pe.ArchivePath)
		}
		return err
	}

	w := cmd.OutOrStdout()
	switch {
	case out.Cancelled:
		_, _ = fmt.Fprintln(w, "Cancelled. Nothing was generated.")
	case out.DryRun:
		_, _ = fmt.Fprintln(w, out.Request.URL)
	default:
		_, _ = fmt.Fprintln(w, deps.Theme.Success(fmt.Sprintf("Project %s generated in %s", out.Configuration.Name, out.Result.OutputDir)))
		_, _ = fmt.Fprintf(w, "Archive: %s\n", out.Result.ArchivePath)
	}
	return nil
}
