package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildcli/springinit/internal/config"
	"github.com/buildcli/springinit/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "springinit",
	Short: "Scaffold Spring Boot projects from a Spring Initializr service",
	Long: `springinit fetches the project catalog of a Spring Initializr service,
walks you through the project settings and dependencies, then downloads
and unpacks the generated project archive.

Settings are read from flags, SPRINGINIT_* environment variables and
the config file, in that order of precedence.`,
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: loadDependencies,
}

// @MX:ANCHOR: [AUTO] Execute is the main entry point for the springinit CLI
// @MX:REASON: [AUTO] fan_in=2, called from cmd/springinit/main.go and root_test.go
// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("springinit %s\n", version.GetFullVersion()))

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default: <user config dir>/springinit/config.yaml)")
	pf.String("base-url", "", "Initializr service base URL (default: https://start.spring.io)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("theme", "", "Color theme: dark or light")
	pf.Bool("no-color", false, "Disable colored output")
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.Duration("timeout", 0, "HTTP timeout for catalog and archive requests (0 disables)")
}

// loadDependencies resolves settings for the executing command and wires
// the composition root.
func loadDependencies(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load(getStringFlag(cmd, "config"), cmd.Flags())
	if err != nil {
		return err
	}
	if getBoolFlag(cmd, "verbose") {
		settings.LogLevel = "debug"
	}
	deps = newDependencies(settings, cmd.ErrOrStderr())
	return nil
}

// getStringFlag returns a flag value, or "" when the flag is not defined.
func getStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return v
}

// getBoolFlag returns a flag value, or false when the flag is not defined.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return v
}
