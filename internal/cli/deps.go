// Package cli provides the Cobra command tree and dependency injection
// wiring for the springinit CLI. This file defines the Dependencies struct
// (Composition Root) that wires the domain packages together.
package cli

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/buildcli/springinit/internal/catalog"
	"github.com/buildcli/springinit/internal/cli/wizard"
	"github.com/buildcli/springinit/internal/config"
	"github.com/buildcli/springinit/internal/generate"
	"github.com/buildcli/springinit/internal/session"
	"github.com/buildcli/springinit/internal/ui"
)

// Dependencies holds the services used by CLI commands. This is the
// Composition Root: the only place where concrete types are instantiated
// and wired together.
type Dependencies struct {
	Settings   *config.Settings
	HTTPClient *http.Client
	Theme      *ui.Theme
	Headless   *ui.HeadlessManager
	Progress   ui.Progress
	Logger     *slog.Logger
	Stderr     io.Writer
}

// deps is the global dependencies instance, set by loadDependencies before
// any command runs.
var deps *Dependencies

// @MX:ANCHOR: [AUTO] newDependencies is the Composition Root that wires all domain packages
// @MX:REASON: [AUTO] fan_in=3, called from root.go loadDependencies, deps_test.go, new_test.go
// newDependencies wires the services for the given settings. Log output goes
// to stderr so stdout stays usable for piped output.
func newDependencies(settings *config.Settings, stderr io.Writer) *Dependencies {
	hm := ui.NewHeadlessManager()
	if settings.NonInteractive {
		hm.ForceHeadless(true)
	}
	theme := ui.NewTheme(ui.ThemeConfig{Mode: settings.Theme, NoColor: settings.NoColor})

	return &Dependencies{
		Settings:   settings,
		HTTPClient: &http.Client{Timeout: settings.Timeout},
		Theme:      theme,
		Headless:   hm,
		Progress:   ui.NewProgress(theme, hm),
		Logger:     newLogger(settings.LogLevel, stderr),
		Stderr:     stderr,
	}
}

// newLogger creates a text logger on w filtered at level. Unknown levels
// fall back to warn.
func newLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// CatalogSource returns the catalog source for a command: the local file
// when path is set, the service endpoint otherwise.
func (d *Dependencies) CatalogSource(path string) session.CatalogSource {
	if path != "" {
		return catalog.FileSource{Path: path}
	}
	return catalog.NewFetcher(d.Settings.BaseURL, d.HTTPClient, d.Logger)
}

// Prompter returns the headless prompter when no terminal is attached or
// non-interactive mode is forced, the interactive form prompter otherwise.
func (d *Dependencies) Prompter() wizard.Prompter {
	if d.Headless.IsHeadless() {
		return ui.NewHeadlessPrompter(d.Headless, ui.WithOutput(d.Stderr))
	}
	return wizard.NewFormPrompter(d.Theme.NoColor)
}

// Driver returns a generation driver that reports extraction progress.
func (d *Dependencies) Driver(archiveDir string) *generate.Driver {
	extractor := &generate.ZipExtractor{
		Progress: func(total int) generate.Reporter {
			return d.Progress.Start("Extracting", total)
		},
	}
	return generate.NewDriver(
		generate.NewHTTPFetcher(d.HTTPClient),
		extractor,
		generate.WithArchiveDir(archiveDir),
		generate.WithLogger(d.Logger),
	)
}
