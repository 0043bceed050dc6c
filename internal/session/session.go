// Package session runs one scaffolding session end to end: fetch the
// catalog, run the wizard, build the generation request, download the
// archive and extract it.
package session

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/buildcli/springinit/internal/catalog"
	"github.com/buildcli/springinit/internal/cli/wizard"
	"github.com/buildcli/springinit/internal/config"
	"github.com/buildcli/springinit/internal/core/project"
	"github.com/buildcli/springinit/internal/core/request"
	"github.com/buildcli/springinit/internal/generate"
	"github.com/buildcli/springinit/internal/ui"
)

// CatalogSource provides the capability catalog.
// catalog.Fetcher and catalog.FileSource implement it.
type CatalogSource interface {
	Fetch(ctx context.Context) (*catalog.Catalog, error)
}

// ConfigWizard turns a catalog into a confirmed configuration.
// *wizard.Wizard implements it.
type ConfigWizard interface {
	Run(ctx context.Context, cat *catalog.Catalog) (project.Configuration, error)
}

// Generator downloads and extracts the generated archive.
// *generate.Driver implements it.
type Generator interface {
	Download(ctx context.Context, req request.Request, projectName string) (*generate.Result, error)
	Extract(ctx context.Context, archivePath, outputDir string) error
}

// Outcome describes a finished session.
type Outcome struct {
	Cancelled     bool                  // The user declined or aborted; nothing was generated
	DryRun        bool                  // The request was built but not sent
	Configuration project.Configuration // Confirmed configuration
	Request       request.Request       // Generation request
	Result        *generate.Result      // Archive and output locations, nil unless generated
}

// Session wires the collaborators of one run.
type Session struct {
	catalog   CatalogSource
	wizard    ConfigWizard
	requests  *request.Builder
	generator Generator
	progress  ui.Progress
	answers   *config.Answers
	allDeps   bool
	dryRun    bool
	logger    *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithProgress shows spinners while waiting on the service.
func WithProgress(p ui.Progress) Option {
	return func(s *Session) { s.progress = p }
}

// WithAnswers checks recorded answers against the catalog before the wizard runs.
func WithAnswers(a *config.Answers) Option {
	return func(s *Session) { s.answers = a }
}

// WithAllDependencies accepts answered dependencies that do not support the
// selected Spring Boot version. It must match the wizard's setting.
func WithAllDependencies(all bool) Option {
	return func(s *Session) { s.allDeps = all }
}

// WithDryRun stops after building the request.
func WithDryRun(dryRun bool) Option {
	return func(s *Session) { s.dryRun = dryRun }
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Session.
func New(src CatalogSource, wz ConfigWizard, requests *request.Builder, gen Generator, opts ...Option) *Session {
	s := &Session{
		catalog:   src,
		wizard:    wz,
		requests:  requests,
		generator: gen,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// @MX:ANCHOR: [AUTO] Run is the single entry point of a scaffolding run
// @MX:REASON: [AUTO] fan_in=2, called from the new command and session tests
// Run executes the session. Every failure is a *PhaseError naming the phase.
// A cancelled wizard returns an Outcome with Cancelled set and no error;
// nothing is downloaded or written in that case.
func (s *Session) Run(ctx context.Context) (*Outcome, error) {
	sp := s.spinner("Fetching catalog")
	cat, err := s.catalog.Fetch(ctx)
	sp.Stop()
	if err != nil {
		return nil, &PhaseError{Phase: PhaseCatalog, Err: err}
	}

	if s.answers != nil {
		if err := s.answers.Check(cat); err != nil {
			return nil, &PhaseError{Phase: PhaseWizard, Err: err}
		}
		if !s.allDeps {
			if err := s.answers.CheckCompatible(cat); err != nil {
				return nil, &PhaseError{Phase: PhaseWizard, Err: err}
			}
		}
	}

	cfg, err := s.wizard.Run(ctx, cat)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			s.logger.Debug("session cancelled", "reason", err)
			return &Outcome{Cancelled: true}, nil
		}
		return nil, &PhaseError{Phase: PhaseWizard, Err: err}
	}

	req, err := s.requests.Build(cfg)
	if err != nil {
		return nil, &PhaseError{Phase: PhaseRequest, Err: err}
	}
	out := &Outcome{Configuration: cfg, Request: req}

	if s.dryRun {
		out.DryRun = true
		return out, nil
	}

	sp = s.spinner("Downloading " + generate.ArchiveName(cfg.Name))
	res, err := s.generator.Download(ctx, req, cfg.Name)
	sp.Stop()
	if err != nil {
		return nil, &PhaseError{Phase: PhaseDownload, Err: err}
	}
	res.OutputDir = cfg.OutputDir
	out.Result = res

	if err := s.generator.Extract(ctx, res.ArchivePath, cfg.OutputDir); err != nil {
		return out, &PhaseError{Phase: PhaseExtract, Err: err, ArchivePath: res.ArchivePath}
	}

	s.logger.Info("project generated", "name", cfg.Name, "dir", cfg.OutputDir, "archive", res.ArchivePath)
	return out, nil
}

func (s *Session) spinner(title string) ui.Spinner {
	if s.progress == nil {
		return nopSpinner{}
	}
	return s.progress.Spinner(title)
}

type nopSpinner struct{}

func (nopSpinner) SetTitle(string) {}
func (nopSpinner) Stop()           {}
