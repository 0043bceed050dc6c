package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/buildcli/springinit/internal/catalog"
	"github.com/buildcli/springinit/internal/core/project"
)

// Wizard runs the configuration steps against a Prompter.
type Wizard struct {
	prompter        Prompter
	projectName     string
	outputDir       string
	allDependencies bool
	render          func(string) string
	logger          *slog.Logger
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithProjectName presets the default project name, e.g. from a command argument.
func WithProjectName(name string) Option {
	return func(w *Wizard) { w.projectName = strings.TrimSpace(name) }
}

// WithOutputDir presets the default output directory.
func WithOutputDir(dir string) Option {
	return func(w *Wizard) { w.outputDir = strings.TrimSpace(dir) }
}

// WithAllDependencies disables hiding dependencies that are incompatible
// with the selected Spring Boot version.
func WithAllDependencies(all bool) Option {
	return func(w *Wizard) { w.allDependencies = all }
}

// WithRenderer sets the function that renders the markdown summary shown
// before confirmation. The default leaves the markdown as is.
func WithRenderer(render func(string) string) Option {
	return func(w *Wizard) {
		if render != nil {
			w.render = render
		}
	}
}

// WithLogger sets the wizard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Wizard) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New creates a Wizard driving the given prompter.
func New(p Prompter, opts ...Option) *Wizard {
	w := &Wizard{
		prompter: p,
		render:   func(s string) string { return s },
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// @MX:ANCHOR: [AUTO] Run is the only producer of project.Configuration from user input
// @MX:REASON: [AUTO] fan_in=3, called from session.Run, wizard tests, session tests
// Run executes every step in order, asks for confirmation and returns the
// finalized configuration. Declining, aborting a prompt or cancelling ctx
// yields ErrCancelled.
func (w *Wizard) Run(ctx context.Context, cat *catalog.Catalog) (project.Configuration, error) {
	if cat == nil {
		return project.Configuration{}, ErrNoCatalog
	}

	b := project.NewBuilder()
	steps := DefaultSteps(w.projectName, w.outputDir)
	steps = append(steps, DependencySteps(cat)...)

	for i := range steps {
		if err := ctx.Err(); err != nil {
			return project.Configuration{}, fmt.Errorf("%w: %w", ErrCancelled, err)
		}
		if err := w.runStep(ctx, cat, b, &steps[i]); err != nil {
			return project.Configuration{}, err
		}
	}

	cfg, err := b.Finalize()
	if err != nil {
		return project.Configuration{}, fmt.Errorf("wizard: %w", err)
	}
	if err := cfg.Validate(cat); err != nil {
		return project.Configuration{}, fmt.Errorf("wizard: %w", err)
	}

	ok, err := w.prompter.Confirm(ctx, Field{
		ID:          ConfirmID,
		Title:       "Generate this project?",
		Description: w.render(Summary(cfg, cat)),
		Default:     strconv.FormatBool(true),
	})
	if err != nil {
		return project.Configuration{}, stepError(ConfirmID, err)
	}
	if !ok {
		return project.Configuration{}, ErrCancelled
	}

	return cfg, nil
}

// runStep dispatches a step to the matching prompt.
func (w *Wizard) runStep(ctx context.Context, cat *catalog.Catalog, b *project.Builder, s *Step) error {
	switch s.Kind {
	case StepInput:
		return w.runInput(ctx, cat, b, s)
	case StepSelect:
		return w.runSelect(ctx, cat, b, s)
	case StepMultiSelect:
		return w.runMultiSelect(ctx, cat, b, s)
	default:
		return fmt.Errorf("wizard: step %s: unknown kind %d", s.ID, s.Kind)
	}
}

// runInput prompts for free text. The answer is trimmed and NFC-normalized;
// an empty answer takes the default.
func (w *Wizard) runInput(ctx context.Context, cat *catalog.Catalog, b *project.Builder, s *Step) error {
	def := ""
	if s.Default != nil {
		def = normalize(s.Default(b.Snapshot(), cat.DefaultValue))
	}

	required := s.Required
	field := Field{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Default:     def,
		Required:    required,
		Validate: func(val string) error {
			if required && resolve(val, def) == "" {
				return ErrRequired
			}
			return nil
		},
	}

	raw, err := w.prompter.Input(ctx, field)
	if err != nil {
		return stepError(s.ID, err)
	}

	v := resolve(raw, def)
	if required && v == "" {
		return fmt.Errorf("%w: %s", ErrRequired, s.ID)
	}
	b.Set(s.Field, v)
	return nil
}

// runSelect prompts for one option of a catalog category and stores its id.
// An empty category skips the step and leaves the field empty.
func (w *Wizard) runSelect(ctx context.Context, cat *catalog.Catalog, b *project.Builder, s *Step) error {
	category := cat.Category(s.Category)
	if category.Empty() {
		w.logger.Debug("skipping step, catalog category is empty", "step", s.ID, "category", s.Category)
		return nil
	}

	field := Field{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Default:     category.DefaultName(),
		Required:    true,
		Choices:     choicesFor(category.Options),
		Validate: func(val string) error {
			if _, ok := category.ByName(val); !ok {
				return ErrInvalidChoice
			}
			return nil
		},
	}

	label, err := w.prompter.Select(ctx, field)
	if err != nil {
		return stepError(s.ID, err)
	}

	opt, ok := category.ByName(label)
	if !ok {
		return fmt.Errorf("%w: %q is not offered by %s", ErrInvalidChoice, label, s.ID)
	}
	b.Set(s.Field, opt.ID)
	return nil
}

// runMultiSelect prompts for any subset of a dependency group. Selected ids
// are appended in the group's declaration order.
func (w *Wizard) runMultiSelect(ctx context.Context, cat *catalog.Catalog, b *project.Builder, s *Step) error {
	idx := slices.IndexFunc(cat.Dependencies, func(g catalog.DependencyGroup) bool {
		return g.Name == s.Group
	})
	if idx < 0 {
		return fmt.Errorf("wizard: step %s: unknown dependency group %q", s.ID, s.Group)
	}

	options := w.visibleDependencies(cat.Dependencies[idx], b.Snapshot().BootVersionID)
	if len(options) == 0 {
		w.logger.Debug("skipping step, no compatible dependencies", "step", s.ID, "group", s.Group)
		return nil
	}

	labels, err := w.prompter.MultiSelect(ctx, Field{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Choices:     choicesFor(options),
	})
	if err != nil {
		return stepError(s.ID, err)
	}

	for _, l := range labels {
		if !slices.ContainsFunc(options, func(o catalog.Option) bool { return o.Name == l }) {
			return fmt.Errorf("%w: %q is not offered by %s", ErrInvalidChoice, l, s.ID)
		}
	}

	var ids []string
	for _, o := range options {
		if slices.Contains(labels, o.Name) {
			ids = append(ids, o.ID)
		}
	}
	b.AddDependencies(ids...)
	return nil
}

// visibleDependencies filters a group to the options compatible with the
// selected boot version unless filtering is disabled.
func (w *Wizard) visibleDependencies(g catalog.DependencyGroup, bootVersion string) []catalog.Option {
	if w.allDependencies || bootVersion == "" {
		return g.Options
	}
	var visible []catalog.Option
	for _, o := range g.Options {
		if catalog.Compatible(o.VersionRange, bootVersion) {
			visible = append(visible, o)
			continue
		}
		w.logger.Debug("hiding incompatible dependency", "id", o.ID, "range", o.VersionRange, "boot", bootVersion)
	}
	return visible
}

func choicesFor(opts []catalog.Option) []Choice {
	choices := make([]Choice, len(opts))
	for i, o := range opts {
		choices[i] = Choice{Label: o.Name, Value: o.ID, Desc: o.Description}
	}
	return choices
}

// stepError passes cancellation through untouched and names the step otherwise.
func stepError(id string, err error) error {
	if errors.Is(err, ErrCancelled) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	return fmt.Errorf("wizard: step %s: %w", id, err)
}

func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func resolve(raw, def string) string {
	if v := normalize(raw); v != "" {
		return v
	}
	return def
}
