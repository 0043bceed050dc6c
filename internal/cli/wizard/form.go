package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/huh"
)

// FormPrompter implements Prompter with charmbracelet/huh forms.
// Each prompt runs as its own single-group form.
type FormPrompter struct {
	theme      *huh.Theme
	accessible bool
	input      io.Reader
	output     io.Writer
}

// FormOption configures a FormPrompter.
type FormOption func(*FormPrompter)

// WithAccessible switches huh into accessible (line based) mode.
func WithAccessible(accessible bool) FormOption {
	return func(p *FormPrompter) { p.accessible = accessible }
}

// WithIO redirects form input and output. Used with accessible mode in tests.
func WithIO(in io.Reader, out io.Writer) FormOption {
	return func(p *FormPrompter) {
		p.input = in
		p.output = out
	}
}

// NewFormPrompter creates a FormPrompter. noColor selects the plain theme.
func NewFormPrompter(noColor bool, opts ...FormOption) *FormPrompter {
	p := &FormPrompter{theme: newWizardTheme(noColor)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Input prompts for free text, pre-filled with the field default.
func (p *FormPrompter) Input(ctx context.Context, f Field) (string, error) {
	value := f.Default
	inp := huh.NewInput().
		Title(f.Title).
		Description(f.Description).
		Value(&value)
	if f.Default != "" {
		inp = inp.Placeholder(f.Default)
	}
	if f.Validate != nil {
		inp = inp.Validate(f.Validate)
	}

	if err := p.run(ctx, inp); err != nil {
		return "", err
	}
	return value, nil
}

// Select prompts for exactly one choice and returns its label.
func (p *FormPrompter) Select(ctx context.Context, f Field) (string, error) {
	selected := f.Default
	sel := huh.NewSelect[string]().
		Title(f.Title).
		Description(f.Description).
		Options(labelOptions(f.Choices)...).
		Value(&selected)
	if f.Validate != nil {
		sel = sel.Validate(f.Validate)
	}

	if err := p.run(ctx, sel); err != nil {
		return "", err
	}
	return selected, nil
}

// MultiSelect prompts for any subset of the choices and returns their labels.
func (p *FormPrompter) MultiSelect(ctx context.Context, f Field) ([]string, error) {
	var selected []string
	ms := huh.NewMultiSelect[string]().
		Title(f.Title).
		Description(f.Description).
		Options(labelOptions(f.Choices)...).
		Filterable(true).
		Value(&selected)

	if err := p.run(ctx, ms); err != nil {
		return nil, err
	}
	return selected, nil
}

// Confirm shows the field description as a note and asks yes or no.
func (p *FormPrompter) Confirm(ctx context.Context, f Field) (bool, error) {
	ok, err := strconv.ParseBool(f.Default)
	if err != nil {
		ok = false
	}

	fields := []huh.Field{}
	if f.Description != "" {
		fields = append(fields, huh.NewNote().Description(f.Description))
	}
	fields = append(fields, huh.NewConfirm().
		Title(f.Title).
		Affirmative("Generate").
		Negative("Cancel").
		Value(&ok))

	if err := p.run(ctx, fields...); err != nil {
		return false, err
	}
	return ok, nil
}

// run executes fields as one form, mapping an abort to ErrCancelled.
func (p *FormPrompter) run(ctx context.Context, fields ...huh.Field) error {
	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(p.theme).
		WithAccessible(p.accessible)
	if p.input != nil {
		form = form.WithInput(p.input)
	}
	if p.output != nil {
		form = form.WithOutput(p.output)
	}

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return ErrCancelled
		}
		return fmt.Errorf("wizard form: %w", err)
	}
	return nil
}

// labelOptions builds huh options keyed and valued by label, since the
// wizard maps labels back to catalog ids itself.
func labelOptions(choices []Choice) []huh.Option[string] {
	opts := make([]huh.Option[string], len(choices))
	for i, c := range choices {
		key := c.Label
		if c.Desc != "" {
			key = c.Label + " - " + c.Desc
		}
		opts[i] = huh.NewOption(key, c.Label)
	}
	return opts
}
