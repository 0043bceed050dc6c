package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/buildcli/springinit/internal/cli/wizard"
)

// DependenciesKey is the answer key holding dependencies for every group at
// once, as a comma-separated list of ids or display names.
const DependenciesKey = "dependencies"

// HeadlessPrompter implements wizard.Prompter from the answers stored in a
// HeadlessManager. Prompts without an answer take the field default.
type HeadlessPrompter struct {
	headless *HeadlessManager
	out      io.Writer
}

var _ wizard.Prompter = (*HeadlessPrompter)(nil)

// PrompterOption configures a HeadlessPrompter.
type PrompterOption func(*HeadlessPrompter)

// WithOutput sets where the confirmation summary is printed.
func WithOutput(w io.Writer) PrompterOption {
	return func(p *HeadlessPrompter) { p.out = w }
}

// NewHeadlessPrompter creates a HeadlessPrompter backed by hm. The
// confirmation summary goes to os.Stderr unless WithOutput is given.
func NewHeadlessPrompter(hm *HeadlessManager, opts ...PrompterOption) *HeadlessPrompter {
	p := &HeadlessPrompter{headless: hm, out: os.Stderr}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Input returns the stored answer, or the field default when none is stored.
func (p *HeadlessPrompter) Input(ctx context.Context, f wizard.Field) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	v, ok := p.answer(f.ID)
	if !ok {
		v = f.Default
	}
	if f.Required && strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("%w: %s", ErrHeadlessNoAnswer, f.ID)
	}
	if f.Validate != nil {
		if err := f.Validate(v); err != nil {
			return "", fmt.Errorf("%s: %w", f.ID, err)
		}
	}
	return v, nil
}

// Select resolves the stored answer against the choices by id first, then by
// display name. Without an answer it returns the default choice, or the first
// choice when no default is declared. Unmatched answers are returned as is so
// the wizard can reject them.
func (p *HeadlessPrompter) Select(ctx context.Context, f wizard.Field) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	v, ok := p.answer(f.ID)
	if !ok {
		if f.Default != "" {
			return f.Default, nil
		}
		if len(f.Choices) == 0 {
			return "", fmt.Errorf("%w: %s", ErrHeadlessNoAnswer, f.ID)
		}
		return f.Choices[0].Label, nil
	}

	if c, found := matchChoice(f.Choices, v); found {
		return c.Label, nil
	}
	return v, nil
}

// MultiSelect reads a comma-separated answer stored under the field id, or
// else under DependenciesKey. Entries from the shared key that belong to
// another group are skipped; entries under the field id must all match.
func (p *HeadlessPrompter) MultiSelect(ctx context.Context, f wizard.Field) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, own := p.answer(f.ID)
	if !own {
		shared, ok := p.answer(DependenciesKey)
		if !ok {
			return nil, nil
		}
		v = shared
	}

	var labels []string
	for _, entry := range SplitList(v) {
		c, found := matchChoice(f.Choices, entry)
		switch {
		case found:
			labels = append(labels, c.Label)
		case own:
			labels = append(labels, entry)
		}
	}
	return labels, nil
}

// Confirm prints the field description, then parses the stored answer as a
// boolean. Without an answer it uses the field default, and without a
// default it confirms.
func (p *HeadlessPrompter) Confirm(ctx context.Context, f wizard.Field) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if f.Description != "" && p.out != nil {
		_, _ = fmt.Fprintln(p.out, strings.TrimRight(f.Description, "\n"))
	}

	v, ok := p.answer(f.ID)
	if !ok {
		v = f.Default
	}
	if strings.TrimSpace(v) == "" {
		return true, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", f.ID, v)
	}
	return b, nil
}

func (p *HeadlessPrompter) answer(id string) (string, bool) {
	if p.headless == nil {
		return "", false
	}
	return p.headless.GetDefault(id)
}

// SplitList splits a comma-separated answer, dropping blank entries.
func SplitList(v string) []string {
	var out []string
	for part := range strings.SplitSeq(v, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func matchChoice(choices []wizard.Choice, v string) (wizard.Choice, bool) {
	v = strings.TrimSpace(v)
	for _, c := range choices {
		if c.Value == v {
			return c, true
		}
	}
	for _, c := range choices {
		if strings.EqualFold(c.Label, v) {
			return c, true
		}
	}
	return wizard.Choice{}, false
}
