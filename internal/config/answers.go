package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/buildcli/springinit/internal/catalog"
	"github.com/buildcli/springinit/internal/cli/wizard"
	"github.com/buildcli/springinit/internal/core/project"
)

// Answers-file keys that are not configuration fields.
const (
	AnswerDependencies = "dependencies"
	AnswerConfirm      = "confirm"
)

// choiceKeys maps single-choice answer keys to their catalog category.
var choiceKeys = map[project.Field]string{
	project.FieldBuildSystem: catalog.KeyType,
	project.FieldPackaging:   catalog.KeyPackaging,
	project.FieldJavaVersion: catalog.KeyJavaVersion,
	project.FieldBootVersion: catalog.KeyBootVersion,
}

// textKeys lists the free-text answer keys.
var textKeys = []project.Field{
	project.FieldName,
	project.FieldDescription,
	project.FieldGroupID,
	project.FieldArtifactID,
	project.FieldPackageName,
	project.FieldOutputDir,
}

// Answers holds pre-recorded wizard answers for non-interactive runs.
//
// Example file:
//
//	project_name: demo
//	group_id: com.example
//	boot_version: 3.2.0
//	dependencies: [web, lombok]
//	confirm: true
type Answers struct {
	Values       map[string]string // Step id to answer; choice answers may be ids or display names
	Dependencies []string          // Dependency ids or display names across all groups
	Confirm      *bool             // Nil leaves the confirmation at its default
}

// LoadAnswers reads and decodes an answers file.
func LoadAnswers(path string) (*Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAnswersNotFound, path)
		}
		return nil, fmt.Errorf("read answers file %s: %w", path, err)
	}
	a, err := ParseAnswers(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// ParseAnswers decodes answers from YAML. Scalars of any YAML type are kept
// as their string form so that "java_version: 21" works unquoted.
func ParseAnswers(data []byte) (*Answers, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}

	a := &Answers{Values: make(map[string]string)}
	var errs []ValidationError

	for _, key := range slices.Sorted(maps.Keys(raw)) {
		node := raw[key]
		switch {
		case key == AnswerDependencies:
			deps, err := decodeList(&node)
			if err != nil {
				errs = append(errs, ValidationError{Field: key, Message: err.Error(), Wrapped: ErrInvalidAnswers})
				continue
			}
			a.Dependencies = deps

		case key == AnswerConfirm:
			var b bool
			if err := node.Decode(&b); err != nil {
				errs = append(errs, ValidationError{Field: key, Message: "must be true or false", Value: node.Value, Wrapped: ErrInvalidAnswers})
				continue
			}
			a.Confirm = &b

		case wizard.IsDependencyStep(key):
			deps, err := decodeList(&node)
			if err != nil {
				errs = append(errs, ValidationError{Field: key, Message: err.Error(), Wrapped: ErrInvalidAnswers})
				continue
			}
			a.Values[key] = strings.Join(deps, ",")

		case isKnownKey(key):
			if node.Kind != yaml.ScalarNode {
				errs = append(errs, ValidationError{Field: key, Message: "must be a scalar value", Wrapped: ErrInvalidAnswers})
				continue
			}
			a.Values[key] = node.Value

		default:
			errs = append(errs, ValidationError{Field: key, Message: "unknown answer key", Wrapped: ErrInvalidAnswers})
		}
	}

	if len(errs) > 0 {
		return nil, &ValidationErrors{Errors: errs}
	}
	return a, nil
}

// Defaults flattens the answers into the headless default map: list values
// are comma-joined and the confirmation becomes "true" or "false".
func (a *Answers) Defaults() map[string]string {
	out := make(map[string]string, len(a.Values)+2)
	maps.Copy(out, a.Values)
	if len(a.Dependencies) > 0 {
		out[AnswerDependencies] = strings.Join(a.Dependencies, ",")
	}
	if a.Confirm != nil {
		out[AnswerConfirm] = strconv.FormatBool(*a.Confirm)
	}
	return out
}

// Check verifies that every choice answer and every shared dependency entry
// is offered by the catalog. Entries match an id exactly or a display name
// ignoring case, the same rule the headless prompter applies.
func (a *Answers) Check(cat *catalog.Catalog) error {
	var errs []ValidationError

	for _, field := range slices.Sorted(maps.Keys(choiceKeys)) {
		v, ok := a.Values[string(field)]
		if !ok {
			continue
		}
		category := cat.Category(choiceKeys[field])
		if _, found := matchOption(category.Options, v); found {
			continue
		}
		errs = append(errs, ValidationError{
			Field:   string(field),
			Message: fmt.Sprintf("not offered by the catalog; valid ids: %s", strings.Join(category.IDs(), ", ")),
			Value:   v,
			Wrapped: ErrInvalidAnswers,
		})
	}

	for _, d := range a.Dependencies {
		if _, found := matchDependency(cat, d); found {
			continue
		}
		errs = append(errs, ValidationError{
			Field:   AnswerDependencies,
			Message: "unknown dependency",
			Value:   d,
			Wrapped: ErrInvalidAnswers,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// CheckCompatible verifies that every answered dependency supports the
// answered Spring Boot version, or the catalog default when none is answered.
// Unknown entries are left to Check.
func (a *Answers) CheckCompatible(cat *catalog.Catalog) error {
	boot := cat.BootVersion.Default
	if v, ok := a.Values[string(project.FieldBootVersion)]; ok {
		if o, found := matchOption(cat.BootVersion.Options, v); found {
			boot = o.ID
		}
	}
	if boot == "" {
		return nil
	}

	type entry struct{ key, value string }
	var entries []entry
	for _, d := range a.Dependencies {
		entries = append(entries, entry{AnswerDependencies, d})
	}
	for _, key := range slices.Sorted(maps.Keys(a.Values)) {
		if !wizard.IsDependencyStep(key) {
			continue
		}
		for part := range strings.SplitSeq(a.Values[key], ",") {
			if p := strings.TrimSpace(part); p != "" {
				entries = append(entries, entry{key, p})
			}
		}
	}

	var errs []ValidationError
	for _, e := range entries {
		o, found := matchDependency(cat, e.value)
		if !found || catalog.Compatible(o.VersionRange, boot) {
			continue
		}
		errs = append(errs, ValidationError{
			Field:   e.key,
			Message: fmt.Sprintf("%s requires Spring Boot %s, selected %s", o.ID, o.VersionRange, boot),
			Value:   e.value,
			Wrapped: ErrInvalidAnswers,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// matchOption finds v by id, then by display name ignoring case.
func matchOption(opts []catalog.Option, v string) (catalog.Option, bool) {
	v = strings.TrimSpace(v)
	if i := slices.IndexFunc(opts, func(o catalog.Option) bool { return o.ID == v }); i >= 0 {
		return opts[i], true
	}
	if i := slices.IndexFunc(opts, func(o catalog.Option) bool { return strings.EqualFold(o.Name, v) }); i >= 0 {
		return opts[i], true
	}
	return catalog.Option{}, false
}

// matchDependency applies matchOption across every dependency group.
func matchDependency(cat *catalog.Catalog, v string) (catalog.Option, bool) {
	var all []catalog.Option
	for _, g := range cat.Dependencies {
		all = append(all, g.Options...)
	}
	return matchOption(all, v)
}

// decodeList accepts a YAML sequence of scalars or a comma-separated scalar.
func decodeList(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var out []string
		for part := range strings.SplitSeq(node.Value, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, errors.New("list entries must be scalars")
			}
			if p := strings.TrimSpace(item.Value); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	default:
		return nil, errors.New("must be a list or a comma-separated string")
	}
}

func isKnownKey(key string) bool {
	if slices.Contains(textKeys, project.Field(key)) {
		return true
	}
	_, ok := choiceKeys[project.Field(key)]
	return ok
}
