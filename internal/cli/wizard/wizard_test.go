package wizard

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/buildcli/springinit/internal/catalog"
	"github.com/buildcli/springinit/internal/core/project"
)

// scriptedPrompter answers prompts from a map keyed by field id and records
// every field it was shown. Missing answers fall back to the field default.
type scriptedPrompter struct {
	answers map[string]any
	failAt  string
	failErr error
	seen    []Field
}

func (p *scriptedPrompter) record(f Field) error {
	p.seen = append(p.seen, f)
	if p.failAt == f.ID {
		return p.failErr
	}
	return nil
}

func (p *scriptedPrompter) Input(_ context.Context, f Field) (string, error) {
	if err := p.record(f); err != nil {
		return "", err
	}
	if v, ok := p.answers[f.ID].(string); ok {
		return v, nil
	}
	return f.Default, nil
}

func (p *scriptedPrompter) Select(_ context.Context, f Field) (string, error) {
	if err := p.record(f); err != nil {
		return "", err
	}
	if v, ok := p.answers[f.ID].(string); ok {
		return v, nil
	}
	if f.Default != "" {
		return f.Default, nil
	}
	return f.Choices[0].Label, nil
}

func (p *scriptedPrompter) MultiSelect(_ context.Context, f Field) ([]string, error) {
	if err := p.record(f); err != nil {
		return nil, err
	}
	v, _ := p.answers[f.ID].([]string)
	return v, nil
}

func (p *scriptedPrompter) Confirm(_ context.Context, f Field) (bool, error) {
	if err := p.record(f); err != nil {
		return false, err
	}
	if v, ok := p.answers[f.ID].(bool); ok {
		return v, nil
	}
	return true, nil
}

func (p *scriptedPrompter) field(id string) *Field {
	for i := range p.seen {
		if p.seen[i].ID == id {
			return &p.seen[i]
		}
	}
	return nil
}

func (p *scriptedPrompter) ids() []string {
	ids := make([]string, len(p.seen))
	for i, f := range p.seen {
		ids[i] = f.ID
	}
	return ids
}

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "catalog", "testdata", "catalog.json"))
	if err != nil {
		t.Fatalf("read catalog fixture: %v", err)
	}
	cat, err := catalog.Parse(data)
	if err != nil {
		t.Fatalf("parse catalog fixture: %v", err)
	}
	return cat
}

func TestRun_AcceptAllDefaults(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{}
	cfg, err := New(p).Run(context.Background(), loadCatalog(t))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := project.Configuration{
		Name:          "demo",
		Description:   "Demo project for Spring Boot",
		GroupID:       "com.example",
		ArtifactID:    "demo",
		PackageName:   "com.example.demo",
		OutputDir:     ".",
		BuildSystemID: "maven-project",
		PackagingID:   "jar",
		JavaVersionID: "17",
		BootVersionID: "3.2.0",
	}
	if cfg.Name != want.Name || cfg.Description != want.Description || cfg.GroupID != want.GroupID ||
		cfg.ArtifactID != want.ArtifactID || cfg.PackageName != want.PackageName || cfg.OutputDir != want.OutputDir ||
		cfg.BuildSystemID != want.BuildSystemID || cfg.PackagingID != want.PackagingID ||
		cfg.JavaVersionID != want.JavaVersionID || cfg.BootVersionID != want.BootVersionID {
		t.Errorf("Run() = %+v, want %+v", cfg, want)
	}
	if cfg.Dependencies == nil || len(cfg.Dependencies) != 0 {
		t.Errorf("Dependencies = %#v, want empty non-nil slice", cfg.Dependencies)
	}
}

func TestRun_StepOrder(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{}
	if _, err := New(p).Run(context.Background(), loadCatalog(t)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{
		"project_name", "description", "group_id", "artifact_id", "package_name", "output_dir",
		"build_system", "packaging", "java_version", "boot_version",
		"dependencies_developer_tools", "dependencies_web",
		ConfirmID,
	}
	if got := p.ids(); !slices.Equal(got, want) {
		t.Errorf("prompt order = %v, want %v", got, want)
	}
}

func TestRun_ChoicesMatchCategory(t *testing.T) {
	t.Parallel()

	cat := loadCatalog(t)
	p := &scriptedPrompter{}
	if _, err := New(p).Run(context.Background(), cat); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	tests := []struct {
		step string
		key  string
	}{
		{"build_system", catalog.KeyType},
		{"packaging", catalog.KeyPackaging},
		{"java_version", catalog.KeyJavaVersion},
		{"boot_version", catalog.KeyBootVersion},
	}
	for _, tt := range tests {
		f := p.field(tt.step)
		if f == nil {
			t.Fatalf("step %s was not prompted", tt.step)
		}
		var values, labels []string
		for _, c := range f.Choices {
			values = append(values, c.Value)
			labels = append(labels, c.Label)
		}
		category := cat.Category(tt.key)
		if !slices.Equal(values, category.IDs()) {
			t.Errorf("%s choice values = %v, want %v", tt.step, values, category.IDs())
		}
		if !slices.Equal(labels, category.Names()) {
			t.Errorf("%s choice labels = %v, want %v", tt.step, labels, category.Names())
		}
	}

	if f := p.field("java_version"); f.Default != "17" {
		t.Errorf("java_version default = %q, want catalog default 17", f.Default)
	}
}

func TestRun_MapsLabelsToIDs(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{answers: map[string]any{
		"build_system": "Gradle",
		"packaging":    "War",
		"java_version": "21",
		"boot_version": "3.1.6",
	}}
	cfg, err := New(p).Run(context.Background(), loadCatalog(t))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if cfg.BuildSystemID != "gradle-project" || cfg.PackagingID != "war" ||
		cfg.JavaVersionID != "21" || cfg.BootVersionID != "3.1.6" {
		t.Errorf("ids = %s/%s/%s/%s", cfg.BuildSystemID, cfg.PackagingID, cfg.JavaVersionID, cfg.BootVersionID)
	}
}

func TestRun_InvalidChoice(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{answers: map[string]any{"packaging": "Ear"}}
	_, err := New(p).Run(context.Background(), loadCatalog(t))
	if !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("error = %v, want ErrInvalidChoice", err)
	}
	if p.field(ConfirmID) != nil {
		t.Error("confirmation must not be reached after an invalid choice")
	}
}

func TestRun_DependencyOrder(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{answers: map[string]any{
		"dependencies_developer_tools": []string{"Lombok"},
		"dependencies_web":             []string{"Spring Reactive Web", "Spring Web"},
	}}
	cfg, err := New(p).Run(context.Background(), loadCatalog(t))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"lombok", "web", "webflux"}
	if !slices.Equal(cfg.Dependencies, want) {
		t.Errorf("Dependencies = %v, want %v", cfg.Dependencies, want)
	}
}

func TestRun_UnknownDependencyLabel(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{answers: map[string]any{
		"dependencies_web": []string{"Spring Data JPA"},
	}}
	if _, err := New(p).Run(context.Background(), loadCatalog(t)); !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("error = %v, want ErrInvalidChoice", err)
	}
}

func TestRun_HidesIncompatibleDependencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		boot       string
		all        bool
		wantNative bool
	}{
		{"compatible boot version", "3.2.0", false, true},
		{"snapshot past upper bound", "3.3.0 (SNAPSHOT)", false, false},
		{"filtering disabled", "3.3.0 (SNAPSHOT)", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &scriptedPrompter{answers: map[string]any{"boot_version": tt.boot}}
			if _, err := New(p, WithAllDependencies(tt.all)).Run(context.Background(), loadCatalog(t)); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			f := p.field("dependencies_developer_tools")
			if f == nil {
				t.Fatal("developer tools step not prompted")
			}
			if got := slices.Contains(f.Labels(), "GraalVM Native Support"); got != tt.wantNative {
				t.Errorf("native offered = %v, want %v", got, tt.wantNative)
			}
		})
	}
}

func TestRun_PresetsAndDerivedDefaults(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{answers: map[string]any{
		"group_id":    "org.acme",
		"artifact_id": "Order-Service",
	}}
	cfg, err := New(p, WithProjectName("orders"), WithOutputDir("/tmp/out")).Run(context.Background(), loadCatalog(t))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if cfg.Name != "orders" {
		t.Errorf("Name = %q, want preset orders", cfg.Name)
	}
	if cfg.OutputDir != "/tmp/out" {
		t.Errorf("OutputDir = %q, want /tmp/out", cfg.OutputDir)
	}
	if f := p.field("artifact_id"); f.Default != "orders" {
		t.Errorf("artifact_id default = %q, want project name", f.Default)
	}
	if cfg.PackageName != "org.acme.orderservice" {
		t.Errorf("PackageName = %q, want org.acme.orderservice", cfg.PackageName)
	}
}

func TestRun_NormalizesInput(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{answers: map[string]any{
		"project_name": "  Cafe\u0301  ",
		"description":  "   ",
	}}
	cfg, err := New(p).Run(context.Background(), loadCatalog(t))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if cfg.Name != "Caf\u00e9" {
		t.Errorf("Name = %q, want NFC-normalized trimmed value", cfg.Name)
	}
	if cfg.Description != "Demo project for Spring Boot" {
		t.Errorf("Description = %q, want default for blank answer", cfg.Description)
	}
}

func TestRun_SkipsEmptyCategory(t *testing.T) {
	t.Parallel()

	cat, err := catalog.Parse([]byte(`{
		"type": {"default": "maven-project", "values": [{"id": "maven-project", "name": "Maven"}]},
		"bootVersion": {"default": "3.2.0", "values": [{"id": "3.2.0", "name": "3.2.0"}]}
	}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	p := &scriptedPrompter{}
	cfg, err := New(p).Run(context.Background(), cat)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if p.field("packaging") != nil || p.field("java_version") != nil {
		t.Errorf("empty categories were prompted: %v", p.ids())
	}
	if cfg.PackagingID != "" || cfg.JavaVersionID != "" {
		t.Errorf("skipped fields = %q/%q, want empty", cfg.PackagingID, cfg.JavaVersionID)
	}
	if cfg.Name != "demo" || cfg.Description != "Spring Boot Demo Project" {
		t.Errorf("fallback defaults = %q/%q", cfg.Name, cfg.Description)
	}
}

func TestRun_Cancellation(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{failAt: "group_id", failErr: ErrCancelled}
	_, err := New(p).Run(context.Background(), loadCatalog(t))
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("error = %v, want ErrCancelled", err)
	}
	if last := p.seen[len(p.seen)-1].ID; last != "group_id" {
		t.Errorf("last prompt = %q, want group_id (no prompts after abort)", last)
	}
}

func TestRun_DeclineConfirmation(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{answers: map[string]any{ConfirmID: false}}
	if _, err := New(p).Run(context.Background(), loadCatalog(t)); !errors.Is(err, ErrCancelled) {
		t.Errorf("error = %v, want ErrCancelled", err)
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &scriptedPrompter{}
	_, err := New(p).Run(ctx, loadCatalog(t))
	if !errors.Is(err, ErrCancelled) || !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want ErrCancelled wrapping context.Canceled", err)
	}
	if len(p.seen) != 0 {
		t.Errorf("prompted %d times after cancellation", len(p.seen))
	}
}

func TestRun_PrompterFailureNamesStep(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{failAt: "packaging", failErr: io.ErrUnexpectedEOF}
	_, err := New(p).Run(context.Background(), loadCatalog(t))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("error = %v, want wrapped io.ErrUnexpectedEOF", err)
	}
	if errors.Is(err, ErrCancelled) {
		t.Error("a prompter failure is not a cancellation")
	}
	if !strings.Contains(err.Error(), "packaging") {
		t.Errorf("error %q should name the step", err.Error())
	}
}

func TestRun_NilCatalog(t *testing.T) {
	t.Parallel()

	if _, err := New(&scriptedPrompter{}).Run(context.Background(), nil); !errors.Is(err, ErrNoCatalog) {
		t.Errorf("error = %v, want ErrNoCatalog", err)
	}
}

func TestRun_ConfirmShowsRenderedSummary(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{answers: map[string]any{"dependencies_web": []string{"Spring Web"}}}
	render := func(s string) string { return "RENDERED\n" + s }
	if _, err := New(p, WithRenderer(render)).Run(context.Background(), loadCatalog(t)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	f := p.field(ConfirmID)
	if f == nil {
		t.Fatal("confirmation not prompted")
	}
	if !strings.HasPrefix(f.Description, "RENDERED\n# demo") {
		t.Errorf("confirm description = %q, want rendered summary", f.Description)
	}
	if !strings.Contains(f.Description, "- Spring Web (`web`)") {
		t.Errorf("summary should list selected dependencies:\n%s", f.Description)
	}
}

func TestRunInput_RequiredWithoutDefault(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{answers: map[string]any{"custom": "   "}}
	w := New(p)
	step := &Step{ID: "custom", Kind: StepInput, Required: true, Field: project.FieldName}

	err := w.runInput(context.Background(), loadCatalog(t), project.NewBuilder(), step)
	if !errors.Is(err, ErrRequired) {
		t.Fatalf("error = %v, want ErrRequired", err)
	}

	f := p.field("custom")
	if f.Validate == nil {
		t.Fatal("input field should carry a validator")
	}
	if err := f.Validate(""); !errors.Is(err, ErrRequired) {
		t.Errorf("Validate(\"\") = %v, want ErrRequired", err)
	}
	if err := f.Validate("x"); err != nil {
		t.Errorf("Validate(\"x\") = %v, want nil", err)
	}
}

func TestDependencyStepID(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Web":                     "dependencies_web",
		"Developer Tools":         "dependencies_developer_tools",
		"I/O":                     "dependencies_i_o",
		"  SQL  ":                 "dependencies_sql",
		"Messaging & Integration": "dependencies_messaging_integration",
	}
	for in, want := range tests {
		if got := DependencyStepID(in); got != want {
			t.Errorf("DependencyStepID(%q) = %q, want %q", in, got, want)
		}
		if !IsDependencyStep(DependencyStepID(in)) {
			t.Errorf("IsDependencyStep(%q) = false", DependencyStepID(in))
		}
	}
}

func TestSummary_EmptyDependencies(t *testing.T) {
	t.Parallel()

	cfg := project.Configuration{Name: "demo", BuildSystemID: "maven-project", Dependencies: []string{}}
	got := Summary(cfg, loadCatalog(t))
	if !strings.Contains(got, "| Build system | Maven |") {
		t.Errorf("summary should show display names:\n%s", got)
	}
	if !strings.Contains(got, "| Packaging | - |") {
		t.Errorf("summary should mark empty fields:\n%s", got)
	}
	if !strings.Contains(got, "_none_") {
		t.Errorf("summary should say no dependencies:\n%s", got)
	}
}

// TestFormPrompter_Accessible drives the huh form in accessible mode. Terminal
// support varies between environments, so form errors only get logged.
func TestFormPrompter_Accessible(t *testing.T) {
	p := NewFormPrompter(true, WithAccessible(true), WithIO(strings.NewReader("orders\n"), io.Discard))

	got, err := p.Input(context.Background(), Field{ID: "project_name", Title: "Project name", Default: "demo"})
	if err != nil {
		t.Logf("Input returned error (acceptable without a terminal): %v", err)
		return
	}
	if got != "orders" && got != "demo" {
		t.Errorf("Input() = %q", got)
	}
}

func TestLabelOptions(t *testing.T) {
	t.Parallel()

	opts := labelOptions([]Choice{
		{Label: "Maven", Value: "maven-project", Desc: "Maven build"},
		{Label: "Gradle", Value: "gradle-project"},
	})
	if len(opts) != 2 {
		t.Fatalf("len = %d, want 2", len(opts))
	}
	if opts[0].Key != "Maven - Maven build" || opts[0].Value != "Maven" {
		t.Errorf("opts[0] = %+v", opts[0])
	}
	if opts[1].Key != "Gradle" || opts[1].Value != "Gradle" {
		t.Errorf("opts[1] = %+v", opts[1])
	}
}
