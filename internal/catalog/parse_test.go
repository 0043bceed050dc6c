package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func loadFixture(t *testing.T) *Catalog {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "catalog.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	cat, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return cat
}

func TestParse_Fixture(t *testing.T) {
	t.Parallel()

	cat := loadFixture(t)

	if got := cat.Type.Names(); !slices.Equal(got, []string{"Maven", "Gradle"}) {
		t.Errorf("Type.Names() = %v, want [Maven Gradle]", got)
	}
	if got := cat.Type.IDs(); !slices.Equal(got, []string{"maven-project", "gradle-project"}) {
		t.Errorf("Type.IDs() = %v", got)
	}
	if cat.Type.Default != "maven-project" {
		t.Errorf("Type.Default = %q, want maven-project", cat.Type.Default)
	}
	if got := cat.BootVersion.DefaultName(); got != "3.2.0" {
		t.Errorf("BootVersion.DefaultName() = %q, want 3.2.0", got)
	}
	if got := cat.JavaVersion.Names(); !slices.Equal(got, []string{"21", "17"}) {
		t.Errorf("JavaVersion.Names() = %v, want declaration order [21 17]", got)
	}
	if len(cat.Language.Options) != 3 {
		t.Errorf("len(Language.Options) = %d, want 3", len(cat.Language.Options))
	}

	if len(cat.Dependencies) != 2 {
		t.Fatalf("len(Dependencies) = %d, want 2", len(cat.Dependencies))
	}
	if cat.Dependencies[0].Name != "Developer Tools" || cat.Dependencies[1].Name != "Web" {
		t.Errorf("group order = %q, %q", cat.Dependencies[0].Name, cat.Dependencies[1].Name)
	}
	native, ok := cat.Dependencies[0].ByID("native")
	if !ok {
		t.Fatal("native dependency not found")
	}
	if native.VersionRange != "[3.0.0,3.3.0-M1)" {
		t.Errorf("native.VersionRange = %q", native.VersionRange)
	}
}

func TestParse_MissingCategoryIsEmpty(t *testing.T) {
	t.Parallel()

	cat, err := Parse([]byte(`{"type":{"values":[{"id":"maven-project","name":"Maven"}]}}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !cat.Packaging.Empty() {
		t.Error("missing packaging should parse as an empty category")
	}
	if cat.Packaging.Key != KeyPackaging {
		t.Errorf("Packaging.Key = %q, want %q", cat.Packaging.Key, KeyPackaging)
	}
	if len(cat.Dependencies) != 0 {
		t.Errorf("len(Dependencies) = %d, want 0", len(cat.Dependencies))
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"array root", `[1,2,3]`},
		{"string root", `"catalog"`},
		{"values not array", `{"type":{"values":{"id":"x"}}}`},
		{"option missing id", `{"packaging":{"values":[{"name":"Jar"}]}}`},
		{"option id not string", `{"javaVersion":{"values":[{"id":21,"name":"21"}]}}`},
		{"group missing values", `{"dependencies":{"values":[{"name":"Web"}]}}`},
		{"group option malformed", `{"dependencies":{"values":[{"name":"Web","values":[{"id":"web"}]}]}}`},
		{"duplicate option name", `{"type":{"values":[{"id":"a","name":"Maven"},{"id":"b","name":"Maven"}]}}`},
		{"duplicate group", `{"dependencies":{"values":[{"name":"Web","values":[]},{"name":"Web","values":[]}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrCatalogMalformed) {
				t.Errorf("error = %v, want ErrCatalogMalformed", err)
			}
		})
	}
}

func TestParse_MalformedMessageNamesLocation(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`{"packaging":{"values":[{"name":"Jar"}]}}`))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "/packaging/values/0") {
		t.Errorf("error = %q, want it to name /packaging/values/0", err.Error())
	}
}

func TestCategory_Lookups(t *testing.T) {
	t.Parallel()

	cat := loadFixture(t)

	o, ok := cat.Packaging.ByName("War")
	if !ok || o.ID != "war" {
		t.Errorf("ByName(War) = %+v, %v", o, ok)
	}
	if _, ok := cat.Packaging.ByName("war"); ok {
		t.Error("ByName must match display names, not ids")
	}
	if _, ok := cat.Packaging.ByID("ear"); ok {
		t.Error("ByID(ear) should not be found")
	}

	if got := cat.Category(KeyBootVersion); got.Key != KeyBootVersion || len(got.Options) != 3 {
		t.Errorf("Category(bootVersion) = %+v", got)
	}
	if got := cat.Category("unknown"); !got.Empty() {
		t.Error("unknown category should be empty")
	}

	g, dep, ok := cat.Dependency("webflux")
	if !ok || g.Name != "Web" || dep.Name != "Spring Reactive Web" {
		t.Errorf("Dependency(webflux) = %q, %+v, %v", g.Name, dep, ok)
	}
	if _, _, ok := cat.Dependency("kafka"); ok {
		t.Error("Dependency(kafka) should not be found")
	}
	if dep, ok := cat.DependencyByName("Lombok"); !ok || dep.ID != "lombok" {
		t.Errorf("DependencyByName(Lombok) = %+v, %v", dep, ok)
	}
}

func TestCategory_DefaultNameUnknownID(t *testing.T) {
	t.Parallel()

	c := Category{Default: "ear", Options: []Option{{Name: "Jar", ID: "jar"}}}
	if got := c.DefaultName(); got != "" {
		t.Errorf("DefaultName() = %q, want empty for unknown default id", got)
	}
}
