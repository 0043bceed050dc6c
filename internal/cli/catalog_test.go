package cli

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/buildcli/springinit/internal/catalog"
)

func TestCatalogCmd_Exists(t *testing.T) {
	if CatalogCmd.Use != "catalog" {
		t.Errorf("CatalogCmd.Use = %q", CatalogCmd.Use)
	}
	if CatalogCmd.Flags().Lookup("json") == nil {
		t.Error("CatalogCmd should have --json flag")
	}
}

func TestCatalogCmd_Tables(t *testing.T) {
	stdout, _, err := executeCommand(t, "catalog", "--catalog-file", fixturePath, "--no-color")
	if err != nil {
		t.Fatalf("catalog error = %v", err)
	}

	for _, want := range []string{
		"Project types", "maven-project", "Maven",
		"Spring Boot versions", "3.2.0",
		"Dependencies", "Developer Tools", "lombok", "[3.0.0,3.3.0-M1)",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("catalog output missing %q", want)
		}
	}
}

func TestCatalogCmd_JSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "catalog", "--catalog-file", fixturePath, "--json")
	if err != nil {
		t.Fatalf("catalog --json error = %v", err)
	}

	var got catalog.Catalog
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if got.Type.Default != "maven-project" {
		t.Errorf("type default = %q, want maven-project", got.Type.Default)
	}
	if len(got.Dependencies) != 2 || got.Dependencies[0].Name != "Developer Tools" {
		t.Errorf("dependency groups = %+v", got.Dependencies)
	}
}

func TestCatalogCmd_ServiceUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	_, _, err := executeCommand(t, "catalog", "--base-url", ts.URL)
	if !errors.Is(err, catalog.ErrCatalogUnavailable) {
		t.Errorf("error = %v, want ErrCatalogUnavailable", err)
	}
}
