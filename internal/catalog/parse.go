package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// rawCategory mirrors a single-select section of the catalog document.
type rawCategory struct {
	Default string   `json:"default"`
	Values  []Option `json:"values"`
}

// rawGroup mirrors one dependency group.
type rawGroup struct {
	Name   string   `json:"name"`
	Values []Option `json:"values"`
}

// rawCatalog mirrors the parts of the catalog document the client uses.
type rawCatalog struct {
	Type         *rawCategory `json:"type"`
	Packaging    *rawCategory `json:"packaging"`
	JavaVersion  *rawCategory `json:"javaVersion"`
	BootVersion  *rawCategory `json:"bootVersion"`
	Language     *rawCategory `json:"language"`
	Dependencies *struct {
		Values []rawGroup `json:"values"`
	} `json:"dependencies"`
}

// @MX:ANCHOR: [AUTO] Parse is the single entry point turning catalog bytes into the typed model
// @MX:REASON: [AUTO] fan_in=3, called from Fetcher.Fetch, cli catalog-file loading, tests
// Parse decodes and validates a catalog document.
// Shape mismatches fail fast with ErrCatalogMalformed. Sections the client
// knows about but the document omits become empty categories.
func Parse(data []byte) (*Catalog, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrCatalogMalformed, err)
	}
	tree, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: document root is not an object", ErrCatalogMalformed)
	}

	issues, err := validateShape(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogMalformed, err)
	}
	if len(issues) > 0 {
		msgs := make([]string, len(issues))
		for i, issue := range issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrCatalogMalformed, strings.Join(msgs, "; "))
	}

	var raw rawCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogMalformed, err)
	}

	cat := &Catalog{tree: tree}
	sections := []struct {
		key string
		raw *rawCategory
		dst *Category
	}{
		{KeyType, raw.Type, &cat.Type},
		{KeyPackaging, raw.Packaging, &cat.Packaging},
		{KeyJavaVersion, raw.JavaVersion, &cat.JavaVersion},
		{KeyBootVersion, raw.BootVersion, &cat.BootVersion},
		{KeyLanguage, raw.Language, &cat.Language},
	}
	for _, s := range sections {
		c, err := buildCategory(s.key, s.raw)
		if err != nil {
			return nil, err
		}
		*s.dst = c
	}

	if raw.Dependencies != nil {
		seen := make(map[string]bool, len(raw.Dependencies.Values))
		for _, g := range raw.Dependencies.Values {
			if seen[g.Name] {
				return nil, fmt.Errorf("%w: duplicate dependency group %q", ErrCatalogMalformed, g.Name)
			}
			seen[g.Name] = true
			if err := checkUniqueNames(KeyDependencies+"/"+g.Name, g.Values); err != nil {
				return nil, err
			}
			cat.Dependencies = append(cat.Dependencies, DependencyGroup{
				Name:    g.Name,
				Options: g.Values,
			})
		}
	}

	return cat, nil
}

func buildCategory(key string, raw *rawCategory) (Category, error) {
	c := Category{Key: key}
	if raw == nil {
		return c, nil
	}
	if err := checkUniqueNames(key, raw.Values); err != nil {
		return Category{}, err
	}
	c.Default = raw.Default
	c.Options = raw.Values
	return c, nil
}

// checkUniqueNames enforces that display names, which are the selection keys
// shown to the user, are unique inside one category.
func checkUniqueNames(where string, opts []Option) error {
	seen := make(map[string]bool, len(opts))
	for _, o := range opts {
		if seen[o.Name] {
			return fmt.Errorf("%w: duplicate option name %q in %s", ErrCatalogMalformed, o.Name, where)
		}
		seen[o.Name] = true
	}
	return nil
}
