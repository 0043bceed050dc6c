package catalog

// Category keys as they appear at the root of the catalog document.
const (
	KeyType         = "type"
	KeyPackaging    = "packaging"
	KeyJavaVersion  = "javaVersion"
	KeyBootVersion  = "bootVersion"
	KeyLanguage     = "language"
	KeyDependencies = "dependencies"
)

// Option is a single selectable catalog entry.
type Option struct {
	Name         string `json:"name"`                   // Display name, unique within its category
	ID           string `json:"id"`                     // Opaque value sent to the service
	Description  string `json:"description,omitempty"`  // Optional help text
	VersionRange string `json:"versionRange,omitempty"` // Compatible boot versions (dependencies only)
}

// Category is an ordered set of mutually exclusive options.
// Options keep the catalog's declaration order; lookups walk the slice
// so presentation order stays the observable order.
type Category struct {
	Key     string   `json:"key"`
	Default string   `json:"default,omitempty"` // Default option id declared by the service
	Options []Option `json:"options"`
}

// Empty reports whether the category has nothing to choose from.
func (c Category) Empty() bool {
	return len(c.Options) == 0
}

// Names returns the display names in declaration order.
func (c Category) Names() []string {
	names := make([]string, len(c.Options))
	for i, o := range c.Options {
		names[i] = o.Name
	}
	return names
}

// IDs returns the option ids in declaration order.
func (c Category) IDs() []string {
	ids := make([]string, len(c.Options))
	for i, o := range c.Options {
		ids[i] = o.ID
	}
	return ids
}

// ByName returns the option with the given display name.
func (c Category) ByName(name string) (Option, bool) {
	return findByName(c.Options, name)
}

// ByID returns the option with the given id.
func (c Category) ByID(id string) (Option, bool) {
	return findByID(c.Options, id)
}

// DefaultName returns the display name of the declared default option,
// or an empty string when the default is unset or unknown.
func (c Category) DefaultName() string {
	if c.Default == "" {
		return ""
	}
	if o, ok := c.ByID(c.Default); ok {
		return o.Name
	}
	return ""
}

// DependencyGroup is a named set of independently selectable dependencies.
type DependencyGroup struct {
	Name    string   `json:"name"`
	Options []Option `json:"options"`
}

// ByName returns the dependency with the given display name.
func (g DependencyGroup) ByName(name string) (Option, bool) {
	return findByName(g.Options, name)
}

// ByID returns the dependency with the given id.
func (g DependencyGroup) ByID(id string) (Option, bool) {
	return findByID(g.Options, id)
}

// Catalog is the parsed capability catalog. It is read-only once parsed.
type Catalog struct {
	Type         Category          `json:"type"`
	Packaging    Category          `json:"packaging"`
	JavaVersion  Category          `json:"javaVersion"`
	BootVersion  Category          `json:"bootVersion"`
	Language     Category          `json:"language"`
	Dependencies []DependencyGroup `json:"dependencies"`

	// tree is the generic decoded document backing dotted-path default lookups.
	tree map[string]any
}

// Category returns the category stored under the given root key.
// Unknown keys yield an empty category.
func (c *Catalog) Category(key string) Category {
	switch key {
	case KeyType:
		return c.Type
	case KeyPackaging:
		return c.Packaging
	case KeyJavaVersion:
		return c.JavaVersion
	case KeyBootVersion:
		return c.BootVersion
	case KeyLanguage:
		return c.Language
	default:
		return Category{Key: key}
	}
}

// Dependency finds a dependency by id across all groups.
func (c *Catalog) Dependency(id string) (DependencyGroup, Option, bool) {
	for _, g := range c.Dependencies {
		if o, ok := g.ByID(id); ok {
			return g, o, true
		}
	}
	return DependencyGroup{}, Option{}, false
}

// DependencyByName finds a dependency by display name across all groups.
// The first group declaring the name wins.
func (c *Catalog) DependencyByName(name string) (Option, bool) {
	for _, g := range c.Dependencies {
		if o, ok := g.ByName(name); ok {
			return o, true
		}
	}
	return Option{}, false
}

// DefaultValue resolves a dotted path against the raw catalog document.
func (c *Catalog) DefaultValue(path string) (string, bool) {
	return ExtractDefaultValue(c.tree, path)
}

func findByName(opts []Option, name string) (Option, bool) {
	for _, o := range opts {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

func findByID(opts []Option, id string) (Option, bool) {
	for _, o := range opts {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}
