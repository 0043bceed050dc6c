// Package request assembles the generation request sent to the initializr
// service from a finalized project configuration.
package request

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/buildcli/springinit/internal/core/project"
)

// ErrEncodingFailure indicates a configuration value could not be encoded.
var ErrEncodingFailure = errors.New("request: encoding failure")

// StarterPath is the resource suffix serving zipped projects.
const StarterPath = "/starter.zip"

// Language is sent unconditionally. The catalog advertises other JVM
// languages but the client only generates Java projects.
const Language = "java"

// Param is a single query parameter in emission order.
type Param struct {
	Key   string
	Value string
}

// Request is an encoded generation request.
type Request struct {
	URL    string  // Fully encoded request URL.
	Params []Param // Unencoded parameters in the order they appear in URL.
}

// String returns the encoded URL.
func (r Request) String() string {
	return r.URL
}

// Builder turns configurations into requests against a fixed base endpoint.
type Builder struct {
	baseURL string
}

// NewBuilder creates a Builder for the given service base URL.
// Trailing slashes are dropped so that the starter path joins cleanly.
func NewBuilder(baseURL string) *Builder {
	return &Builder{baseURL: strings.TrimRight(baseURL, "/")}
}

// Params lists the query parameters for cfg in their fixed order: type,
// language, bootVersion, baseDir, groupId, artifactId, name, description,
// packageName, packaging, javaVersion, then one dependencies pair per id.
func Params(cfg project.Configuration) []Param {
	params := []Param{
		{"type", cfg.BuildSystemID},
		{"language", Language},
		{"bootVersion", cfg.BootVersionID},
		{"baseDir", cfg.Name},
		{"groupId", cfg.GroupID},
		{"artifactId", cfg.ArtifactID},
		{"name", cfg.Name},
		{"description", cfg.Description},
		{"packageName", cfg.PackageName},
		{"packaging", cfg.PackagingID},
		{"javaVersion", cfg.JavaVersionID},
	}
	for _, dep := range cfg.Dependencies {
		params = append(params, Param{"dependencies", dep})
	}
	return params
}

// Build encodes cfg into a request. It is deterministic: equal
// configurations always produce byte-identical URLs.
func (b *Builder) Build(cfg project.Configuration) (Request, error) {
	params := Params(cfg)

	var sb strings.Builder
	sb.WriteString(b.baseURL)
	sb.WriteString(StarterPath)
	for i, p := range params {
		if !utf8.ValidString(p.Value) {
			return Request{}, fmt.Errorf("%w: %s is not valid UTF-8", ErrEncodingFailure, p.Key)
		}
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}

	return Request{URL: sb.String(), Params: params}, nil
}
