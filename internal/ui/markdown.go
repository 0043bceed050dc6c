package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownWidth is the word-wrap width used for rendered markdown.
const markdownWidth = 80

// RenderMarkdown renders md for the terminal using the theme's glamour style.
// With colors disabled it uses the notty style.
func RenderMarkdown(theme *Theme, md string) (string, error) {
	style := "dark"
	switch {
	case theme == nil || theme.NoColor:
		style = "notty"
	case theme.Mode == "light":
		style = "light"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}

// MarkdownRenderer returns a render function for the wizard summary that
// falls back to the raw markdown when rendering fails.
func MarkdownRenderer(theme *Theme) func(string) string {
	return func(md string) string {
		out, err := RenderMarkdown(theme, md)
		if err != nil {
			return md
		}
		return out
	}
}
