package ui

import "github.com/charmbracelet/lipgloss"

// ThemeConfig selects the theme variant.
type ThemeConfig struct {
	Mode    string // "dark" or "light"; anything else is treated as dark
	NoColor bool
}

// ThemeColors holds the hex colors of a theme.
type ThemeColors struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Text      string
	Muted     string
	Border    string
}

// Theme is the shared palette for spinners, progress bars and tables.
type Theme struct {
	Mode    string
	NoColor bool
	Colors  ThemeColors
}

var (
	darkColors = ThemeColors{
		Primary:   "#6DB33F",
		Secondary: "#34A0A4",
		Success:   "#10B981",
		Error:     "#EF4444",
		Text:      "#E5E7EB",
		Muted:     "#6B7280",
		Border:    "#4B5563",
	}
	lightColors = ThemeColors{
		Primary:   "#3D7A1F",
		Secondary: "#1E6F73",
		Success:   "#059669",
		Error:     "#DC2626",
		Text:      "#111827",
		Muted:     "#9CA3AF",
		Border:    "#D1D5DB",
	}
)

// NewTheme creates a Theme for the given configuration.
func NewTheme(cfg ThemeConfig) *Theme {
	t := &Theme{Mode: "dark", NoColor: cfg.NoColor, Colors: darkColors}
	if cfg.Mode == "light" {
		t.Mode = "light"
		t.Colors = lightColors
	}
	return t
}

// Style returns a foreground style for color, or a plain style when colors
// are disabled.
func (t *Theme) Style(color string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if t.NoColor || color == "" {
		return s
	}
	return s.Foreground(lipgloss.Color(color))
}

// Success renders a success message.
func (t *Theme) Success(msg string) string {
	return t.Style(t.Colors.Success).Render(msg)
}

// Error renders an error message.
func (t *Theme) Error(msg string) string {
	return t.Style(t.Colors.Error).Render(msg)
}

// Muted renders secondary text.
func (t *Theme) Muted(msg string) string {
	return t.Style(t.Colors.Muted).Render(msg)
}
