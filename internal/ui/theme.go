// Package ui holds the lipgloss theme shared by the wizard screens and the
// preview renderer.
//
// Colors use lipgloss format (color names are not accepted by lipgloss, so
// palette indices or 256-color numbers are used throughout).
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titler = cases.Title(language.English)

// Title capitalises a color or style name for display ("green" -> "Green").
func Title(s string) string {
	return titler.String(s)
}

// Theme defines the visual styling of every screen.
type Theme struct {
	Name string

	Colors ThemeColors
	Styles ThemeStyles

	// Monochrome disables all foreground colors, including the user's
	// banner and prompt colors in the preview.
	Monochrome bool
}

// ThemeColors defines semantic color values.
type ThemeColors struct {
	Primary lipgloss.Color // Panel titles, menu numbers
	Accent  lipgloss.Color // Welcome panel, current values
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Subtle  lipgloss.Color // Borders
}

// ThemeStyles provides pre-built lipgloss styles.
type ThemeStyles struct {
	Panel        lipgloss.Style
	AlertPanel   lipgloss.Style
	WelcomePanel lipgloss.Style
	Title        lipgloss.Style
	MenuIndex    lipgloss.Style
	Value        lipgloss.Style
	Success      lipgloss.Style
	Warning      lipgloss.Style
	Error        lipgloss.Style
	Text         lipgloss.Style
	Muted        lipgloss.Style
	Credits      lipgloss.Style
}

// NewTheme creates a theme with computed styles from colors.
func NewTheme(name string, colors ThemeColors, monochrome bool) *Theme {
	t := &Theme{
		Name:       name,
		Colors:     colors,
		Monochrome: monochrome,
	}

	t.Styles = ThemeStyles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Success).
			Padding(1, 2),

		AlertPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Error).
			Padding(1, 2),

		WelcomePanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Accent).
			Foreground(colors.Accent).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(colors.Primary).
			Bold(true),

		MenuIndex: lipgloss.NewStyle().
			Foreground(colors.Accent),

		Value: lipgloss.NewStyle().
			Foreground(colors.Warning),

		Success: lipgloss.NewStyle().
			Foreground(colors.Success),

		Warning: lipgloss.NewStyle().
			Foreground(colors.Warning),

		Error: lipgloss.NewStyle().
			Foreground(colors.Error).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(colors.Text),

		Muted: lipgloss.NewStyle().
			Foreground(colors.Muted).
			Italic(true),

		Credits: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colors.Subtle).
			Foreground(colors.Muted).
			Padding(0, 1),
	}

	return t
}

// DefaultTheme returns the standard palette.
func DefaultTheme() *Theme {
	return NewTheme(
		"default",
		ThemeColors{
			Primary: lipgloss.Color("10"),  // Bright green
			Accent:  lipgloss.Color("14"),  // Bright cyan
			Success: lipgloss.Color("2"),   // Green
			Warning: lipgloss.Color("11"),  // Yellow
			Error:   lipgloss.Color("9"),   // Red
			Text:    lipgloss.Color("252"), // Light gray
			Muted:   lipgloss.Color("242"), // Dark gray
			Subtle:  lipgloss.Color("238"), // Very dark gray
		},
		false,
	)
}

// MonochromeTheme returns a theme with no colors.
func MonochromeTheme() *Theme {
	return NewTheme(
		"monochrome",
		ThemeColors{
			// Empty colors = no styling
			Primary: lipgloss.Color(""),
			Accent:  lipgloss.Color(""),
			Success: lipgloss.Color(""),
			Warning: lipgloss.Color(""),
			Error:   lipgloss.Color(""),
			Text:    lipgloss.Color(""),
			Muted:   lipgloss.Color(""),
			Subtle:  lipgloss.Color(""),
		},
		true,
	)
}

// ForSettings picks the theme matching the no_color setting.
func ForSettings(noColor bool) *Theme {
	if noColor {
		return MonochromeTheme()
	}
	return DefaultTheme()
}
