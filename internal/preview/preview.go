// Package preview renders the banner and prompt on screen without touching
// any file. It reads the same prompt layout table as the script generator, so
// what the preview shows is what the next shell session gets.
package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/doctor/internal/profile"
	"github.com/dkoosis/doctor/internal/ui"
)

// Renderer draws previews with a theme. Width clips banner lines; zero
// means no clipping.
type Renderer struct {
	Theme *ui.Theme
	Width int
}

// New returns a Renderer for theme. A nil theme uses ui.DefaultTheme.
func New(theme *ui.Theme, width int) *Renderer {
	if theme == nil {
		theme = ui.DefaultTheme()
	}
	return &Renderer{Theme: theme, Width: width}
}

// Render returns the banner panel followed by the prompt panel.
func (r *Renderer) Render(cfg profile.Config) string {
	banner := r.panel(cfg.BannerColor).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			r.Theme.Styles.Title.Render("Banner:"),
			"",
			r.Banner(cfg),
		))
	prompt := r.panel(cfg.Color).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			r.Theme.Styles.Title.Render("Prompt example"),
			"",
			r.Prompt(cfg),
		))
	return lipgloss.JoinVertical(lipgloss.Left, banner, prompt)
}

// Banner renders the display name in the configured FIGlet font and color.
func (r *Renderer) Banner(cfg profile.Config) string {
	lines := BannerLines(cfg)
	// Border and padding take six columns.
	if limit := r.Width - 6; r.Width > 0 && limit > 0 {
		for i, line := range lines {
			lines[i] = runewidth.Truncate(line, limit, "")
		}
	}
	return r.style(cfg.BannerColor, false).Render(strings.Join(lines, "\n"))
}

// Prompt renders the prompt layout with colored segments in bold.
func (r *Renderer) Prompt(cfg profile.Config) string {
	var b strings.Builder
	for _, seg := range cfg.PromptSegments() {
		if !seg.Colored() {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(r.style(seg.Color, true).Render(seg.Text))
	}
	return b.String()
}

// BannerLines returns the uncolored FIGlet rows for the display name, with
// trailing blank rows removed.
func BannerLines(cfg profile.Config) []string {
	// Non-strict mode renders characters missing from the font as '?'.
	fig := figure.NewFigure(cfg.DisplayName(), cfg.BannerFont(), false)
	lines := fig.Slicify()
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Width returns the display width of the widest banner row.
func Width(cfg profile.Config) int {
	w := 0
	for _, line := range BannerLines(cfg) {
		if lw := runewidth.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

func (r *Renderer) style(color string, bold bool) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(bold)
	if r.Theme.Monochrome {
		return s
	}
	return s.Foreground(paletteColor(color))
}

func (r *Renderer) panel(color string) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if r.Theme.Monochrome {
		return s
	}
	return s.BorderForeground(paletteColor(color))
}

// paletteColor maps a color name to its lipgloss ANSI palette index.
func paletteColor(name string) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(profile.ANSIIndex(name)))
}
