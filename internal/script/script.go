// Package script renders the customization record into a shell startup
// fragment and writes it to the shell init file.
package script

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dkoosis/doctor/internal/profile"
)

// Block markers surrounding the generated fragment.
const (
	StartMarker = "# doctor: custom banner and prompt start"
	EndMarker   = "# doctor: custom banner and prompt end"
)

// ErrScriptWrite marks an I/O failure while writing the shell init file.
var ErrScriptWrite = errors.New("script write failed")

// Generator writes the rendered fragment to Path, replacing its contents.
type Generator struct {
	Path   string
	Logger *slog.Logger
}

// New returns a Generator targeting path. A nil logger discards.
func New(path string, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{Path: path, Logger: logger}
}

// Write renders cfg and overwrites the init file with it. Prior content of
// the file is discarded.
func (g *Generator) Write(cfg profile.Config) error {
	if err := os.WriteFile(g.Path, []byte(Render(cfg)), 0o644); err != nil { //nolint:gosec // shell init files are world-readable
		g.Logger.Error("script.write", "path", g.Path, "error", err)
		return fmt.Errorf("%w: %w", ErrScriptWrite, err)
	}
	g.Logger.Info("script.write", "path", g.Path)
	return nil
}

// Render builds the startup fragment: a clear, the banner command and the PS1
// assignment, between StartMarker and EndMarker. Output depends only on cfg.
func Render(cfg profile.Config) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(StartMarker)
	b.WriteString("\n\nclear\n\n")
	b.WriteString(BannerCommand(cfg))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "export PS1=\"%s\"\n", PS1(cfg))
	b.WriteString("\n")
	b.WriteString(EndMarker)
	b.WriteString("\n")
	return b.String()
}

// BannerCommand returns the figlet pipeline drawing the banner in its color.
func BannerCommand(cfg profile.Config) string {
	return fmt.Sprintf(`figlet -f %s "%s" | GREP_COLOR='01;%d' grep --color=always '.'`,
		cfg.BannerFont(), quote(cfg.DisplayName()), profile.ColorCode(cfg.BannerColor))
}

// PS1 renders the prompt segments as bash escapes. A colored segment opens
// with a bold color sequence; an uncolored one opens with a reset.
func PS1(cfg profile.Config) string {
	var b strings.Builder
	for _, seg := range cfg.PromptSegments() {
		if seg.Colored() {
			fmt.Fprintf(&b, `\[\e[1;%dm\]`, profile.ColorCode(seg.Color))
		} else {
			b.WriteString(`\[\e[0m\]`)
		}
		b.WriteString(quote(seg.Text))
	}
	return b.String()
}

// quote escapes s for use inside a double-quoted shell string. A dollar
// followed by a space or ending the string cannot expand and is kept as-is.
func quote(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\', '"', '`':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '$':
			if i+1 < len(s) && s[i+1] != ' ' {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
