// doctor customizes the shell startup banner and prompt.
//
// Usage:
//
//	doctor
//
// An interactive menu edits the banner name, FIGlet font and color, the
// prompt layout and color, and an optional password. Choosing "save and
// exit" writes the settings file (~/.doctor_config.json) and overwrites the
// shell init file (~/.bashrc) with a block that draws the banner and sets PS1.
// Pressing ctrl+c quits without saving.
//
// Paths and timings can be changed in ~/.config/doctor/settings.yaml.
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/dkoosis/doctor/internal/config"
	"github.com/dkoosis/doctor/internal/logger"
	"github.com/dkoosis/doctor/internal/script"
	"github.com/dkoosis/doctor/internal/store"
	"github.com/dkoosis/doctor/internal/ui"
	"github.com/dkoosis/doctor/internal/version"
	"github.com/dkoosis/doctor/internal/wizard"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

func run(stdin io.Reader, stdout, stderr io.Writer) int {
	if !isTTY(stdin) || !isTTY(stdout) {
		fmt.Fprintln(stderr, "doctor: an interactive terminal is required")
		return 1
	}

	settings := config.LoadConfig()

	log, closeLog, err := logger.Setup(logger.Config{Path: settings.LogFile, Debug: settings.Debug})
	if err != nil {
		fmt.Fprintf(stderr, "Warning: debug log unavailable: %v\n", err)
	}
	defer func() { _ = closeLog() }()

	width, height := termSize(stdout)
	st := store.New(settings.ConfigFile, log)
	model := wizard.New(st.Load(), wizard.Options{
		Store:      st,
		Generator:  script.New(settings.InitFile, log),
		Theme:      ui.ForSettings(settings.NoColor),
		Logger:     log,
		Loading:    settings.Loading,
		ErrorPause: settings.ErrorPause,
		Width:      width,
		Height:     height,
		Version:    version.String(),
	})

	final, err := tea.NewProgram(model, tea.WithInput(stdin), tea.WithOutput(stdout)).Run()
	if err != nil {
		log.Error("program.run", "error", err)
		fmt.Fprintf(stderr, "doctor: %v\n", err)
		return 1
	}
	if m, ok := final.(wizard.Model); ok {
		log.Info("session.end", "outcome", int(m.Outcome()))
	}
	return 0
}

// isTTY reports whether v is a terminal file.
func isTTY(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termSize returns the terminal dimensions for w, defaulting to 80x24.
func termSize(w io.Writer) (width, height int) {
	width, height = 80, 24
	if f, ok := w.(*os.File); ok {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			if tw > 0 {
				width = tw
			}
			if th > 0 {
				height = th
			}
		}
	}
	return width, height
}
