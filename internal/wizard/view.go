package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/doctor/internal/profile"
	"github.com/dkoosis/doctor/internal/ui"
)

const appTitle = "Doctor Customization"

const welcomeText = `Doctor Customization - shell banner and prompt panel

Customize the ASCII banner shown when your shell starts
and the style of your prompt.

Settings are saved on exit and applied the next time a shell opens.

Press Enter to continue...`

// View implements tea.Model.
func (m Model) View() string {
	switch m.screen {
	case screenWelcome:
		return m.frame(m.theme().Styles.WelcomePanel.Render(welcomeText))
	case screenLoading:
		pct := float64(m.loading.step) / float64(loadingSteps)
		return m.frame(m.loading.label + "...\n\n" + m.bar.ViewAs(pct))
	case screenMenu:
		return m.viewMenu()
	case screenName:
		return m.viewEditor("Banner / Name", "Type your name for the custom banner:", m.text.View())
	case screenBannerStyle:
		return m.viewEditor("ASCII Banner Style", "Choose the ASCII banner style:",
			m.optionList(profile.BannerStyles, nil)+"\n\n"+m.choiceView())
	case screenBannerColor:
		return m.viewEditor("Banner Color", "Choose the banner color:",
			m.optionList(profile.Colors, profile.Colors)+"\n\n"+m.choiceView())
	case screenPromptStyle:
		return m.viewEditor("Prompt Style", "Choose the prompt style:",
			m.optionList(profile.PromptStyles, nil)+"\n\n"+m.choiceView())
	case screenPromptColor:
		return m.viewEditor("Prompt Color", "Choose the prompt color:",
			m.optionList(profile.Colors, profile.Colors)+"\n\n"+m.choiceView())
	case screenPasswordToggle:
		return m.viewEditor("Password Protection", "Enable or disable a password for your shell?", m.confirm.view())
	case screenPasswordEntry:
		return m.viewEditor("Password Protection", "Type the password:", m.text.View())
	case screenPasswordConfirm:
		return m.viewEditor("Password Protection", "Confirm the password:", m.text.View())
	case screenAgain:
		return m.frame(m.messages() + m.confirm.view())
	case screenPreview:
		help := m.theme().Styles.Muted.Render("↑/↓ scroll • enter to return to the menu")
		return m.viewport.View() + "\n" + help
	case screenReset:
		s := m.theme().Styles
		body := s.Error.Render("Restore the default settings?") + "\n" +
			"This removes every customization!"
		return m.frame(s.AlertPanel.Render(body) + "\n\n" + m.confirm.view())
	case screenDone:
		return m.viewDone()
	}
	return ""
}

func (m Model) viewMenu() string {
	s := m.theme().Styles

	var b strings.Builder
	b.WriteString(m.summary())
	b.WriteString("\n\n")
	b.WriteString(s.Title.Render("Main menu:"))
	b.WriteString("\n")
	for i, item := range menuItems {
		fmt.Fprintf(&b, "%s %s\n", s.MenuIndex.Render(fmt.Sprintf("%d.", i+1)), item)
	}

	panel := s.Panel.Render(strings.TrimRight(b.String(), "\n"))
	return m.frame(panel + "\n\n" + m.messages() + "Choose an option:\n" + m.choiceView())
}

// summary lists the current settings, or notes that none were saved yet.
func (m Model) summary() string {
	s := m.theme().Styles
	if m.cfg.Name == "" {
		return s.Text.Bold(true).Render("No settings saved yet.")
	}

	password := "No"
	if m.cfg.PasswordEnabled {
		password = "Yes"
	}
	rows := [][2]string{
		{"Name/banner", m.cfg.Name},
		{"ASCII banner style", m.cfg.BannerFont()},
		{"Banner color", ui.Title(m.cfg.BannerColor)},
		{"Prompt style", m.cfg.PromptStyleLabel()},
		{"Prompt color", ui.Title(m.cfg.Color)},
		{"Password enabled", password},
	}

	lines := []string{s.Text.Bold(true).Render("Current settings")}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("- %s: %s", r[0], s.Value.Render(r[1])))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewEditor(title, prompt, input string) string {
	s := m.theme().Styles
	header := s.Panel.Render(
		s.Title.Render(title) + "\n\n" + s.Muted.Render(prompt),
	)
	return m.frame(header + "\n\n" + m.messages() + input)
}

// optionList numbers entries from 0. When colors is set, each entry is
// shown in its own color.
func (m Model) optionList(entries, colors []string) string {
	s := m.theme().Styles
	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		label := e
		if colors != nil {
			label = ui.Title(e)
			if !m.theme().Monochrome {
				label = lipgloss.NewStyle().
					Foreground(lipgloss.Color(fmt.Sprint(profile.ANSIIndex(colors[i])))).
					Render(label)
			}
		}
		lines = append(lines, fmt.Sprintf("  %s: %s", s.MenuIndex.Render(fmt.Sprint(i)), label))
	}
	return strings.Join(lines, "\n")
}

func (m Model) choiceView() string {
	out := m.choice.view()
	if m.choice.err != "" {
		out += "\n" + m.theme().Styles.Error.Render(m.choice.err)
	}
	return out
}

// messages renders the pending status and error lines, if any.
func (m Model) messages() string {
	s := m.theme().Styles
	var out string
	if m.status != "" {
		out += s.Success.Render(m.status) + "\n"
	}
	if m.errMsg != "" {
		out += s.Error.Render(m.errMsg) + "\n"
	}
	if out != "" {
		out += "\n"
	}
	return out
}

func (m Model) viewDone() string {
	s := m.theme().Styles
	switch m.outcome {
	case OutcomeSaved:
		return s.Success.Render("Settings saved and shell customization applied! Exiting...") + "\n"
	case OutcomeInterrupted:
		return "\nExiting without saving...\n"
	}
	return ""
}

// frame appends the credits footer to a screen body.
func (m Model) frame(body string) string {
	credits := appTitle
	if m.opts.Version != "" {
		credits += " " + m.opts.Version
	}
	return body + "\n\n" + m.theme().Styles.Credits.Render(credits) + "\n"
}

func (m Model) theme() *ui.Theme {
	return m.opts.Theme
}
