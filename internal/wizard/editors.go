package wizard

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkoosis/doctor/internal/profile"
)

func (m Model) updateName(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || !key.Matches(k, keys.Submit) {
		var cmd tea.Cmd
		m.text, cmd = m.text.Update(msg)
		return m, cmd
	}

	name := strings.TrimSpace(m.text.Value())
	if err := profile.ValidateName(name); err != nil {
		m.log.Debug("wizard.name.rejected", "error", err)
		m.errMsg = "Please type letters and spaces only."
		cmd := m.pause()
		return m, cmd
	}

	m.errMsg = ""
	m.cfg.Name = name
	m.log.Debug("wizard.name", "name", name)
	cmd := m.askAgain(screenName, "Change the name again?")
	return m, cmd
}

// updateChoiceEditor handles the four editors that pick an index from a
// fixed table.
func (m Model) updateChoiceEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		n   int
		ok  bool
		cmd tea.Cmd
	)
	m.choice, n, ok, cmd = m.choice.update(msg)
	if !ok {
		return m, cmd
	}

	editor := m.screen
	var question string
	switch editor {
	case screenBannerStyle:
		m.cfg.BannerStyle = n
		question = "Change the banner style again?"
	case screenBannerColor:
		m.cfg.BannerColor = profile.Colors[n]
		question = "Change the banner color again?"
	case screenPromptStyle:
		m.cfg.Style = n
		question = "Change the prompt style again?"
	case screenPromptColor:
		m.cfg.Color = profile.Colors[n]
		question = "Change the prompt color again?"
	}
	m.log.Debug("wizard.choice", "screen", editor.String(), "index", n)

	cmd = m.askAgain(editor, question)
	return m, cmd
}

func (m Model) updatePasswordToggle(msg tea.Msg) (tea.Model, tea.Cmd) {
	enable, done := m.confirm.update(msg)
	if !done {
		return m, nil
	}

	m.cfg.PasswordEnabled = enable
	if enable {
		m.status = ""
		cmd := m.show(screenPasswordEntry)
		return m, cmd
	}

	m.cfg.Password = ""
	m.status = "Password removed."
	m.log.Debug("wizard.password.disabled")
	cmd := m.askAgain(screenPasswordToggle, "Change the password again?")
	return m, cmd
}

// updatePasswordEntry reads the password and its confirmation. A mismatch
// disables the password and clears the stored value.
func (m Model) updatePasswordEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || !key.Matches(k, keys.Submit) {
		var cmd tea.Cmd
		m.text, cmd = m.text.Update(msg)
		return m, cmd
	}

	if m.screen == screenPasswordEntry {
		m.firstPassword = m.text.Value()
		cmd := m.show(screenPasswordConfirm)
		return m, cmd
	}

	second := m.text.Value()
	m.text.SetValue("")
	if second == m.firstPassword {
		m.cfg.Password = second
		m.status = "Password set."
		m.log.Debug("wizard.password.set")
	} else {
		m.cfg.PasswordEnabled = false
		m.cfg.Password = ""
		m.status = ""
		m.errMsg = "Passwords do not match. The password was disabled."
		m.log.Debug("wizard.password.mismatch")
	}
	m.firstPassword = ""

	cmd := m.askAgain(screenPasswordToggle, "Change the password again?")
	return m, cmd
}
