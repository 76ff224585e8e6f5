// Package wizard implements the interactive customization menu as a Bubble
// Tea model.
//
// The model owns the only in-memory profile.Config for the whole session.
// Edits stay in memory until the user picks "save and exit" or confirms a
// reset; only those two actions call Store.Save and Generator.Write.
// Pressing ctrl+c ends the session without writing anything.
package wizard

import (
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/doctor/internal/logger"
	"github.com/dkoosis/doctor/internal/preview"
	"github.com/dkoosis/doctor/internal/profile"
	"github.com/dkoosis/doctor/internal/ui"
)

// Store persists the configuration record.
type Store interface {
	Save(cfg profile.Config) error
}

// Generator writes the shell startup script for a configuration record.
type Generator interface {
	Write(cfg profile.Config) error
}

// Options configures a Model.
type Options struct {
	Store     Store
	Generator Generator
	Theme     *ui.Theme
	Logger    *slog.Logger

	// Loading is the duration of the cosmetic loading bar; zero skips it.
	Loading time.Duration
	// ErrorPause blocks input after a validation error; zero disables it.
	ErrorPause time.Duration

	// Width and Height are the initial terminal size, updated on resize.
	Width  int
	Height int

	Version string
}

// Outcome describes how the session ended.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeSaved
	OutcomeInterrupted
)

type screen int

const (
	screenWelcome screen = iota
	screenLoading
	screenMenu
	screenName
	screenBannerStyle
	screenBannerColor
	screenPromptStyle
	screenPromptColor
	screenPasswordToggle
	screenPasswordEntry
	screenPasswordConfirm
	screenAgain
	screenPreview
	screenReset
	screenDone
)

var screenNames = [...]string{
	"welcome", "loading", "menu", "name", "banner_style", "banner_color",
	"prompt_style", "prompt_color", "password_toggle", "password_entry",
	"password_confirm", "again", "preview", "reset", "done",
}

func (s screen) String() string {
	if int(s) < len(screenNames) {
		return screenNames[s]
	}
	return "unknown"
}

// Main menu entries, numbered from 1.
const (
	actionName = iota + 1
	actionBannerStyle
	actionBannerColor
	actionPromptStyle
	actionPromptColor
	actionPassword
	actionPreview
	actionReset
	actionSaveExit
)

var menuItems = []string{
	"Change name/banner",
	"Change ASCII banner style",
	"Change banner color",
	"Change prompt style",
	"Change prompt color",
	"Enable / disable password",
	"Preview panel",
	"Restore default settings",
	"Save and exit",
}

const loadingSteps = 20

type loadingTickMsg struct{}

type pauseDoneMsg struct{}

type loadingState struct {
	label string
	step  int
	next  screen
}

// Model is the wizard state machine.
type Model struct {
	cfg  profile.Config
	opts Options
	log  *slog.Logger

	screen screen
	editor screen // editor reopened when "change again?" is answered yes

	choice   choiceInput
	text     textinput.Model
	confirm  confirmInput
	bar      progress.Model
	viewport viewport.Model
	loading  loadingState

	firstPassword string

	status  string
	errMsg  string
	paused  bool
	outcome Outcome
}

// New returns a wizard starting at the welcome screen with cfg as the
// in-memory configuration.
func New(cfg profile.Config, opts Options) Model {
	if opts.Theme == nil {
		opts.Theme = ui.DefaultTheme()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	ti := textinput.New()
	ti.Prompt = "> "

	return Model{
		cfg:      cfg,
		opts:     opts,
		log:      opts.Logger,
		screen:   screenWelcome,
		choice:   newChoiceInput(),
		text:     ti,
		bar:      progress.New(progress.WithDefaultGradient()),
		viewport: viewport.New(opts.Width, opts.Height),
	}
}

// Config returns the current in-memory configuration.
func (m Model) Config() profile.Config { return m.cfg }

// Outcome reports how the session ended.
func (m Model) Outcome() Outcome { return m.outcome }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.opts.Width, m.opts.Height = msg.Width, msg.Height
		m.bar.Width = min(msg.Width-4, 60)
		if m.screen == screenPreview {
			m.refreshPreview()
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.Interrupt) {
			return m.interrupt()
		}
		if m.paused || m.screen == screenLoading || m.screen == screenDone {
			return m, nil
		}
	case loadingTickMsg:
		return m.advanceLoading()
	case pauseDoneMsg:
		m.paused = false
		return m, nil
	}

	switch m.screen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenName:
		return m.updateName(msg)
	case screenBannerStyle, screenBannerColor, screenPromptStyle, screenPromptColor:
		return m.updateChoiceEditor(msg)
	case screenPasswordToggle:
		return m.updatePasswordToggle(msg)
	case screenPasswordEntry, screenPasswordConfirm:
		return m.updatePasswordEntry(msg)
	case screenAgain:
		return m.updateAgain(msg)
	case screenPreview:
		return m.updatePreview(msg)
	case screenReset:
		return m.updateReset(msg)
	}
	return m, nil
}

func (m Model) interrupt() (tea.Model, tea.Cmd) {
	m.log.Info("wizard.interrupted", "screen", m.screen.String())
	m.outcome = OutcomeInterrupted
	m.screen = screenDone
	return m, tea.Quit
}

func (m Model) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.Submit) {
		return m.startLoading("Loading customization panel", screenMenu)
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		n   int
		ok  bool
		cmd tea.Cmd
	)
	m.choice, n, ok, cmd = m.choice.update(msg)
	if !ok {
		return m, cmd
	}

	m.status, m.errMsg = "", ""
	m.log.Debug("wizard.menu", "action", n)
	if n == actionSaveExit {
		return m.saveAndExit()
	}
	cmd = m.show(menuTargets[n])
	return m, cmd
}

// menuTargets maps main menu actions to the screen they open.
var menuTargets = map[int]screen{
	actionName:        screenName,
	actionBannerStyle: screenBannerStyle,
	actionBannerColor: screenBannerColor,
	actionPromptStyle: screenPromptStyle,
	actionPromptColor: screenPromptColor,
	actionPassword:    screenPasswordToggle,
	actionPreview:     screenPreview,
	actionReset:       screenReset,
}

func (m Model) updateAgain(msg tea.Msg) (tea.Model, tea.Cmd) {
	again, done := m.confirm.update(msg)
	if !done {
		return m, nil
	}
	if again {
		cmd := m.show(m.editor)
		return m, cmd
	}
	// Editor messages belong to the finished micro-loop.
	m.status, m.errMsg = "", ""
	return m.startLoading(applyingLabel(m.editor), screenMenu)
}

func (m Model) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && (key.Matches(k, keys.Submit) || key.Matches(k, keys.Back)) {
		cmd := m.show(screenMenu)
		return m, cmd
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	accept, done := m.confirm.update(msg)
	if !done {
		return m, nil
	}
	if !accept {
		m.log.Debug("wizard.reset.declined")
		cmd := m.show(screenMenu)
		return m, cmd
	}

	m.cfg = profile.Default()
	m.log.Info("wizard.reset")
	if err := m.persist(); err != nil {
		m.errMsg = err.Error()
		cmd := m.show(screenMenu)
		return m, cmd
	}
	m.status = "Settings restored to defaults."
	return m.startLoading("Restoring default settings", screenMenu)
}

// saveAndExit persists unconditionally. A failed write keeps the session
// alive at the menu so the user can retry or quit.
func (m Model) saveAndExit() (tea.Model, tea.Cmd) {
	if err := m.persist(); err != nil {
		m.errMsg = err.Error()
		cmd := m.show(screenMenu)
		return m, cmd
	}
	m.log.Info("wizard.saved")
	m.outcome = OutcomeSaved
	m.screen = screenDone
	return m, tea.Quit
}

// persist writes the configuration file and the shell script. Both are
// attempted; their failures are joined.
func (m *Model) persist() error {
	var errs []error
	if m.opts.Store != nil {
		if err := m.opts.Store.Save(m.cfg); err != nil {
			m.log.Error("wizard.persist.config", "error", err)
			errs = append(errs, err)
		}
	}
	if m.opts.Generator != nil {
		if err := m.opts.Generator.Write(m.cfg); err != nil {
			m.log.Error("wizard.persist.script", "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// show switches to s and prepares its input.
func (m *Model) show(s screen) tea.Cmd {
	m.log.Debug("wizard.screen", "from", m.screen.String(), "to", s.String())
	m.screen = s
	m.paused = false

	switch s {
	case screenMenu:
		return m.choice.reset(1, len(menuItems))
	case screenName:
		m.errMsg = ""
		m.text.EchoMode = textinput.EchoNormal
		m.text.CharLimit = 0
		m.text.Placeholder = profile.FallbackName
		m.text.SetValue(m.cfg.Name)
		m.text.CursorEnd()
		return m.text.Focus()
	case screenBannerStyle:
		return m.choice.reset(0, len(profile.BannerStyles)-1)
	case screenBannerColor, screenPromptColor:
		return m.choice.reset(0, len(profile.Colors)-1)
	case screenPromptStyle:
		return m.choice.reset(0, len(profile.PromptStyles)-1)
	case screenPasswordToggle:
		m.errMsg = ""
		m.confirm = confirmInput{question: "Enable password?", def: m.cfg.PasswordEnabled}
	case screenPasswordEntry, screenPasswordConfirm:
		m.text.EchoMode = textinput.EchoPassword
		m.text.EchoCharacter = '•'
		m.text.CharLimit = 0
		m.text.Placeholder = ""
		m.text.SetValue("")
		return m.text.Focus()
	case screenPreview:
		m.refreshPreview()
		m.viewport.GotoTop()
	case screenReset:
		m.confirm = confirmInput{question: "Confirm reset?", def: false}
	}
	return nil
}

// askAgain opens the "change again?" question for editor.
func (m *Model) askAgain(editor screen, question string) tea.Cmd {
	m.text.Blur()
	m.editor = editor
	m.confirm = confirmInput{question: question, def: false}
	m.screen = screenAgain
	return nil
}

func (m Model) startLoading(label string, next screen) (tea.Model, tea.Cmd) {
	if m.opts.Loading <= 0 {
		cmd := m.show(next)
		return m, cmd
	}
	m.loading = loadingState{label: label, next: next}
	m.screen = screenLoading
	return m, m.tickLoading()
}

func (m Model) tickLoading() tea.Cmd {
	return tea.Tick(m.opts.Loading/loadingSteps, func(time.Time) tea.Msg {
		return loadingTickMsg{}
	})
}

func (m Model) advanceLoading() (tea.Model, tea.Cmd) {
	if m.screen != screenLoading {
		return m, nil
	}
	m.loading.step++
	if m.loading.step >= loadingSteps {
		cmd := m.show(m.loading.next)
		return m, cmd
	}
	return m, m.tickLoading()
}

// pause blocks key input for ErrorPause after a validation error.
func (m *Model) pause() tea.Cmd {
	if m.opts.ErrorPause <= 0 {
		return nil
	}
	m.paused = true
	return tea.Tick(m.opts.ErrorPause, func(time.Time) tea.Msg {
		return pauseDoneMsg{}
	})
}

func (m *Model) refreshPreview() {
	r := preview.New(m.opts.Theme, m.opts.Width)
	content := r.Render(m.cfg)
	m.viewport.Width = m.opts.Width
	m.viewport.Height = m.opts.Height - 3
	if m.opts.Height <= 3 {
		m.viewport.Height = lipgloss.Height(content)
	}
	m.viewport.SetContent(content)
}

func applyingLabel(editor screen) string {
	switch editor {
	case screenName:
		return "Applying name"
	case screenBannerStyle:
		return "Applying banner style"
	case screenBannerColor:
		return "Applying banner color"
	case screenPromptStyle:
		return "Applying prompt style"
	case screenPromptColor:
		return "Applying prompt color"
	case screenPasswordToggle:
		return "Configuring password"
	}
	return "Applying"
}
