package app

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/cesd/internal/install"
	"github.com/abhisek/cesd/internal/router"
	"github.com/abhisek/cesd/internal/screen"
	"github.com/abhisek/cesd/internal/screens/questionnaire"
	"github.com/abhisek/cesd/internal/screens/results"
	"github.com/abhisek/cesd/internal/screens/welcome"
	sess "github.com/abhisek/cesd/internal/session"
	"github.com/abhisek/cesd/internal/ui/components"
	"github.com/abhisek/cesd/internal/ui/layout"
	"github.com/abhisek/cesd/internal/ui/theme"
)

// Options configures the application.
type Options struct {
	State     *sess.State
	DarkMode  bool
	Logger    zerolog.Logger
	Installer *install.Installer // nil disables the install notice
}

// Result reports state the caller persists after the program exits.
type Result struct {
	DarkMode bool
	// ThemeChanged is true when the user toggled the theme during the run.
	ThemeChanged bool
}

// NoticeMsg delivers the install notice. It is sent at most once.
type NoticeMsg struct {
	Target string
}

// InstallDoneMsg reports the outcome of an install triggered from the notice.
type InstallDoneMsg struct {
	Path string
	Err  error
}

type globalKeys struct {
	Quit    key.Binding
	Theme   key.Binding
	Install key.Binding
	Dismiss key.Binding
}

func newGlobalKeys() globalKeys {
	return globalKeys{
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "Quit")),
		Theme:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("Ctrl+T", "Theme")),
		Install: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("Ctrl+O", "Install"), key.WithDisabled()),
		Dismiss: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("Ctrl+X", "Dismiss"), key.WithDisabled()),
	}
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	state     *sess.State
	log       zerolog.Logger
	installer *install.Installer
	keys      globalKeys

	width  int
	height int

	dark         bool
	themeChanged bool

	notice      string // install banner text; empty when hidden
	noticeShown bool
	installing  bool
}

// newAppModel creates an AppModel starting at the welcome screen.
func newAppModel(opts Options) *AppModel {
	state := opts.State
	if state == nil {
		state = sess.NewState()
	}
	theme.UseDark(opts.DarkMode)

	m := &AppModel{
		state:     state,
		log:       opts.Logger,
		installer: opts.Installer,
		keys:      newGlobalKeys(),
		dark:      opts.DarkMode,
	}
	m.router = router.New(welcome.New(m.newQuestionnaire))
	return m
}

func (m *AppModel) newQuestionnaire() screen.Screen {
	return questionnaire.New(m.state, m.log)
}

func (m *AppModel) Init() tea.Cmd {
	m.log.Info().
		Str("assessment", m.state.ID).
		Str("phase", m.state.Phase.String()).
		Msg("assessment started")
	return tea.Batch(m.router.Active().Init(), m.checkInstall())
}

// checkInstall reports the install notice when the binary is not on PATH.
func (m *AppModel) checkInstall() tea.Cmd {
	if m.installer == nil {
		return nil
	}
	inst := m.installer
	return func() tea.Msg {
		if st := inst.Check(); st.Installed {
			return nil
		}
		return NoticeMsg{Target: inst.Target()}
	}
}

func (m *AppModel) install() tea.Cmd {
	inst := m.installer
	return func() tea.Msg {
		path, err := inst.Install()
		return InstallDoneMsg{Path: path, Err: err}
	}
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case NoticeMsg:
		if m.noticeShown {
			return m, nil
		}
		m.noticeShown = true
		m.notice = fmt.Sprintf("Install cesd to %s so it is available on your PATH?", msg.Target)
		m.setNoticeKeys(true)
		m.log.Info().Str("target", msg.Target).Msg("install notice shown")
		return m, nil

	case InstallDoneMsg:
		m.installing = false
		if msg.Err != nil {
			m.notice = "Install failed: " + msg.Err.Error()
			m.keys.Install.SetEnabled(false)
			m.log.Error().Err(msg.Err).Msg("install failed")
			return m, nil
		}
		m.notice = ""
		m.setNoticeKeys(false)
		m.log.Info().Str("path", msg.Path).Msg("installed")
		return m, nil

	case questionnaire.SubmittedMsg:
		m.log.Info().
			Str("assessment", m.state.ID).
			Str("phase", m.state.Phase.String()).
			Msg("showing results")
		return m, m.router.Replace(results.New(msg.Result))

	case results.RetakeMsg:
		m.state.Reset()
		m.log.Info().
			Str("assessment", m.state.ID).
			Str("phase", m.state.Phase.String()).
			Msg("assessment restarted")
		return m, m.router.Replace(m.newQuestionnaire())

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m.toggleTheme()
			return m, nil
		case key.Matches(msg, m.keys.Install):
			if m.installing {
				return m, nil
			}
			m.installing = true
			m.notice = "Installing…"
			return m, m.install()
		case key.Matches(msg, m.keys.Dismiss):
			m.notice = ""
			m.setNoticeKeys(false)
			m.log.Debug().Msg("install notice dismissed")
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m *AppModel) toggleTheme() {
	m.dark = !m.dark
	m.themeChanged = true
	theme.UseDark(m.dark)
	m.log.Debug().Bool("dark", m.dark).Msg("theme toggled")
}

func (m *AppModel) setNoticeKeys(on bool) {
	m.keys.Install.SetEnabled(on)
	m.keys.Dismiss.SetEnabled(on)
}

func (m *AppModel) footerBindings() []key.Binding {
	var bindings []key.Binding
	if p, ok := m.router.Active().(screen.KeyBindingProvider); ok {
		bindings = append(bindings, p.KeyBindings()...)
	}
	return append(bindings, m.keys.Install, m.keys.Dismiss, m.keys.Theme, m.keys.Quit)
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.dark, m.width)
	if m.notice != "" {
		banner := components.Notice("Install", m.notice, components.ContentWidth(m.width))
		header = lipgloss.JoinVertical(lipgloss.Center, header, banner)
	}
	footer := layout.RenderFooter(layout.HintsFromBindings(m.footerBindings()), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and returns the final theme state.
func Run(opts Options) (Result, error) {
	m := newAppModel(opts)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		opts.Logger.Error().Err(err).Msg("program exited with error")
		return Result{DarkMode: m.dark}, err
	}

	if fm, ok := final.(*AppModel); ok {
		m = fm
	}
	return Result{DarkMode: m.dark, ThemeChanged: m.themeChanged}, nil
}
