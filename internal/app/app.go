package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/ecoamazonia/guardioes/internal/router"
	"github.com/ecoamazonia/guardioes/internal/screen"
	"github.com/ecoamazonia/guardioes/internal/screens/home"
	"github.com/ecoamazonia/guardioes/internal/screens/login"
	"github.com/ecoamazonia/guardioes/internal/screens/welcome"
	"github.com/ecoamazonia/guardioes/internal/selfupdate"
	"github.com/ecoamazonia/guardioes/internal/ui/layout"
)

const updateCheckTimeout = 3 * time.Second

// Options configures the TUI.
type Options struct {
	Env *screen.Env

	// Checker looks for a newer release on start. Nil skips the check.
	Checker *selfupdate.Checker
	Version string

	// SkipWelcome starts directly at sign-in or home.
	SkipWelcome bool
}

type updateAvailableMsg struct {
	Version string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env     *screen.Env
	router  *router.Router
	checker *selfupdate.Checker
	version string
	width   int
	height  int
}

// newAppModel creates a new AppModel. A resumed session lands on home,
// otherwise on sign-in, both behind the welcome screen.
func newAppModel(opts Options) AppModel {
	env := opts.Env
	var signIn, homeScreen func() screen.Screen
	homeScreen = func() screen.Screen { return home.New(env, signIn) }
	signIn = func() screen.Screen { return login.New(env, homeScreen) }

	next := signIn
	if env.Session != nil && !env.Session.Closed() {
		next = homeScreen
	}
	first := next
	if !opts.SkipWelcome {
		first = func() screen.Screen { return welcome.New(env, next) }
	}

	return AppModel{
		env:     env,
		router:  router.New(first()),
		checker: opts.Checker,
		version: opts.Version,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.checkForUpdate())
}

func (m AppModel) checkForUpdate() tea.Cmd {
	if m.checker == nil || m.version == "" || m.version == "(devel)" {
		return nil
	}
	checker, version, logger := m.checker, m.version, m.env.Log()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), updateCheckTimeout)
		defer cancel()
		res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil {
			logger.Debug("update check failed", zap.Error(err))
			return nil
		}
		if !res.UpdateAvailable {
			return nil
		}
		return updateAvailableMsg{Version: res.LatestVersion}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case updateAvailableMsg:
		m.env.LatestVersion = msg.Version
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.Close()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
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

	header := layout.RenderHeader(title, m.env.Status(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

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

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
