package home

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/ecoamazonia/guardioes/internal/i18n"
	"github.com/ecoamazonia/guardioes/internal/router"
	"github.com/ecoamazonia/guardioes/internal/screen"
	"github.com/ecoamazonia/guardioes/internal/screens/guardians"
	"github.com/ecoamazonia/guardioes/internal/screens/history"
	quizscreen "github.com/ecoamazonia/guardioes/internal/screens/quiz"
	"github.com/ecoamazonia/guardioes/internal/ui/components"
	"github.com/ecoamazonia/guardioes/internal/ui/layout"
)

const (
	itemGuardians = iota
	itemQuiz
	itemHistory
	itemLanguage
	itemLogout
)

// HomeScreen is the main menu of a signed-in player.
type HomeScreen struct {
	env    *screen.Env
	signIn func() screen.Screen
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. signIn builds the screen shown after logout.
func New(env *screen.Env, signIn func() screen.Screen) *HomeScreen {
	h := &HomeScreen{env: env, signIn: signIn}
	h.menu = components.NewMenu(h.items())
	return h
}

func (h *HomeScreen) labels() []string {
	return []string{
		h.env.T("home_guardians"),
		h.env.T("home_quiz"),
		h.env.T("home_history"),
		h.env.T("home_language", h.env.Language().DisplayName()),
		h.env.T("home_logout"),
	}
}

func (h *HomeScreen) items() []components.MenuItem {
	labels := h.labels()
	push := func(s func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			next := s()
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}
	return []components.MenuItem{
		{Label: labels[itemGuardians], Action: push(func() screen.Screen { return guardians.New(h.env) })},
		{Label: labels[itemQuiz], Action: push(func() screen.Screen { return quizscreen.New(h.env) })},
		{Label: labels[itemHistory], Action: push(func() screen.Screen { return history.New(h.env) })},
		{Label: labels[itemLanguage], Action: h.cycleLanguage},
		{Label: labels[itemLogout], Action: h.logout},
	}
}

func (h *HomeScreen) cycleLanguage() tea.Cmd {
	sess := h.env.Session
	if sess == nil {
		return nil
	}
	cur := slices.Index(i18n.Languages, sess.Language())
	next := i18n.Languages[(cur+1)%len(i18n.Languages)]
	if err := sess.SetLanguage(next); err != nil {
		h.env.Log().Error("set language failed", zap.Error(err))
		h.errMsg = err.Error()
		return nil
	}
	selected := h.menu.Selected
	h.menu = components.NewMenu(h.items())
	h.menu.Selected = selected
	return nil
}

func (h *HomeScreen) logout() tea.Cmd {
	if sess := h.env.Session; sess != nil {
		if err := sess.Logout(); err != nil {
			h.env.Log().Warn("logout failed", zap.Error(err))
		}
	}
	h.env.Session = nil
	next := h.signIn()
	return func() tea.Msg { return router.ResetScreenMsg{Screen: next} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return h.env.T("app_name")
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) stats() stats {
	all := h.env.Catalog.All()
	s := stats{guardians: len(all)}
	if h.env.Session == nil {
		return s
	}
	s.balance = h.env.Session.Balance()
	for _, g := range all {
		if h.env.Session.IsUnlocked(g.ID) {
			s.unlocked++
		}
		s.stages += h.env.Session.Progress(g.ID)
	}
	return s
}

// mascot celebrates once every journey is done and perks up when a locked
// guardian is affordable.
func (h *HomeScreen) mascot() MascotVariant {
	sess := h.env.Session
	if sess == nil {
		return MascotIdle
	}
	all := h.env.Catalog.All()
	done := len(all) > 0
	for _, g := range all {
		if !sess.IsUnlocked(g.ID) && sess.Balance() >= g.Cost {
			return MascotAlert
		}
		if sess.Progress(g.ID) < g.StageCount() {
			done = false
		}
	}
	if done {
		return MascotCelebrating
	}
	return MascotIdle
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer to judge the
	// terminal size.
	compact := layout.IsCompact(width, height+8)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot(), cw))
	}
	if h.env.Session != nil {
		sections = append(sections, renderNote(h.env.T("home_greeting", h.env.Session.Username(), h.env.Session.Balance()), cw))
	}
	sections = append(sections, renderStatsBar(h.stats(), cw, compact))

	labels := h.labels()
	if compact {
		sections = append(sections, renderMenuCompact(labels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menu, cw))
	}

	if h.env.Quiz != nil && !h.env.Quiz.Available() {
		sections = append(sections, renderNote("⚠ "+h.env.T("home_no_llm"), cw))
	}
	if h.env.LatestVersion != "" {
		sections = append(sections, renderNote(h.env.T("home_update", h.env.LatestVersion), cw))
	}
	if h.errMsg != "" {
		sections = append(sections, renderNote(h.errMsg, cw))
	}

	return components.Panel(strings.Join(sections, "\n\n"), width, height)
}
