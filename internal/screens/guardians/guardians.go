// Package guardians lists the guardians with their unlock cost and
// journey progress.
package guardians

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/ecoamazonia/guardioes/internal/catalog"
	"github.com/ecoamazonia/guardioes/internal/profile"
	"github.com/ecoamazonia/guardioes/internal/router"
	"github.com/ecoamazonia/guardioes/internal/screen"
	journeyscreen "github.com/ecoamazonia/guardioes/internal/screens/journey"
	"github.com/ecoamazonia/guardioes/internal/ui/components"
	"github.com/ecoamazonia/guardioes/internal/ui/layout"
	"github.com/ecoamazonia/guardioes/internal/ui/theme"
)

// GuardiansScreen shows every guardian in catalog order.
type GuardiansScreen struct {
	env       *screen.Env
	guardians []catalog.Guardian
	selected  int
	notice    string
	errMsg    string
}

var _ screen.Screen = (*GuardiansScreen)(nil)
var _ screen.KeyHintProvider = (*GuardiansScreen)(nil)

// New creates a GuardiansScreen.
func New(env *screen.Env) *GuardiansScreen {
	return &GuardiansScreen{env: env, guardians: env.Catalog.All()}
}

func (s *GuardiansScreen) Init() tea.Cmd {
	return nil
}

func (s *GuardiansScreen) Title() string {
	return s.env.T("home_guardians")
}

func (s *GuardiansScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: s.action()},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *GuardiansScreen) current() (*catalog.Guardian, bool) {
	if s.selected < 0 || s.selected >= len(s.guardians) {
		return nil, false
	}
	return &s.guardians[s.selected], true
}

// action names what Enter does for the selected guardian.
func (s *GuardiansScreen) action() string {
	g, ok := s.current()
	sess := s.env.Session
	if !ok || sess == nil {
		return ""
	}
	switch {
	case !sess.IsUnlocked(g.ID) && sess.Balance() < g.Cost:
		return s.env.T("guardians_insufficient", g.Cost)
	case !sess.IsUnlocked(g.ID):
		return s.env.T("guardians_unlock", g.Cost)
	case sess.Progress(g.ID) >= g.StageCount():
		return s.env.T("guardians_review")
	default:
		return s.env.T("guardians_continue")
	}
}

// affordable is false only for a locked guardian the player cannot pay for.
func (s *GuardiansScreen) affordable() bool {
	g, ok := s.current()
	sess := s.env.Session
	if !ok || sess == nil {
		return false
	}
	return sess.IsUnlocked(g.ID) || sess.Balance() >= g.Cost
}

func (s *GuardiansScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
			s.notice, s.errMsg = "", ""
		}
	case "down", "j":
		if s.selected < len(s.guardians)-1 {
			s.selected++
			s.notice, s.errMsg = "", ""
		}
	case "enter":
		return s, s.activate()
	}
	return s, nil
}

func (s *GuardiansScreen) activate() tea.Cmd {
	g, ok := s.current()
	sess := s.env.Session
	if !ok || sess == nil {
		return nil
	}
	lang := s.env.Language()

	if !sess.IsUnlocked(g.ID) {
		err := sess.UnlockGuardian(context.Background(), g)
		switch {
		case errors.Is(err, profile.ErrInsufficientPoints):
			s.errMsg = s.env.T("guardians_insufficient", g.Cost)
		case err != nil:
			s.env.Log().Error("unlock failed", zap.Int("guardian_id", g.ID), zap.Error(err))
			s.errMsg = err.Error()
		default:
			s.errMsg = ""
			s.notice = s.env.T("guardians_unlocked", g.Name.Get(lang))
		}
		return nil
	}

	j, err := journeyscreen.New(s.env, g)
	if err != nil {
		s.env.Log().Error("open journey failed", zap.Int("guardian_id", g.ID), zap.Error(err))
		s.errMsg = err.Error()
		return nil
	}
	return func() tea.Msg { return router.PushScreenMsg{Screen: j} }
}

func (s *GuardiansScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	lang := s.env.Language()
	sess := s.env.Session

	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(cw).Render(s.env.T("guardians_intro")))
	b.WriteString("\n\n")

	for i, g := range s.guardians {
		name := g.Name.Get(lang)
		var status string
		unlocked := sess != nil && sess.IsUnlocked(g.ID)
		if unlocked {
			bar := components.NewProgressBar("", sess.Progress(g.ID), g.StageCount(), 24)
			status = bar.View()
		} else {
			status = theme.Disabled.Render(fmt.Sprintf("🔒 %d PN", g.Cost))
		}

		prefix := "  "
		nameStyle := theme.Unselected
		if i == s.selected {
			prefix = "▸ "
			nameStyle = theme.Selected
		}
		if !unlocked {
			nameStyle = nameStyle.Foreground(theme.Locked)
		}
		line := nameStyle.Render(prefix+name) + "  " + status
		b.WriteString(line)
		b.WriteString("\n")
	}

	if g, ok := s.current(); ok {
		detail := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(g.Description.Get(lang))
		detail += "\n\n" + components.Action(s.action(), s.affordable())
		b.WriteString("\n")
		b.WriteString(components.Card(detail, cw))
	}

	switch {
	case s.errMsg != "":
		b.WriteString("\n" + theme.Incorrect.Render(s.errMsg))
	case s.notice != "":
		b.WriteString("\n" + theme.Correct.Render(s.notice))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}
