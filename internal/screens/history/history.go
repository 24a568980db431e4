package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/ecoamazonia/guardioes/internal/router"
	"github.com/ecoamazonia/guardioes/internal/screen"
	"github.com/ecoamazonia/guardioes/internal/store"
	"github.com/ecoamazonia/guardioes/internal/ui/layout"
	"github.com/ecoamazonia/guardioes/internal/ui/theme"
)

const historyLimit = 50

type historyLoadedMsg struct {
	Entries []store.HistoryEntry
	Err     error
}

// HistoryScreen lists the signed-in player's stages, unlocks and quizzes.
type HistoryScreen struct {
	env      *screen.Env
	entries  []store.HistoryEntry
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(env *screen.Env) *HistoryScreen {
	return &HistoryScreen{
		env:      env,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.env.Events
	if repo == nil {
		return func() tea.Msg { return historyLoadedMsg{} }
	}
	username := ""
	if s.env.Session != nil {
		username = s.env.Session.Username()
	}
	return func() tea.Msg {
		entries, err := repo.History(context.Background(), store.QueryOpts{
			Limit:    historyLimit * 2,
			Username: username,
		})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Entries: visible(entries)}
	}
}

// visible drops award rows that repeat a stage or quiz row.
func visible(entries []store.HistoryEntry) []store.HistoryEntry {
	out := make([]store.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if e.Kind == store.HistoryAward {
			switch e.Award.Source {
			case store.AwardSourceStage, store.AwardSourceQuiz:
				continue
			}
		}
		out = append(out, e)
		if len(out) == historyLimit {
			break
		}
	}
	return out
}

func (s *HistoryScreen) Title() string {
	return s.env.T("home_history")
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) guardianName(id int) string {
	if s.env.Catalog != nil {
		if g, err := s.env.Catalog.Get(id); err == nil {
			return g.Name.Get(s.env.Language())
		}
	}
	return fmt.Sprintf("#%d", id)
}

// describe renders the one-line summary of e and the PN it moved.
func (s *HistoryScreen) describe(e store.HistoryEntry) (string, int) {
	switch e.Kind {
	case store.HistoryStage:
		line := s.env.T("history_stage", s.guardianName(e.Stage.GuardianID), e.Stage.Stage)
		if !e.Stage.Applied {
			line += " " + s.env.T("history_replay")
			return line, 0
		}
		return line, e.Stage.Points
	case store.HistoryQuiz:
		return s.env.T("history_quiz", e.Quiz.Correct, e.Quiz.Questions), e.Quiz.Points
	case store.HistoryAward:
		if e.Award.Source == store.AwardSourceUnlock {
			var id int
			if _, err := fmt.Sscanf(e.Award.Reason, "guardian %d", &id); err == nil {
				return s.env.T("history_unlock", s.guardianName(id)), e.Award.Amount
			}
		}
		return s.env.T("history_award", e.Award.Reason), e.Award.Amount
	}
	return string(e.Kind), 0
}

func (s *HistoryScreen) details(e store.HistoryEntry) []string {
	lines := []string{e.Timestamp.Local().Format("02/01/2006 15:04")}
	switch e.Kind {
	case store.HistoryQuiz:
		lines = append(lines, s.env.T("history_topic", e.Quiz.Topic))
		if e.Quiz.Fallback {
			lines = append(lines, s.env.T("summary_fallback"))
		}
	case store.HistoryAward:
		lines = append(lines, s.env.T("history_balance", e.Award.Balance))
	}
	return lines
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  " + s.env.T("history_loading"))
	}
	if s.env.Events == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  " + s.env.T("history_off"))
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  " + s.env.T("history_empty"))
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, e := range s.entries {
		text, pn := s.describe(e)

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		pnStr := ""
		if pn != 0 {
			pnStr = fmt.Sprintf("  %+d PN", pn)
		}
		line := fmt.Sprintf("%s%s  %s%s", prefix, e.Timestamp.Local().Format("02/01"), text, pnStr)

		style := lipgloss.NewStyle().Foreground(amountColor(pn))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, d := range s.details(e) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("    "+d)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func amountColor(pn int) color.Color {
	switch {
	case pn > 0:
		return theme.Success
	case pn < 0:
		return theme.Warning
	default:
		return theme.Text
	}
}
