package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ecoamazonia/guardioes/internal/router"
	"github.com/ecoamazonia/guardioes/internal/screen"
	"github.com/ecoamazonia/guardioes/internal/ui/components"
	"github.com/ecoamazonia/guardioes/internal/ui/layout"
	"github.com/ecoamazonia/guardioes/internal/ui/theme"
)

// Answer is one question as the player answered it.
type Answer struct {
	Question string
	Chosen   string
	Correct  string
}

// Right reports whether the chosen option was the correct one.
func (a Answer) Right() bool { return a.Chosen == a.Correct }

// Result is a finished quiz round.
type Result struct {
	Questions int
	Correct   int
	Points    int
	Fallback  bool
	Answers   []Answer
}

// SummaryScreen displays a finished quiz round.
type SummaryScreen struct {
	env    *screen.Env
	result Result
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(env *screen.Env, result Result) *SummaryScreen {
	return &SummaryScreen{env: env, result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return s.env.T("summary_title")
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// verdict picks the closing line for the score.
func (s *SummaryScreen) verdict() string {
	r := s.result
	switch {
	case r.Questions > 0 && r.Correct == r.Questions:
		return s.env.T("summary_perfect")
	case r.Correct*2 >= r.Questions:
		return s.env.T("summary_good")
	default:
		return s.env.T("summary_try")
	}
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	cw := components.ContentWidth(width)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder

	b.WriteString(center(theme.Title.Render(s.env.T("summary_title"))))
	b.WriteString("\n\n")

	b.WriteString(center(theme.Body.Render(s.env.T("summary_score", r.Correct, r.Questions))))
	b.WriteString("\n")
	b.WriteString(center(theme.Points.Render(s.env.T("summary_points", r.Points))))
	b.WriteString("\n\n")
	b.WriteString(center(components.NewProgressBar("", r.Correct, r.Questions, cw-10).View()))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Subtitle.Render(s.verdict())))
	b.WriteString("\n")
	if r.Fallback {
		b.WriteString(center(theme.Hint.Render(s.env.T("summary_fallback"))))
		b.WriteString("\n")
	}

	if len(r.Answers) > 0 && height > 16 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString("\n")
		b.WriteString(center(theme.Hint.Render(s.env.T("summary_review"))))
		b.WriteString("\n")
		b.WriteString(center(divider))
		b.WriteString("\n\n")

		for i, a := range r.Answers {
			mark, style := "✓", theme.Correct
			if !a.Right() {
				mark, style = "✗", theme.Incorrect
			}
			line := fmt.Sprintf("%s %d. %s", mark, i+1, a.Question)
			b.WriteString(center(style.Width(cw).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
