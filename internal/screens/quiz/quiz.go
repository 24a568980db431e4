// Package quiz is the climate quiz screen: five questions, one round,
// points credited when the round ends.
package quiz

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/ecoamazonia/guardioes/internal/profile"
	"github.com/ecoamazonia/guardioes/internal/quiz"
	"github.com/ecoamazonia/guardioes/internal/router"
	"github.com/ecoamazonia/guardioes/internal/screen"
	"github.com/ecoamazonia/guardioes/internal/screens/summary"
	"github.com/ecoamazonia/guardioes/internal/ui/components"
	"github.com/ecoamazonia/guardioes/internal/ui/layout"
	"github.com/ecoamazonia/guardioes/internal/ui/theme"
)

type questionsMsg struct {
	Set quiz.Set
}

// QuizScreen runs one quiz round.
type QuizScreen struct {
	env    *screen.Env
	ctx    context.Context
	cancel context.CancelFunc

	round   *quiz.Round
	mc      components.MultiChoice
	answers []summary.Answer
	right   bool
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Closer = (*QuizScreen)(nil)

// New creates a QuizScreen. Questions are fetched on Init.
func New(env *screen.Env) *QuizScreen {
	ctx, cancel := context.WithCancel(context.Background())
	return &QuizScreen{env: env, ctx: ctx, cancel: cancel}
}

func (s *QuizScreen) Init() tea.Cmd {
	svc, ctx, lang := s.env.Quiz, s.ctx, s.env.Language()
	return func() tea.Msg {
		if svc == nil {
			return questionsMsg{Set: quiz.Set{
				Topic: quiz.DefaultTopic, Language: lang,
				Questions: quiz.FallbackQuestions(lang), Fallback: true,
			}}
		}
		return questionsMsg{Set: svc.Questions(ctx, "", lang)}
	}
}

// Close abandons a pending generation.
func (s *QuizScreen) Close() { s.cancel() }

func (s *QuizScreen) Title() string {
	return s.env.T("home_quiz")
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.round != nil && s.round.Answered() {
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}, {Key: "Esc", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) pointsPerCorrect() int {
	if s.env.Quiz == nil {
		return quiz.DefaultConfig().PointsPerCorrect
	}
	return s.env.Quiz.PointsPerCorrect()
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsMsg:
		if s.round != nil {
			return s, nil
		}
		s.round = quiz.NewRound(msg.Set, s.pointsPerCorrect())
		if s.round.Len() == 0 {
			return s, s.finish()
		}
		s.loadQuestion()
		return s, nil

	case tea.KeyMsg:
		if s.round == nil || s.round.Done() {
			return s, nil
		}
		if s.round.Answered() {
			if msg.String() != "enter" {
				return s, nil
			}
			more, err := s.round.Next()
			if err != nil {
				return s, nil
			}
			if !more {
				return s, s.finish()
			}
			s.loadQuestion()
			return s, nil
		}

		s.mc, _ = s.mc.Update(msg)
		if s.mc.Submitted {
			s.answer(s.mc.Options[s.mc.ChosenIndex])
		}
	}
	return s, nil
}

func (s *QuizScreen) loadQuestion() {
	q, ok := s.round.Current()
	if !ok {
		return
	}
	correct := -1
	for i, o := range q.Options {
		if q.IsCorrect(o) {
			correct = i
			break
		}
	}
	s.mc = components.NewMultiChoice(q.Text, q.Options, correct)
}

func (s *QuizScreen) answer(option string) {
	q, _ := s.round.Current()
	right, err := s.round.Answer(option)
	if err != nil {
		s.env.Log().Warn("quiz answer rejected", zap.Error(err))
		return
	}
	s.right = right
	s.answers = append(s.answers, summary.Answer{Question: q.Text, Chosen: option, Correct: q.Answer})
}

// finish credits the round and swaps in the summary.
func (s *QuizScreen) finish() tea.Cmd {
	r := s.round
	result := summary.Result{
		Questions: r.Len(),
		Correct:   r.Correct(),
		Points:    r.Points(),
		Fallback:  r.Set.Fallback,
		Answers:   s.answers,
	}
	if sess := s.env.Session; sess != nil {
		err := sess.RecordQuiz(s.ctx, profile.QuizResult{
			SessionID: r.ID,
			Topic:     r.Set.Topic,
			Language:  r.Set.Language,
			Questions: r.Len(),
			Correct:   r.Correct(),
			Points:    r.Points(),
			Fallback:  r.Set.Fallback,
		})
		if err != nil {
			s.env.Log().Warn("quiz result not recorded", zap.Error(err))
		}
	}
	next := summary.New(s.env, result)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if s.round == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render(s.env.T("quiz_loading")))
	}
	q, ok := s.round.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(s.env.T("quiz_progress", s.round.Index()+1, s.round.Len())))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", s.round.Index(), s.round.Len(), cw-6).View())
	b.WriteString("\n\n")
	b.WriteString(s.mc.View(cw - 6))

	if s.round.Answered() {
		b.WriteString("\n\n")
		if s.right {
			b.WriteString(theme.Correct.Render(s.env.T("quiz_correct", s.pointsPerCorrect())))
		} else {
			b.WriteString(theme.Incorrect.Render(s.env.T("quiz_incorrect", q.Answer)))
		}
		if q.Explanation != "" {
			b.WriteString("\n")
			b.WriteString(theme.Hint.Width(cw - 6).Render(s.env.T("quiz_explanation", q.Explanation)))
		}
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(s.env.T("quiz_next")))
	}
	if s.round.Set.Fallback && s.round.Index() == 0 && !s.round.Answered() {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(cw - 6).Render(s.env.T("quiz_unavailable")))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Card(b.String(), cw))
}
