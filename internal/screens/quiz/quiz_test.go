package quiz

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecoamazonia/guardioes/internal/i18n"
	"github.com/ecoamazonia/guardioes/internal/profile"
	"github.com/ecoamazonia/guardioes/internal/quiz"
	"github.com/ecoamazonia/guardioes/internal/router"
	"github.com/ecoamazonia/guardioes/internal/screen"
	"github.com/ecoamazonia/guardioes/internal/screens/summary"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func testEnv(t *testing.T) *screen.Env {
	t.Helper()
	profiles := profile.NewService(profile.NewMemoryBlobs(), profile.WithBcryptCost(bcrypt.MinCost))
	sess, err := profiles.SignUp(context.Background(), "ana", "1234")
	if err != nil {
		t.Fatal(err)
	}
	if err := sess.SetLanguage(i18n.English); err != nil {
		t.Fatal(err)
	}
	return &screen.Env{Profiles: profiles, Quiz: quiz.NewService(nil), Session: sess}
}

func loaded(t *testing.T, env *screen.Env) *QuizScreen {
	t.Helper()
	s := New(env)
	t.Cleanup(s.Close)
	s.Update(s.Init()())
	if s.round == nil {
		t.Fatal("expected questions to load")
	}
	return s
}

func TestLoadsFallbackQuestions(t *testing.T) {
	s := loaded(t, testEnv(t))
	if !s.round.Set.Fallback {
		t.Error("no provider means built-in questions")
	}
	if s.round.Len() != 5 {
		t.Errorf("Len = %d, want 5", s.round.Len())
	}
	view := s.View(100, 40)
	if !strings.Contains(view, "Question 1 of 5") {
		t.Errorf("view missing progress:\n%s", view)
	}
}

func TestFullRoundCreditsPoints(t *testing.T) {
	env := testEnv(t)
	s := loaded(t, env)

	var cmd tea.Cmd
	for i := 0; i < s.round.Len(); i++ {
		// Answer the first three right and the rest wrong.
		want := s.mc.CorrectIndex
		if i >= 3 {
			want = (want + 1) % len(s.mc.Options)
		}
		s.Update(keyPress(rune('1' + want)))
		if !s.round.Answered() {
			t.Fatalf("question %d not answered", i+1)
		}
		_, cmd = s.Update(enter())
	}

	if cmd == nil {
		t.Fatal("expected the summary after the last question")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", msg.Screen)
	}
	if got := env.Session.Balance(); got != 30 {
		t.Errorf("balance = %d, want 30", got)
	}
	if len(s.answers) != 5 {
		t.Errorf("answers = %d, want 5", len(s.answers))
	}
}

func TestNavigationBeforeAnswer(t *testing.T) {
	s := loaded(t, testEnv(t))
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.mc.Selected != 1 {
		t.Errorf("Selected = %d, want 1", s.mc.Selected)
	}
	_, cmd := s.Update(keyPress('x'))
	if cmd != nil || s.round.Answered() {
		t.Error("unrelated keys do nothing")
	}
	s.Update(enter())
	if !s.round.Answered() {
		t.Fatal("Enter confirms the highlighted option")
	}
	if s.round.Index() != 0 {
		t.Error("confirming does not move on by itself")
	}
	view := s.View(100, 40)
	if !strings.Contains(view, "Enter for the next question") {
		t.Errorf("view missing next prompt:\n%s", view)
	}
}

func TestLateQuestionsIgnored(t *testing.T) {
	s := loaded(t, testEnv(t))
	first := s.round
	s.Update(questionsMsg{Set: quiz.Set{Questions: quiz.FallbackQuestions(i18n.Spanish)}})
	if s.round != first {
		t.Error("a second question set must not restart the round")
	}
}

func TestLoadingView(t *testing.T) {
	s := New(testEnv(t))
	defer s.Close()
	if !strings.Contains(s.View(80, 24), "Generating questions") {
		t.Error("expected loading text")
	}
}
