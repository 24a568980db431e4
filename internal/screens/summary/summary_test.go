package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ecoamazonia/guardioes/internal/i18n"
	"github.com/ecoamazonia/guardioes/internal/router"
	"github.com/ecoamazonia/guardioes/internal/screen"
)

func testEnv() *screen.Env {
	return &screen.Env{DefaultLanguage: i18n.English}
}

func testResult() Result {
	return Result{
		Questions: 5,
		Correct:   3,
		Points:    30,
		Answers: []Answer{
			{Question: "Which energy source is renewable?", Chosen: "Solar power", Correct: "Solar power"},
			{Question: "What are the flying rivers?", Chosen: "Smoke clouds from fires", Correct: "Forest moisture"},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testEnv(), testResult())
	if s.Title() != "Quiz Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testEnv(), testResult())
	view := s.View(80, 30)
	for _, want := range []string{"Correct: 3 of 5", "+30 PN", "Well done!", "Which energy source is renewable?"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Standard questions") {
		t.Error("generated rounds are not marked as standard")
	}
}

func TestSummaryScreen_Verdict(t *testing.T) {
	tests := []struct {
		correct int
		want    string
	}{
		{5, "Perfect!"},
		{3, "Well done!"},
		{1, "Keep trying"},
	}
	for _, tt := range tests {
		s := New(testEnv(), Result{Questions: 5, Correct: tt.correct})
		if got := s.verdict(); !strings.Contains(got, tt.want) {
			t.Errorf("verdict(%d) = %q, want %q", tt.correct, got, tt.want)
		}
	}
}

func TestSummaryScreen_Fallback(t *testing.T) {
	r := testResult()
	r.Fallback = true
	view := New(testEnv(), r).View(80, 30)
	if !strings.Contains(view, "Standard questions") {
		t.Error("expected the standard questions note")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testEnv(), testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (pop)")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testEnv(), testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testEnv(), testResult())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
