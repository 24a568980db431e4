package journey

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecoamazonia/guardioes/internal/catalog"
	"github.com/ecoamazonia/guardioes/internal/i18n"
	jny "github.com/ecoamazonia/guardioes/internal/journey"
	"github.com/ecoamazonia/guardioes/internal/minigame"
	"github.com/ecoamazonia/guardioes/internal/profile"
	"github.com/ecoamazonia/guardioes/internal/quiz"
	"github.com/ecoamazonia/guardioes/internal/router"
	"github.com/ecoamazonia/guardioes/internal/screen"
	"github.com/ecoamazonia/guardioes/internal/variant"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s *JourneyScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

// run executes cmd and feeds the screen's own messages back to s. Cursor
// blinks and other component ticks are dropped.
func run(s *JourneyScreen, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			run(s, c)
		}
	case settledMsg, riverQuestionMsg:
		_, next := s.Update(msg)
		run(s, next)
	}
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
	return &screen.Env{
		Catalog:  catalog.Default(),
		Profiles: profiles,
		Quiz:     quiz.NewService(nil),
		Picker:   variant.NewSeeded(7),
		Session:  sess,
	}
}

func openJourney(t *testing.T, env *screen.Env, guardianID int) *JourneyScreen {
	t.Helper()
	g, err := env.Catalog.Get(guardianID)
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(env, g)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Close)
	run(s, s.Init())
	return s
}

func setProgress(t *testing.T, env *screen.Env, guardianID, stage int) {
	t.Helper()
	if err := env.Session.ReportStageCompletion(context.Background(), guardianID, stage, 0); err != nil {
		t.Fatal(err)
	}
}

func TestStoryThenGame(t *testing.T) {
	env := testEnv(t)
	s := openJourney(t, env, 1)

	if got := s.j.View(); got != jny.ViewStory {
		t.Fatalf("view = %s, want story", got)
	}
	s.Update(specialKey(tea.KeyEnter))
	if got := s.j.View(); got != jny.ViewGame {
		t.Fatalf("view = %s, want game", got)
	}
	if _, ok := s.game.(*wordSearchGame); !ok {
		t.Fatalf("stage 1 should be a word search, got %T", s.game)
	}

	before := env.Session.Balance()
	run(s, s.handleOutcome(finished))

	if got := s.j.View(); got != jny.ViewStageComplete {
		t.Fatalf("view = %s, want stage_complete", got)
	}
	if got := env.Session.Progress(1); got != 1 {
		t.Errorf("progress = %d, want 1", got)
	}
	g, _ := env.Catalog.Get(1)
	if got := env.Session.Balance() - before; got != g.Stages[0].Points {
		t.Errorf("balance grew by %d, want %d", got, g.Stages[0].Points)
	}

	s.Update(specialKey(tea.KeyEnter))
	if got := s.j.Pointer(); got != 2 {
		t.Errorf("pointer = %d, want 2", got)
	}
}

func TestTermoNewWordThenWin(t *testing.T) {
	env := testEnv(t)
	setProgress(t, env, 1, 4)
	s := openJourney(t, env, 1)

	if got := s.j.View(); got != jny.ViewGame {
		t.Fatalf("view = %s, want game", got)
	}
	tg, ok := s.game.(*termoGame)
	if !ok {
		t.Fatalf("stage 5 should be termo, got %T", s.game)
	}

	for range minigame.TermoAttempts {
		guess := "QQQQQ"
		if i18n.Fold(tg.t.Secret()) == i18n.Fold(guess) {
			guess = "ZZZZZ"
		}
		typeText(s, guess)
		s.Update(specialKey(tea.KeyEnter))
	}
	if tg.t.Status() != minigame.Lost {
		t.Fatalf("status = %s, want lost", tg.t.Status())
	}

	first := s.attempt
	s.Update(specialKey(tea.KeyEnter))
	if s.attempt == first {
		t.Fatal("losing should bring a new attempt")
	}
	tg, ok = s.game.(*termoGame)
	if !ok || tg.t.Status() != minigame.Playing {
		t.Fatal("expected a fresh termo game")
	}

	typeText(s, tg.t.Secret())
	s.Update(specialKey(tea.KeyEnter))

	if got := s.j.View(); got != jny.ViewFinalComplete {
		t.Fatalf("view = %s, want final_complete", got)
	}
	g, _ := env.Catalog.Get(1)
	if got := s.j.Reward(); got != g.FinalReward {
		t.Errorf("reward = %d, want %d", got, g.FinalReward)
	}
	if got := env.Session.Progress(1); got != g.StageCount() {
		t.Errorf("progress = %d, want %d", got, g.StageCount())
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected navigation back")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestInteractiveQuiz(t *testing.T) {
	env := testEnv(t)
	setProgress(t, env, 2, 1)
	s := openJourney(t, env, 2)

	qg, ok := s.game.(*quizGame)
	if !ok {
		t.Fatalf("guardian 2 stage 2 should be the interactive quiz, got %T", s.game)
	}

	for i := 0; s.j.View() == jny.ViewGame; i++ {
		if i > 20 {
			t.Fatal("quiz did not finish")
		}
		if qg.question == nil {
			t.Fatal("question should be loaded")
		}
		correct := qg.question.CorrectIndex()
		s.Update(keyPress(rune('1' + correct)))
		if !qg.answered || !qg.mc.IsCorrect() {
			t.Fatal("expected a correct answer to be recorded")
		}
		_, cmd := s.Update(specialKey(tea.KeyEnter))
		run(s, cmd)
	}

	if got := s.j.View(); got != jny.ViewStageComplete {
		t.Errorf("view = %s, want stage_complete", got)
	}
	if got := env.Session.Progress(2); got != 2 {
		t.Errorf("progress = %d, want 2", got)
	}
}

func TestScrambleAdvancesStraightToNextGame(t *testing.T) {
	env := testEnv(t)
	setProgress(t, env, 2, 2)
	s := openJourney(t, env, 2)

	sg, ok := s.game.(*scrambleGame)
	if !ok {
		t.Fatalf("guardian 2 stage 3 should be a word scramble, got %T", s.game)
	}
	g, _ := env.Catalog.Get(2)
	solution := g.Stages[2].Payload.(catalog.WordScramblePayload).Sentence.Get(i18n.English)

	for _, w := range strings.Fields(solution) {
		idx := slices.Index(sg.s.Pool(), w)
		if idx < 0 {
			t.Fatalf("word %q missing from pool %v", w, sg.s.Pool())
		}
		sg.cursor = idx
		s.Update(specialKey(tea.KeyEnter))
	}

	if got := s.j.View(); got != jny.ViewGame {
		t.Fatalf("view = %s, want game", got)
	}
	if got := s.j.Pointer(); got != 4 {
		t.Errorf("pointer = %d, want 4", got)
	}
	if _, ok := s.game.(*termoGame); !ok {
		t.Errorf("expected the next stage's termo, got %T", s.game)
	}
}

func TestScrambleFinalStageShowsCreditedReward(t *testing.T) {
	env := testEnv(t)
	g := &catalog.Guardian{
		ID:          77,
		Name:        i18n.LocalizedString{i18n.English: "River test"},
		FinalReward: 90,
		Stages: []catalog.Stage{
			{Number: 1, Type: catalog.GameRiddle, Points: 10, Payload: catalog.RiddlePayload{}},
			{Number: 2, Type: catalog.GameWordScramble, Points: 20, Payload: catalog.WordScramblePayload{
				Sentence: i18n.LocalizedString{i18n.English: "THE RIVER THANKS YOU"},
			}},
		},
	}
	setProgress(t, env, g.ID, 1)
	before := env.Session.Balance()

	s, err := New(env, g)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Close)
	run(s, s.Init())
	if _, ok := s.game.(*scrambleGame); !ok {
		t.Fatalf("stage 2 should be a word scramble, got %T", s.game)
	}

	run(s, s.handleOutcome(finished))
	if got := s.j.View(); got != jny.ViewFinalComplete {
		t.Fatalf("view = %s, want final_complete", got)
	}
	credited := env.Session.Balance() - before
	if credited != 20 {
		t.Errorf("credited %d, want 20", credited)
	}
	if got := s.j.Reward(); got != credited {
		t.Errorf("displayed reward = %d, credited %d", got, credited)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "+20 PN") || strings.Contains(view, "+110 PN") {
		t.Errorf("final view should show +20 PN:\n%s", view)
	}
}

func TestRiverCleanupSortsIntoBins(t *testing.T) {
	env := testEnv(t)
	g := &catalog.Guardian{
		ID:          78,
		Name:        i18n.LocalizedString{i18n.English: "Cleanup test"},
		FinalReward: 40,
		Stages: []catalog.Stage{
			{Number: 1, Type: catalog.GameRiverCleanup, Points: 10, Payload: catalog.RiverCleanupPayload{
				Items: []catalog.CleanupItem{
					{ID: 1, Name: i18n.LocalizedString{i18n.English: "Plastic Bottle"}, Bin: "plastic"},
					{ID: 2, Name: i18n.LocalizedString{i18n.English: "Banana Peel"}, Bin: "organic"},
				},
			}},
		},
	}
	s, err := New(env, g)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Close)
	run(s, s.Init())
	s.Update(specialKey(tea.KeyEnter))

	cg, ok := s.game.(*cleanupGame)
	if !ok {
		t.Fatalf("river cleanup should be sorted in bins, got %T", s.game)
	}

	// Bins are listed plastic, metal, paper, organic.
	s.Update(keyPress('2'))
	if cg.miss != "Plastic Bottle" || cg.c.Remaining() != 2 {
		t.Fatalf("metal is the wrong bin: miss=%q remaining=%d", cg.miss, cg.c.Remaining())
	}
	s.Update(keyPress('1'))
	if cg.c.Remaining() != 1 {
		t.Fatalf("remaining = %d, want 1", cg.c.Remaining())
	}
	if s.j.View() != jny.ViewGame {
		t.Fatal("the river is not clean yet")
	}
	s.Update(keyPress('4'))

	if got := s.j.View(); got != jny.ViewFinalComplete {
		t.Fatalf("view = %s, want final_complete", got)
	}
	if got := s.j.Reward(); got != g.FinalReward {
		t.Errorf("reward = %d, want %d", got, g.FinalReward)
	}
}

func TestQuizQuestionFollowsScreenContext(t *testing.T) {
	env := testEnv(t)
	setProgress(t, env, 2, 1)
	s := openJourney(t, env, 2)

	qg, ok := s.game.(*quizGame)
	if !ok {
		t.Fatalf("guardian 2 stage 2 should be the interactive quiz, got %T", s.game)
	}
	if qg.ctx.Err() != nil {
		t.Fatal("context should be live while the journey is open")
	}
	s.Close()
	if !errors.Is(qg.ctx.Err(), context.Canceled) {
		t.Errorf("closing the journey should cancel question fetches, got %v", qg.ctx.Err())
	}
}

func TestCloseIgnoresLateCompletion(t *testing.T) {
	env := testEnv(t)
	setProgress(t, env, 1, 1)
	s := openJourney(t, env, 1)

	a := s.attempt
	if a == nil {
		t.Fatal("expected an active attempt")
	}
	s.Close()
	if !s.j.Closed() {
		t.Fatal("journey should be closed")
	}
	if err := a.Complete(context.Background()); err == nil {
		t.Error("completion after close must be rejected")
	}
	if got := env.Session.Progress(1); got != 1 {
		t.Errorf("progress = %d, want 1", got)
	}
}

func TestReviewCompletedJourney(t *testing.T) {
	env := testEnv(t)
	g, _ := env.Catalog.Get(3)
	setProgress(t, env, 3, g.StageCount())
	s := openJourney(t, env, 3)

	if got := s.j.View(); got != jny.ViewFinalComplete {
		t.Fatalf("view = %s, want final_complete", got)
	}
	if s.j.Reward() != 0 {
		t.Error("reviewing grants nothing")
	}
	if view := s.View(100, 30); view == "" {
		t.Error("expected a final view")
	}
}

func TestParseSelection(t *testing.T) {
	a, b, ok := parseSelection("1, 2 ,1,5")
	if !ok {
		t.Fatal("expected a valid selection")
	}
	if a != (minigame.Cell{Row: 0, Col: 1}) || b != (minigame.Cell{Row: 0, Col: 4}) {
		t.Errorf("got %v %v", a, b)
	}
	for _, in := range []string{"", "1,2,3", "a,b,c,d", "1,2,3,4,5"} {
		if _, _, ok := parseSelection(in); ok {
			t.Errorf("parseSelection(%q) should fail", in)
		}
	}
}
