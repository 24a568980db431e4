package history

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecoamazonia/guardioes/internal/catalog"
	"github.com/ecoamazonia/guardioes/internal/i18n"
	"github.com/ecoamazonia/guardioes/internal/profile"
	"github.com/ecoamazonia/guardioes/internal/router"
	"github.com/ecoamazonia/guardioes/internal/screen"
	"github.com/ecoamazonia/guardioes/internal/store"
)

func testEnv(t *testing.T) *screen.Env {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	events := st.EventRepo()

	profiles := profile.NewService(profile.NewMemoryBlobs(),
		profile.WithBcryptCost(bcrypt.MinCost), profile.WithEventRepo(events))
	sess, err := profiles.SignUp(context.Background(), "ana", "1234")
	if err != nil {
		t.Fatal(err)
	}
	if err := sess.SetLanguage(i18n.English); err != nil {
		t.Fatal(err)
	}
	return &screen.Env{Catalog: catalog.Default(), Profiles: profiles, Events: events, Session: sess}
}

func load(s *HistoryScreen) {
	s.Update(s.Init()())
}

func TestEmptyHistory(t *testing.T) {
	s := New(testEnv(t))
	if !strings.Contains(s.View(80, 24), "Loading history") {
		t.Error("expected loading text before Init completes")
	}
	load(s)
	if !strings.Contains(s.View(80, 24), "No events yet.") {
		t.Errorf("unexpected view:\n%s", s.View(80, 24))
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	s := New(&screen.Env{DefaultLanguage: i18n.English})
	load(s)
	if !strings.Contains(s.View(80, 24), "History is unavailable.") {
		t.Errorf("unexpected view:\n%s", s.View(80, 24))
	}
}

func TestHistoryRows(t *testing.T) {
	env := testEnv(t)
	ctx := context.Background()
	g, err := env.Catalog.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := env.Session.AddPoints(ctx, "cli", g.Cost, "welcome gift"); err != nil {
		t.Fatal(err)
	}
	if err := env.Session.UnlockGuardian(ctx, g); err != nil {
		t.Fatal(err)
	}
	if err := env.Session.ReportStageCompletion(ctx, 1, 1, 10); err != nil {
		t.Fatal(err)
	}
	if err := env.Session.ReportStageCompletion(ctx, 1, 1, 10); err != nil {
		t.Fatal(err)
	}

	// Someone else's events stay out.
	other, err := env.Profiles.SignUp(ctx, "bia", "4321")
	if err != nil {
		t.Fatal(err)
	}
	if err := other.ReportStageCompletion(ctx, 2, 1, 10); err != nil {
		t.Fatal(err)
	}

	s := New(env)
	load(s)

	// replay, stage, unlock, gift; the stage award row is folded away.
	if len(s.entries) != 4 {
		t.Fatalf("entries = %d, want 4", len(s.entries))
	}
	for _, e := range s.entries {
		if e.Username != "ana" {
			t.Errorf("entry for %q leaked into ana's history", e.Username)
		}
	}

	view := s.View(100, 40)
	name := g.Name.Get(i18n.English)
	for _, want := range []string{name + ", stage 1", "(replay)", "+10 PN", "Unlock: " + name, "welcome gift"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestNavigationAndDetails(t *testing.T) {
	env := testEnv(t)
	ctx := context.Background()
	if err := env.Session.AddPoints(ctx, "cli", 5, "a"); err != nil {
		t.Fatal(err)
	}
	if err := env.Session.AddPoints(ctx, "cli", 7, "b"); err != nil {
		t.Fatal(err)
	}
	s := New(env)
	load(s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.selected != 0 {
		t.Error("selection stays at the top")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !s.expanded[1] {
		t.Fatal("Enter expands the row")
	}
	if !strings.Contains(s.View(100, 40), "Balance: 5 PN") {
		t.Errorf("expected balance detail:\n%s", s.View(100, 40))
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
