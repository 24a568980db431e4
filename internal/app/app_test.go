package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecoamazonia/guardioes/internal/catalog"
	"github.com/ecoamazonia/guardioes/internal/i18n"
	"github.com/ecoamazonia/guardioes/internal/profile"
	"github.com/ecoamazonia/guardioes/internal/quiz"
	"github.com/ecoamazonia/guardioes/internal/router"
	"github.com/ecoamazonia/guardioes/internal/screen"
	"github.com/ecoamazonia/guardioes/internal/screens/home"
	"github.com/ecoamazonia/guardioes/internal/screens/login"
	"github.com/ecoamazonia/guardioes/internal/screens/welcome"
	"github.com/ecoamazonia/guardioes/internal/selfupdate"
	"github.com/ecoamazonia/guardioes/internal/ui/layout"
)

func testEnv() *screen.Env {
	return &screen.Env{
		Catalog:         catalog.Default(),
		Profiles:        profile.NewService(profile.NewMemoryBlobs(), profile.WithBcryptCost(bcrypt.MinCost)),
		Quiz:            quiz.NewService(nil),
		DefaultLanguage: i18n.English,
	}
}

func signIn(t *testing.T, env *screen.Env) {
	t.Helper()
	sess, err := env.Profiles.SignUp(context.Background(), "ana", "1234")
	if err != nil {
		t.Fatal(err)
	}
	env.Session = sess
}

func TestStartScreens(t *testing.T) {
	t.Run("welcome first", func(t *testing.T) {
		m := newAppModel(Options{Env: testEnv()})
		if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
			t.Errorf("expected welcome, got %T", m.router.Active())
		}
	})

	t.Run("signed out", func(t *testing.T) {
		m := newAppModel(Options{Env: testEnv(), SkipWelcome: true})
		if _, ok := m.router.Active().(*login.LoginScreen); !ok {
			t.Errorf("expected login, got %T", m.router.Active())
		}
	})

	t.Run("resumed session", func(t *testing.T) {
		env := testEnv()
		signIn(t, env)
		m := newAppModel(Options{Env: env, SkipWelcome: true})
		if _, ok := m.router.Active().(*home.HomeScreen); !ok {
			t.Errorf("expected home, got %T", m.router.Active())
		}
	})
}

func TestEscPopsOnlyAboveRoot(t *testing.T) {
	env := testEnv()
	signIn(t, env)
	m := newAppModel(Options{Env: env, SkipWelcome: true})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("Esc at the root does nothing")
	}

	m.router.Push(home.New(env, nil))
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestHeaderShowsSession(t *testing.T) {
	env := testEnv()
	signIn(t, env)
	if err := env.Session.AddPoints(context.Background(), "test", 120, "gift"); err != nil {
		t.Fatal(err)
	}
	m := newAppModel(Options{Env: env, SkipWelcome: true})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	header := layout.RenderHeader(m.router.Active().Title(), m.env.Status(), 100)
	if !strings.Contains(header, "ana") || !strings.Contains(header, "120") {
		t.Errorf("header should show the player and balance:\n%s", header)
	}
}

func TestUpdateCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"v9.0.0","html_url":"https://example.com/v9.0.0"}`))
	}))
	defer server.Close()

	env := testEnv()
	m := newAppModel(Options{
		Env:         env,
		Checker:     selfupdate.NewChecker(selfupdate.WithBaseURL(server.URL)),
		Version:     "v1.0.0",
		SkipWelcome: true,
	})

	cmd := m.checkForUpdate()
	if cmd == nil {
		t.Fatal("expected an update check")
	}
	msg := cmd()
	if _, ok := msg.(updateAvailableMsg); !ok {
		t.Fatalf("expected updateAvailableMsg, got %T", msg)
	}
	m.Update(msg)
	if env.LatestVersion != "v9.0.0" {
		t.Errorf("LatestVersion = %q, want v9.0.0", env.LatestVersion)
	}

	dev := newAppModel(Options{Env: testEnv(), Checker: selfupdate.NewChecker(), Version: "(devel)"})
	if dev.checkForUpdate() != nil {
		t.Error("development builds do not check for updates")
	}
}
