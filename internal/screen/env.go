package screen

import (
	"time"

	"go.uber.org/zap"

	"github.com/ecoamazonia/guardioes/internal/catalog"
	"github.com/ecoamazonia/guardioes/internal/i18n"
	"github.com/ecoamazonia/guardioes/internal/journey"
	"github.com/ecoamazonia/guardioes/internal/profile"
	"github.com/ecoamazonia/guardioes/internal/quiz"
	"github.com/ecoamazonia/guardioes/internal/store"
	"github.com/ecoamazonia/guardioes/internal/ui/layout"
)

// Env carries the services every screen shares. Screens hold the same
// *Env, so signing in or out is visible to all of them.
type Env struct {
	Catalog  *catalog.Catalog
	Profiles *profile.Service
	Quiz     *quiz.Service

	// Events is nil when history is unavailable.
	Events store.EventRepo

	// Picker overrides the journey's variant picker. Nil picks at random.
	Picker journey.Picker

	SettleDelay time.Duration
	Logger      *zap.Logger

	// DefaultLanguage is used while nobody is signed in.
	DefaultLanguage i18n.Language

	// Session is the signed-in player, nil when signed out.
	Session *profile.Session

	// LatestVersion is set when a newer release is available.
	LatestVersion string
}

// Language is the signed-in player's language, else DefaultLanguage.
func (e *Env) Language() i18n.Language {
	if e.Session != nil && !e.Session.Closed() {
		return e.Session.Language()
	}
	if e.DefaultLanguage == "" {
		return i18n.Default
	}
	return e.DefaultLanguage
}

// T translates key into the current language.
func (e *Env) T(key string, args ...any) string {
	return i18n.T(e.Language(), key, args...)
}

// Status is what the header shows for the current session.
func (e *Env) Status() layout.Status {
	if e.Session == nil || e.Session.Closed() {
		return layout.Status{}
	}
	return layout.Status{Username: e.Session.Username(), Balance: e.Session.Balance()}
}

// Log returns the logger, never nil.
func (e *Env) Log() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}
