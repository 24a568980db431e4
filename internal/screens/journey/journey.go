// Package journey is the guardian detail screen: the story, each stage's
// mini-game, the stage-complete card and the final reward.
package journey

import (
	"context"
	"errors"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/ecoamazonia/guardioes/internal/catalog"
	jny "github.com/ecoamazonia/guardioes/internal/journey"
	"github.com/ecoamazonia/guardioes/internal/router"
	"github.com/ecoamazonia/guardioes/internal/screen"
	"github.com/ecoamazonia/guardioes/internal/ui/layout"
)

// JourneyScreen drives one guardian journey. Leaving the screen closes the
// journey, so late completions from its games are ignored.
type JourneyScreen struct {
	env      *screen.Env
	guardian *catalog.Guardian
	j        *jny.Journey

	ctx    context.Context
	cancel context.CancelFunc
	rng    *rand.Rand

	attempt *jny.Attempt
	game    game
	errMsg  string
}

var _ screen.Screen = (*JourneyScreen)(nil)
var _ screen.KeyHintProvider = (*JourneyScreen)(nil)
var _ screen.Closer = (*JourneyScreen)(nil)

// New opens a journey for g with the signed-in player's progress.
func New(env *screen.Env, g *catalog.Guardian) (*JourneyScreen, error) {
	sess := env.Session
	if sess == nil {
		return nil, errors.New("open journey: not signed in")
	}
	opts := []jny.Option{jny.WithLogger(env.Log())}
	if env.Picker != nil {
		opts = append(opts, jny.WithPicker(env.Picker))
	}
	j, err := jny.Open(g, sess.Progress(g.ID), sess, opts...)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &JourneyScreen{
		env:      env,
		guardian: g,
		j:        j,
		ctx:      ctx,
		cancel:   cancel,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}, nil
}

// Journey exposes the driven journey.
func (s *JourneyScreen) Journey() *jny.Journey { return s.j }

func (s *JourneyScreen) Init() tea.Cmd {
	j, ctx, delay := s.j, s.ctx, s.env.SettleDelay
	return func() tea.Msg {
		return settledMsg{Err: j.SettleAfter(ctx, delay)}
	}
}

// Close discards the journey.
func (s *JourneyScreen) Close() {
	s.cancel()
	s.j.Close()
}

func (s *JourneyScreen) Title() string {
	return s.guardian.Name.Get(s.env.Language())
}

func (s *JourneyScreen) KeyHints() []layout.KeyHint {
	back := layout.KeyHint{Key: "Esc", Description: "Back"}
	switch s.j.View() {
	case jny.ViewGame:
		if s.game != nil {
			return append(s.game.KeyHints(), back)
		}
	case jny.ViewStory, jny.ViewStageComplete, jny.ViewFinalComplete:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}, back}
	}
	return []layout.KeyHint{back}
}

func (s *JourneyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case settledMsg:
		if msg.Err != nil {
			if !errors.Is(msg.Err, jny.ErrJourneyClosed) && !errors.Is(msg.Err, context.Canceled) {
				s.env.Log().Warn("journey settle failed", zap.Error(msg.Err))
			}
			return s, nil
		}
		return s, s.sync()

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	if s.game != nil {
		out, cmd := s.game.Update(msg)
		return s, tea.Batch(cmd, s.handleOutcome(out))
	}
	return s, nil
}

func (s *JourneyScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch s.j.View() {
	case jny.ViewStory, jny.ViewStageComplete:
		if msg.String() == "enter" {
			if err := s.j.Advance(); err != nil {
				s.env.Log().Warn("advance failed", zap.Error(err))
			}
			return s.sync()
		}
	case jny.ViewFinalComplete:
		if msg.String() == "enter" {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}
	case jny.ViewGame:
		if s.game != nil {
			out, cmd := s.game.Update(msg)
			return tea.Batch(cmd, s.handleOutcome(out))
		}
	}
	return nil
}

func (s *JourneyScreen) handleOutcome(out outcome) tea.Cmd {
	a := s.attempt
	if a == nil {
		return nil
	}
	switch out {
	case finished:
		if err := a.Complete(s.ctx); err != nil {
			s.env.Log().Warn("stage completion rejected", zap.Error(err))
			return nil
		}
		return s.sync()

	case needNewWord:
		next, err := a.NeedNewVariant()
		if err != nil {
			s.env.Log().Warn("new variant failed", zap.Error(err))
			return nil
		}
		return s.startGame(next)
	}
	return nil
}

// sync aligns the active game with the journey's current attempt.
func (s *JourneyScreen) sync() tea.Cmd {
	if s.j.View() != jny.ViewGame {
		s.attempt, s.game = nil, nil
		return nil
	}
	a := s.j.Attempt()
	if a == nil || a == s.attempt {
		return nil
	}
	return s.startGame(a)
}

func (s *JourneyScreen) startGame(a *jny.Attempt) tea.Cmd {
	s.attempt = a
	g, err := newGame(s.ctx, s.env, a.Resolved(), s.rng)
	if err != nil {
		s.env.Log().Error("stage cannot be played",
			zap.Int("guardian_id", s.guardian.ID), zap.Int("stage", a.Stage().Number), zap.Error(err))
		s.game = nil
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	s.game = g
	return g.Init()
}
