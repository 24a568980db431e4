package journey

import (
	"context"
	"sync"

	"github.com/ecoamazonia/guardioes/internal/catalog"
	"github.com/ecoamazonia/guardioes/internal/variant"
)

// Attempt is the single-shot handle given to the mini-game for one entry
// into the game view. It accepts exactly one Complete, and is retired when
// it completes, when a new variant replaces it, or when the journey closes.
type Attempt struct {
	j        *Journey
	gen      uint64
	resolved variant.Resolved

	once sync.Once
	done chan struct{}
}

func newAttempt(j *Journey, gen uint64, resolved variant.Resolved) *Attempt {
	return &Attempt{
		j:        j,
		gen:      gen,
		resolved: resolved,
		done:     make(chan struct{}),
	}
}

// Resolved returns the payload the mini-game should render.
func (a *Attempt) Resolved() variant.Resolved { return a.resolved }

// Stage returns the stage definition being played.
func (a *Attempt) Stage() *catalog.Stage { return a.resolved.Stage }

// Done is closed when the attempt is retired.
func (a *Attempt) Done() <-chan struct{} { return a.done }

// Complete signals that the player finished the activity.
func (a *Attempt) Complete(ctx context.Context) error {
	return a.j.complete(ctx, a)
}

// NeedNewVariant retires this attempt and returns a new one with a freshly
// picked secret word. Only termo stages support it; for other types the
// attempt stays active and the error wraps variant.ErrRerollUnsupported.
func (a *Attempt) NeedNewVariant() (*Attempt, error) {
	return a.j.reroll(a)
}

func (a *Attempt) retire() {
	a.once.Do(func() { close(a.done) })
}
