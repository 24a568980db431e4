package minigame

import (
	"github.com/ecoamazonia/guardioes/internal/catalog"
)

// Adventure walks through scripted phases. Every phase ends with a choice
// whose feedback is shown before moving on; wrong choices do not block.
type Adventure struct {
	phases []catalog.AdventurePhase
	idx    int
	chosen *catalog.ChallengeOption
	wise   int
}

func NewAdventure(p catalog.AdventurePayload) (*Adventure, error) {
	if len(p.Phases) == 0 {
		return nil, ErrEmptyInput
	}
	return &Adventure{phases: p.Phases}, nil
}

// Phase returns the current phase and its 1-based number.
func (a *Adventure) Phase() (catalog.AdventurePhase, int, bool) {
	if a.idx >= len(a.phases) {
		return catalog.AdventurePhase{}, 0, false
	}
	return a.phases[a.idx], a.idx + 1, true
}

// Phases is the number of phases.
func (a *Adventure) Phases() int { return len(a.phases) }

// Choose picks option i of the current phase's challenge.
func (a *Adventure) Choose(i int) (catalog.ChallengeOption, error) {
	p, _, ok := a.Phase()
	if !ok {
		return catalog.ChallengeOption{}, ErrGameOver
	}
	if a.chosen != nil {
		return *a.chosen, nil
	}
	if i < 0 || i >= len(p.Challenge.Options) {
		return catalog.ChallengeOption{}, ErrOutOfRange
	}
	opt := p.Challenge.Options[i]
	a.chosen = &opt
	if opt.Correct {
		a.wise++
	}
	return opt, nil
}

// Chosen is the option picked in the current phase, if any.
func (a *Adventure) Chosen() (catalog.ChallengeOption, bool) {
	if a.chosen == nil {
		return catalog.ChallengeOption{}, false
	}
	return *a.chosen, true
}

// Continue moves past a phase whose choice has been made.
func (a *Adventure) Continue() error {
	if a.idx >= len(a.phases) {
		return ErrGameOver
	}
	if a.chosen == nil {
		return ErrOutOfRange
	}
	a.idx++
	a.chosen = nil
	return nil
}

// WiseChoices counts the correct options picked.
func (a *Adventure) WiseChoices() int { return a.wise }

func (a *Adventure) Status() Status {
	if a.idx >= len(a.phases) {
		return Won
	}
	return Playing
}

// Target counts correct answers towards a goal, as in the interactive quiz
// stage where each answer is followed by a fresh question.
type Target struct {
	needed  int
	correct int
}

func NewTarget(needed int) *Target {
	return &Target{needed: max(needed, 1)}
}

// Record counts one answer and returns the resulting status.
func (t *Target) Record(correct bool) Status {
	if correct && t.correct < t.needed {
		t.correct++
	}
	return t.Status()
}

func (t *Target) Correct() int { return t.correct }
func (t *Target) Needed() int  { return t.needed }

func (t *Target) Status() Status {
	if t.correct >= t.needed {
		return Won
	}
	return Playing
}
