// Package variant resolves a stage's payload for play, picking one of its
// interchangeable variants uniformly at random.
package variant

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/ecoamazonia/guardioes/internal/catalog"
	"github.com/ecoamazonia/guardioes/internal/i18n"
)

var (
	// ErrNoVariantsAvailable means a stage declares a variant list but it is empty.
	ErrNoVariantsAvailable = errors.New("no variants available")

	// ErrRerollUnsupported means the stage type has no secret word to replace.
	ErrRerollUnsupported = errors.New("stage does not support a new variant")
)

// NoVariant is the Variant index of a resolved stage that has no variant list.
const NoVariant = -1

// Resolved is a stage ready to be played.
type Resolved struct {
	Stage   *catalog.Stage
	Payload catalog.Payload

	// Variant is the index of the picked variant, or NoVariant.
	Variant int

	// WordSet is the picked word-search set.
	WordSet i18n.LocalizedList

	// Secret is the picked termo word.
	Secret *catalog.SecretWord
}

// Randomizer picks variants from an injected random source.
type Randomizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Randomizer drawing from src.
func New(src rand.Source) *Randomizer {
	return &Randomizer{rng: rand.New(src)}
}

// NewSeeded creates a deterministic Randomizer.
func NewSeeded(seed uint64) *Randomizer {
	return New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandom creates a Randomizer seeded from the clock.
func NewRandom() *Randomizer {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

// Pick resolves the stage for its initial entry into play.
func (r *Randomizer) Pick(stage *catalog.Stage) (Resolved, error) {
	if stage == nil {
		return Resolved{}, errors.New("nil stage")
	}
	res := Resolved{Stage: stage, Payload: stage.Payload, Variant: NoVariant}

	switch p := stage.Payload.(type) {
	case catalog.WordSearchPayload:
		switch {
		case len(p.WordSets) > 0:
			res.Variant = r.intN(len(p.WordSets))
			res.WordSet = p.WordSets[res.Variant]
		case len(p.Words) > 0:
			res.WordSet = p.Words
		default:
			return Resolved{}, fmt.Errorf("stage %d word sets: %w", stage.Number, ErrNoVariantsAvailable)
		}
	case catalog.TermoPayload:
		return r.pickSecret(stage, p)
	}
	return res, nil
}

// Reroll replaces the secret word of a termo stage. Each call is an
// independent pick, so the same word may come back.
func (r *Randomizer) Reroll(stage *catalog.Stage) (Resolved, error) {
	if stage == nil {
		return Resolved{}, errors.New("nil stage")
	}
	p, ok := stage.Payload.(catalog.TermoPayload)
	if !ok {
		return Resolved{}, fmt.Errorf("stage %d (%s): %w", stage.Number, stage.Type, ErrRerollUnsupported)
	}
	return r.pickSecret(stage, p)
}

func (r *Randomizer) pickSecret(stage *catalog.Stage, p catalog.TermoPayload) (Resolved, error) {
	if len(p.WordList) == 0 {
		return Resolved{}, fmt.Errorf("stage %d word list: %w", stage.Number, ErrNoVariantsAvailable)
	}
	i := r.intN(len(p.WordList))
	return Resolved{
		Stage:   stage,
		Payload: p,
		Variant: i,
		Secret:  &p.WordList[i],
	}, nil
}

func (r *Randomizer) intN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}
