package minigame

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// Scramble asks the player to rebuild a sentence from its shuffled words.
type Scramble struct {
	solution []string
	pool     []string
	placed   []string
	rng      *rand.Rand
	status   Status
}

// NewScramble shuffles sentence's words. When the sentence has at least
// two distinct words the initial pool never reads as the solution.
func NewScramble(sentence string, rng *rand.Rand) (*Scramble, error) {
	words := strings.Fields(sentence)
	if len(words) == 0 {
		return nil, ErrEmptyInput
	}
	s := &Scramble{solution: words, rng: rng}
	s.pool = slices.Clone(words)
	if distinct(words) > 1 {
		for slices.Equal(s.pool, s.solution) {
			s.shuffle()
		}
	}
	return s, nil
}

func distinct(words []string) int {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	return len(seen)
}

func (s *Scramble) shuffle() {
	s.rng.Shuffle(len(s.pool), func(i, j int) { s.pool[i], s.pool[j] = s.pool[j], s.pool[i] })
}

// Pool is the words not yet placed.
func (s *Scramble) Pool() []string { return s.pool }

// Placed is the sentence being built.
func (s *Scramble) Placed() []string { return s.placed }

// Place moves pool word i to the end of the sentence.
func (s *Scramble) Place(i int) error {
	if s.status == Won {
		return ErrGameOver
	}
	if i < 0 || i >= len(s.pool) {
		return ErrOutOfRange
	}
	s.placed = append(s.placed, s.pool[i])
	s.pool = slices.Delete(s.pool, i, i+1)
	return nil
}

// Remove puts placed word i back into the pool.
func (s *Scramble) Remove(i int) error {
	if s.status == Won {
		return ErrGameOver
	}
	if i < 0 || i >= len(s.placed) {
		return ErrOutOfRange
	}
	s.pool = append(s.pool, s.placed[i])
	s.placed = slices.Delete(s.placed, i, i+1)
	return nil
}

// Ready reports whether every word has been placed.
func (s *Scramble) Ready() bool { return len(s.pool) == 0 }

// Check compares the built sentence with the solution. It only succeeds
// once every word is placed.
func (s *Scramble) Check() bool {
	if s.Ready() && slices.Equal(s.placed, s.solution) {
		s.status = Won
	}
	return s.status == Won
}

func (s *Scramble) Status() Status { return s.status }
