package minigame

import (
	"fmt"
	"unicode/utf8"

	"github.com/ecoamazonia/guardioes/internal/i18n"
)

const (
	TermoLength   = 5
	TermoAttempts = 2
)

// LetterScore grades one letter of a termo guess.
type LetterScore int

const (
	Absent LetterScore = iota
	Present
	Correct
)

// TermoRow is one graded guess.
type TermoRow struct {
	Guess  []rune
	Scores []LetterScore
}

// Termo is a five-letter word guessing game with two attempts. Letters are
// compared case- and accent-insensitively.
type Termo struct {
	secret  []rune
	display string
	rows    []TermoRow
	status  Status
}

// NewTermo starts a game for word, which must have TermoLength letters.
func NewTermo(word string) (*Termo, error) {
	folded := []rune(i18n.Fold(word))
	if len(folded) != TermoLength {
		return nil, fmt.Errorf("termo word %q has %d letters, want %d: %w", word, len(folded), TermoLength, ErrWrongLength)
	}
	return &Termo{secret: folded, display: word}, nil
}

// Guess grades guess and updates the game status. Correct letters are
// matched first so a repeated letter is only marked present while the
// secret still has unmatched copies of it.
func (t *Termo) Guess(guess string) (TermoRow, error) {
	if t.status != Playing {
		return TermoRow{}, ErrGameOver
	}
	g := []rune(i18n.Fold(guess))
	if len(g) != TermoLength {
		return TermoRow{}, fmt.Errorf("%w: %d letters", ErrWrongLength, utf8.RuneCountInString(guess))
	}

	scores := make([]LetterScore, TermoLength)
	remaining := make([]rune, TermoLength)
	copy(remaining, t.secret)

	for i, r := range g {
		if remaining[i] == r {
			scores[i] = Correct
			remaining[i] = 0
		}
	}
	for i, r := range g {
		if scores[i] == Correct {
			continue
		}
		for j, s := range remaining {
			if s == r {
				scores[i] = Present
				remaining[j] = 0
				break
			}
		}
	}

	row := TermoRow{Guess: g, Scores: scores}
	t.rows = append(t.rows, row)

	switch {
	case string(g) == string(t.secret):
		t.status = Won
	case len(t.rows) >= TermoAttempts:
		t.status = Lost
	}
	return row, nil
}

func (t *Termo) Status() Status { return t.status }

// Rows returns the graded guesses so far.
func (t *Termo) Rows() []TermoRow { return t.rows }

// AttemptsLeft is the number of guesses still allowed.
func (t *Termo) AttemptsLeft() int { return TermoAttempts - len(t.rows) }

// Secret is the word as written in the catalog.
func (t *Termo) Secret() string { return t.display }
