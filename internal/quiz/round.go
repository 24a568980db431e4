package quiz

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrNotAnswered     = errors.New("question not answered yet")
	ErrRoundOver       = errors.New("quiz round is over")
	ErrUnknownOption   = errors.New("option is not one of the question's options")
)

// Round tracks one play-through of a Set: the current question, whether
// it has been answered, and the running score.
type Round struct {
	ID  uuid.UUID
	Set Set

	pointsPerCorrect int
	idx              int
	answered         bool
	selected         string
	correct          int
}

// NewRound starts a round over set.
func NewRound(set Set, pointsPerCorrect int) *Round {
	return &Round{ID: uuid.New(), Set: set, pointsPerCorrect: pointsPerCorrect}
}

// Len is the number of questions in the round.
func (r *Round) Len() int { return len(r.Set.Questions) }

// Index is the zero-based index of the current question.
func (r *Round) Index() int { return r.idx }

// Done reports whether every question has been moved past.
func (r *Round) Done() bool { return r.idx >= r.Len() }

// Current returns the question being asked.
func (r *Round) Current() (Question, bool) {
	if r.Done() {
		return Question{}, false
	}
	return r.Set.Questions[r.idx], true
}

// Answered reports whether the current question has an answer.
func (r *Round) Answered() bool { return r.answered }

// Selected is the option chosen for the current question.
func (r *Round) Selected() string { return r.selected }

// Answer records option for the current question and reports whether it
// was correct. Each question accepts one answer.
func (r *Round) Answer(option string) (bool, error) {
	q, ok := r.Current()
	if !ok {
		return false, ErrRoundOver
	}
	if r.answered {
		return false, ErrAlreadyAnswered
	}
	known := false
	for _, o := range q.Options {
		if o == option {
			known = true
			break
		}
	}
	if !known {
		return false, ErrUnknownOption
	}

	r.answered = true
	r.selected = option
	if q.IsCorrect(option) {
		r.correct++
		return true, nil
	}
	return false, nil
}

// Next moves to the following question. It reports false once the round
// is over.
func (r *Round) Next() (bool, error) {
	if r.Done() {
		return false, ErrRoundOver
	}
	if !r.answered {
		return false, ErrNotAnswered
	}
	r.idx++
	r.answered = false
	r.selected = ""
	return !r.Done(), nil
}

// Correct is the number of correct answers so far.
func (r *Round) Correct() int { return r.correct }

// Points is the PN earned so far.
func (r *Round) Points() int { return r.correct * r.pointsPerCorrect }
