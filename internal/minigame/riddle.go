package minigame

import "github.com/ecoamazonia/guardioes/internal/i18n"

// Riddle accepts any of its answers, ignoring case, accents and
// surrounding spaces. Wrong answers can be retried without limit.
type Riddle struct {
	answers []string
	status  Status
}

func NewRiddle(answers []string) (*Riddle, error) {
	r := &Riddle{}
	for _, a := range answers {
		if f := i18n.Fold(a); f != "" {
			r.answers = append(r.answers, f)
		}
	}
	if len(r.answers) == 0 {
		return nil, ErrEmptyInput
	}
	return r, nil
}

// Answer checks input and reports whether it solved the riddle.
func (r *Riddle) Answer(input string) bool {
	if r.status == Won {
		return true
	}
	in := i18n.Fold(input)
	for _, a := range r.answers {
		if a == in {
			r.status = Won
			return true
		}
	}
	return false
}

func (r *Riddle) Status() Status { return r.status }
