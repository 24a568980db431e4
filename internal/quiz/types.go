package quiz

import "github.com/ecoamazonia/guardioes/internal/i18n"

// Question is one multiple-choice quiz question.
type Question struct {
	Text        string
	Options     []string
	Answer      string // Exactly one of Options.
	Explanation string
}

// IsCorrect reports whether option is the question's answer.
func (q Question) IsCorrect(option string) bool {
	return option == q.Answer
}

// RiverOption is one answer choice of a river question.
type RiverOption struct {
	Text    string
	Correct bool
}

// RiverQuestion is the single question asked during the river cleanup
// activity and the interactive quiz stage.
type RiverQuestion struct {
	Text     string
	Options  []RiverOption
	Feedback string // Shown after a correct answer.
}

// CorrectIndex returns the index of the correct option, or -1.
func (q RiverQuestion) CorrectIndex() int {
	for i, o := range q.Options {
		if o.Correct {
			return i
		}
	}
	return -1
}

// Set is a batch of quiz questions along with where they came from.
type Set struct {
	Topic     string
	Language  i18n.Language
	Questions []Question

	// Fallback is true when the questions are the built-in set because
	// generation was unavailable or failed.
	Fallback bool
}
