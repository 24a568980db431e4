package quiz

import (
	"fmt"
	"strings"
)

// ValidationError describes why generated content was rejected.
type ValidationError struct {
	Index   int // Question index, or -1 for the whole response.
	Message string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid quiz content: %s", e.Message)
	}
	return fmt.Sprintf("invalid quiz question %d: %s", e.Index+1, e.Message)
}

const maxTextLen = 500

func validateQuestions(qs []Question, cfg Config) error {
	if len(qs) != cfg.Questions {
		return &ValidationError{Index: -1, Message: fmt.Sprintf("got %d questions, want %d", len(qs), cfg.Questions)}
	}
	for i, q := range qs {
		if err := validateQuestion(q, cfg.Options); err != nil {
			err.Index = i
			return err
		}
	}
	return nil
}

func validateQuestion(q Question, options int) *ValidationError {
	if strings.TrimSpace(q.Text) == "" {
		return &ValidationError{Message: "question is empty"}
	}
	if len(q.Text) > maxTextLen {
		return &ValidationError{Message: fmt.Sprintf("question exceeds %d characters", maxTextLen)}
	}
	if len(q.Options) != options {
		return &ValidationError{Message: fmt.Sprintf("got %d options, want %d", len(q.Options), options)}
	}
	seen := make(map[string]bool, len(q.Options))
	found := false
	for _, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			return &ValidationError{Message: "empty option"}
		}
		if seen[o] {
			return &ValidationError{Message: fmt.Sprintf("duplicate option %q", o)}
		}
		seen[o] = true
		if o == q.Answer {
			found = true
		}
	}
	if !found {
		return &ValidationError{Message: fmt.Sprintf("correct answer %q is not among the options", q.Answer)}
	}
	return nil
}

func validateRiverQuestion(q RiverQuestion, cfg Config) error {
	if strings.TrimSpace(q.Text) == "" {
		return &ValidationError{Index: -1, Message: "question is empty"}
	}
	if len(q.Options) != cfg.RiverOptions {
		return &ValidationError{Index: -1, Message: fmt.Sprintf("got %d options, want %d", len(q.Options), cfg.RiverOptions)}
	}
	correct := 0
	for _, o := range q.Options {
		if strings.TrimSpace(o.Text) == "" {
			return &ValidationError{Index: -1, Message: "empty option"}
		}
		if o.Correct {
			correct++
		}
	}
	if correct != 1 {
		return &ValidationError{Index: -1, Message: fmt.Sprintf("%d options marked correct, want exactly 1", correct)}
	}
	return nil
}
